package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
)

type CommentService struct {
	ctx context.Context
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{ctx: ctx}
}

// validateCommentContent 评论内容校验
func (service *CommentService) validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.RequestErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.RequestErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

func (service *CommentService) CreateComment(ctx context.Context, userId, videoId int64, content string) (*model.Comment, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	if err := service.validateCommentContent(content); err != nil {
		return nil, err
	}

	exist, err := join.Exists[model.Video](ctx, db.DB, "video_id = ?", videoId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		VideoId:   videoId,
		UserId:    userId,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, errno.ServiceErr
	}
	service.refreshCommentCount(ctx, videoId)
	return comment, nil
}

// refreshCommentCount 增删评论后用DB计数直写缓存, 回源失败则退化为失效
func (service *CommentService) refreshCommentCount(ctx context.Context, videoId int64) {
	count, err := db.GetVideoCommentCount(ctx, videoId)
	if err != nil {
		cache.Default().InvalidateVideoCommentCount(ctx, videoId)
		return
	}
	_ = cache.Default().SetVideoCommentCount(ctx, videoId, count)
}

func (service *CommentService) UpdateComment(ctx context.Context, userId, commentId int64, content string) (*model.Comment, error) {
	if err := service.validateCommentContent(content); err != nil {
		return nil, err
	}
	comment, exist, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("comment not found")
	}
	if comment.UserId != userId {
		return nil, errno.UnauthorizedErr.WithMessage("not the owner of this comment")
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := db.UpdateCommentContent(ctx, commentId, comment.Content, comment.UpdatedAt); err != nil {
		return nil, errno.ServiceErr
	}
	return comment, nil
}

// DeleteComment 评论作者或视频作者可删除
func (service *CommentService) DeleteComment(ctx context.Context, userId, commentId int64) error {
	comment, exist, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		return errno.ServiceErr
	}
	if !exist {
		return errno.NotFoundErr.WithMessage("comment not found")
	}
	if comment.UserId != userId {
		video, err := join.One(ctx, db.DB, model.Video{}, "video_id = ?", comment.VideoId)
		if err != nil {
			return errno.ServiceErr
		}
		if video.UserId != userId {
			return errno.UnauthorizedErr.WithMessage("not allowed to delete this comment")
		}
	}
	if err := db.DeleteComment(ctx, commentId); err != nil {
		return errno.ServiceErr
	}
	service.refreshCommentCount(ctx, comment.VideoId)
	return nil
}

// ListComments 视频评论分页视图: 评论 + 作者档案 + 点赞数
// 作者已注销的评论保留, 作者档案退化为零值
func (service *CommentService) ListComments(ctx context.Context, videoId, page, limit int64) (*pagination.Page[model.CommentInfo], error) {
	page, limit = pagination.Normalize(page, limit)
	comments, total, err := db.GetVideoCommentListByPart(ctx, videoId, pagination.Offset(page, limit), int(limit))
	if err != nil {
		return nil, errno.ServiceErr
	}

	items := make([]model.CommentInfo, 0, len(comments))
	for _, comment := range comments {
		author, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", comment.UserId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		likeCount, err := db.GetLikeCount(ctx, constants.TargetTypeComment, comment.CommentId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		items = append(items, model.CommentInfo{
			CommentId: comment.CommentId,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
			Author: model.UserLite{
				UserId:    author.UserId,
				UserName:  author.UserName,
				AvatarUrl: author.AvatarUrl,
			},
			LikeCount: likeCount,
		})
	}
	return pagination.New(items, page, limit, total), nil
}
