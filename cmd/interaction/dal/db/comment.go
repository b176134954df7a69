package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
	"github.com/pkg/errors"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	if err := DB.WithContext(ctx).Create(comment).Error; err != nil {
		return errors.Wrapf(err, "CreateComment failed,err:%v", err)
	}
	return nil
}

func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, bool, error) {
	var comments []model.Comment
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Limit(1).Find(&comments).Error; err != nil {
		return nil, false, errors.Wrapf(err, "GetCommentInfo failed,err:%v", err)
	}
	if len(comments) == 0 {
		return nil, false, nil
	}
	return &comments[0], true, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content, updatedAt string) error {
	updates := map[string]interface{}{
		"content":    content,
		"updated_at": updatedAt,
	}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateCommentContent failed,err:%v", err)
	}
	return nil
}

func DeleteComment(ctx context.Context, commentId int64) error {
	if err := DB.WithContext(ctx).Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteComment failed,err:%v", err)
	}
	return nil
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (int64, error) {
	return join.Count[model.Comment](ctx, DB, "video_id = ?", videoId)
}

// GetVideoCommentListByPart 视频评论分页, 新评论在前, 同秒按Id倒序
func GetVideoCommentListByPart(ctx context.Context, videoId int64, offset, limit int) ([]model.Comment, int64, error) {
	return join.ManyPaged[model.Comment](ctx, DB,
		"created_at DESC, comment_id DESC", offset, limit,
		"video_id = ?", videoId)
}
