package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/infras/redis"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
)

type VideoDetailService struct {
	ctx context.Context
}

func NewVideoDetailService(ctx context.Context) *VideoDetailService {
	return &VideoDetailService{ctx: ctx}
}

// GetVideoDetail 组合视频详情视图
// 五个派生字段(订阅数/是否订阅/点赞数/是否点赞/评论数)各自独立聚合,
// 零匹配一律得到零值字段, 不会丢掉整条记录
func (service *VideoDetailService) GetVideoDetail(ctx context.Context, videoId, actorId int64) (*model.VideoDetail, error) {
	if actorId == 0 {
		return nil, errno.UnauthorizedErr
	}

	video, exist, err := db.FindVideo(ctx, videoId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}

	// 作者已被删除时退化为空档案, 视图仍然返回
	owner, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", video.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	channelSubs, err := join.Count[model.Subscription](ctx, db.DB, "channel_id = ?", video.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	isSubscribed, err := join.Exists[model.Subscription](ctx, db.DB, "channel_id = ? AND subscriber_id = ?", video.UserId, actorId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	likeCount, err := service.likeCount(ctx, videoId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	isLiked, err := join.Exists[model.Like](ctx, db.DB, "target_type = ? AND target_id = ? AND user_id = ?", constants.TargetTypeVideo, videoId, actorId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	commentCount, err := service.commentCount(ctx, videoId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	visitCount := video.VisitCount
	if cached, err := redis.GetVideoVisitCount(ctx, redis.FormatVideoId(videoId)); err == nil {
		if cached > visitCount {
			visitCount = cached
		} else if cached < visitCount {
			// 热计数落后持久副本(如redis重启丢失zset), 用DB值重新播种
			_ = redis.PutVideoVisitInfo(ctx, redis.FormatVideoId(videoId), visitCount)
		}
	}

	return &model.VideoDetail{
		VideoId:      video.VideoId,
		Title:        video.Title,
		Description:  video.Description,
		VideoUrl:     video.VideoUrl,
		CoverUrl:     video.CoverUrl,
		Duration:     video.Duration,
		VisitCount:   visitCount,
		CreatedAt:    video.CreatedAt,
		UserName:     owner.UserName,
		AvatarUrl:    owner.AvatarUrl,
		ChannelSubs:  channelSubs,
		IsSubscribed: isSubscribed,
		LikeCount:    likeCount,
		IsLiked:      isLiked,
		CommentCount: commentCount,
	}, nil
}

// likeCount 先查计数缓存, 未命中回源MySQL并回填
func (service *VideoDetailService) likeCount(ctx context.Context, videoId int64) (int64, error) {
	if count, err := cache.Default().GetTargetLikeCount(ctx, constants.TargetTypeVideo, videoId); err == nil && count >= 0 {
		return count, nil
	}
	count, err := join.Count[model.Like](ctx, db.DB, "target_type = ? AND target_id = ?", constants.TargetTypeVideo, videoId)
	if err != nil {
		return 0, err
	}
	_ = cache.Default().SetTargetLikeCount(ctx, constants.TargetTypeVideo, videoId, count)
	return count, nil
}

func (service *VideoDetailService) commentCount(ctx context.Context, videoId int64) (int64, error) {
	if count, err := cache.Default().GetVideoCommentCount(ctx, videoId); err == nil && count >= 0 {
		return count, nil
	}
	count, err := join.Count[model.Comment](ctx, db.DB, "video_id = ?", videoId)
	if err != nil {
		return 0, err
	}
	_ = cache.Default().SetVideoCommentCount(ctx, videoId, count)
	return count, nil
}
