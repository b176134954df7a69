package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/pagination"
)

type DashboardService struct {
	ctx context.Context
}

func NewDashboardService(ctx context.Context) *DashboardService {
	return &DashboardService{ctx: ctx}
}

// GetChannelStats 汇总频道统计: 订阅数 + 视频数/播放数/获赞数
// 获赞数是逐视频的点赞聚合再求和, 零视频频道所有统计为0
func (service *DashboardService) GetChannelStats(ctx context.Context, username string) (*model.DashboardStats, error) {
	user, exist, err := db.QueryUserByName(ctx, username)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}

	totalSubscribers, err := join.Count[model.Subscription](ctx, db.DB, "channel_id = ?", user.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	videos, err := join.Many[model.Video](ctx, db.DB, "", "user_id = ?", user.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	stats := &model.DashboardStats{
		UserId:           user.UserId,
		UserName:         user.UserName,
		Email:            user.Email,
		AvatarUrl:        user.AvatarUrl,
		CreatedAt:        user.CreatedAt,
		TotalSubscribers: totalSubscribers,
		TotalVideos:      int64(len(videos)),
	}
	for _, video := range videos {
		stats.TotalViews += video.VisitCount
		likeCount, err := join.Count[model.Like](ctx, db.DB, "target_type = ? AND target_id = ?", constants.TargetTypeVideo, video.VideoId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		stats.TotalLikes += likeCount
	}
	return stats, nil
}

// GetChannelVideos 频道视频列表, 按发布时间倒序分页
func (service *DashboardService) GetChannelVideos(ctx context.Context, username string, page, limit int64) (*pagination.Page[model.Video], error) {
	user, exist, err := db.QueryUserByName(ctx, username)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}

	page, limit = pagination.Normalize(page, limit)
	videos, total, err := join.ManyPaged[model.Video](ctx, db.DB,
		"created_at DESC, video_id DESC", pagination.Offset(page, limit), int(limit),
		"user_id = ?", user.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	return pagination.New(videos, page, limit, total), nil
}
