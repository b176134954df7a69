package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/pagination"
	"VidTube.com/pkg/utils"
)

type WatchHistoryService struct {
	ctx context.Context
}

func NewWatchHistoryService(ctx context.Context) *WatchHistoryService {
	return &WatchHistoryService{ctx: ctx}
}

func (service *WatchHistoryService) AddRecord(ctx context.Context, userId, videoId int64) error {
	if userId == 0 {
		return errno.UnauthorizedErr
	}
	exist, err := join.Exists[model.Video](ctx, db.DB, "video_id = ?", videoId)
	if err != nil {
		return errno.ServiceErr
	}
	if !exist {
		return errno.VideoNotExistErr
	}
	history := &model.UserVideoWatchHistory{
		UserVideoWatchHistoryId: utils.GenerateID(),
		UserId:                  userId,
		VideoId:                 videoId,
		WatchTime:               time.Now().Format(constants.DataFormate),
	}
	if err := db.AddWatchHistory(ctx, history); err != nil {
		return errno.ServiceErr
	}
	return nil
}

// GetWatchHistory 观看历史分页, 每条记录关联视频及其作者
// 视频已被删除的记录保留占位但跳过展示
func (service *WatchHistoryService) GetWatchHistory(ctx context.Context, userId, page, limit int64) (*pagination.Page[model.VideoCard], error) {
	page, limit = pagination.Normalize(page, limit)
	histories, total, err := db.GetWatchHistoryPaged(ctx, userId, pagination.Offset(page, limit), int(limit))
	if err != nil {
		return nil, errno.ServiceErr
	}

	cards := make([]model.VideoCard, 0, len(histories))
	for _, history := range histories {
		video, err := join.One(ctx, db.DB, model.Video{}, "video_id = ?", history.VideoId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		if video.VideoId == 0 {
			// 视频已删除, 弱引用成为孤儿
			continue
		}
		owner, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", video.UserId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		cards = append(cards, model.VideoCard{
			VideoId:     video.VideoId,
			Title:       video.Title,
			Description: video.Description,
			CoverUrl:    video.CoverUrl,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			CreatedAt:   video.CreatedAt,
			UserName:    owner.UserName,
		})
	}
	return pagination.New(cards, page, limit, total), nil
}
