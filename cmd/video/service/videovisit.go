package service

import (
	"context"

	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/cmd/video/infras/redis"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type VideoVisitService struct {
	ctx context.Context
}

func NewVideoVisitService(ctx context.Context) *VideoVisitService {
	return &VideoVisitService{ctx: ctx}
}

// VideoVisit 记录一次播放: MySQL持久自增, redis热计数随行更新
func (service *VideoVisitService) VideoVisit(ctx context.Context, videoId int64) error {
	_, exist, err := db.FindVideo(ctx, videoId)
	if err != nil {
		return errno.ServiceErr
	}
	if !exist {
		return errno.VideoNotExistErr
	}

	if err := db.IncrVisitCount(ctx, videoId); err != nil {
		return errno.ServiceErr
	}
	if err := redis.IncrVideoVisitInfo(ctx, redis.FormatVideoId(videoId)); err != nil {
		// 热计数失败不影响主流程, 详情页会回落DB
		hlog.CtxWarnf(ctx, "failed to incr visit cache: %v", err)
	}
	return nil
}
