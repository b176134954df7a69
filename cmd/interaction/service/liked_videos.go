package service

import (
	"context"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
)

type LikedVideosService struct {
	ctx context.Context
}

func NewLikedVideosService(ctx context.Context) *LikedVideosService {
	return &LikedVideosService{ctx: ctx}
}

// GetLikedVideos 用户点赞过的视频列表, 每个视频附带作者名
// 已删除的视频留下孤儿点赞记录, 列表里直接跳过
func (service *LikedVideosService) GetLikedVideos(ctx context.Context, actorId int64) ([]model.VideoCard, error) {
	if actorId == 0 {
		return nil, errno.UnauthorizedErr
	}

	videoIds, err := db.GetLikedTargetIds(ctx, actorId, constants.TargetTypeVideo)
	if err != nil {
		return nil, errno.ServiceErr
	}

	cards := make([]model.VideoCard, 0, len(videoIds))
	for _, videoId := range videoIds {
		video, err := join.One(ctx, db.DB, model.Video{}, "video_id = ?", videoId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		if video.VideoId == 0 {
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
	return cards, nil
}
