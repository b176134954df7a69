package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
)

type PublishVideoService struct {
	ctx context.Context
}

func NewPublishVideoService(ctx context.Context) *PublishVideoService {
	return &PublishVideoService{ctx: ctx}
}

type PublishVideoParam struct {
	UserId      int64
	Title       string
	Description string
	VideoUrl    string
	CoverUrl    string
	Duration    int64
}

func (service *PublishVideoService) PublishVideo(ctx context.Context, param *PublishVideoParam) (*model.Video, error) {
	if param.UserId == 0 {
		return nil, errno.UnauthorizedErr
	}
	if strings.TrimSpace(param.Title) == "" {
		return nil, errno.RequestErr.WithMessage("title is required")
	}

	now := time.Now().Format(constants.DataFormate)
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      param.UserId,
		Title:       param.Title,
		Description: param.Description,
		VideoUrl:    param.VideoUrl,
		CoverUrl:    param.CoverUrl,
		Duration:    param.Duration,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.InsertVideo(ctx, video); err != nil {
		return nil, errno.ServiceErr
	}
	return video, nil
}

type UpdateVideoParam struct {
	VideoId     int64
	UserId      int64
	Title       string
	Description string
	CoverUrl    string
}

func (service *PublishVideoService) UpdateVideo(ctx context.Context, param *UpdateVideoParam) (*model.Video, error) {
	video, err := service.findOwnedVideo(ctx, param.VideoId, param.UserId)
	if err != nil {
		return nil, err
	}
	if param.Title != "" {
		video.Title = param.Title
	}
	if param.Description != "" {
		video.Description = param.Description
	}
	if param.CoverUrl != "" {
		video.CoverUrl = param.CoverUrl
	}
	video.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := db.UpdateVideo(ctx, video); err != nil {
		return nil, errno.ServiceErr
	}
	return video, nil
}

func (service *PublishVideoService) DeleteVideo(ctx context.Context, videoId, userId int64) error {
	if _, err := service.findOwnedVideo(ctx, videoId, userId); err != nil {
		return err
	}
	if err := db.DeleteVideo(ctx, videoId); err != nil {
		return errno.ServiceErr
	}
	return nil
}

// TogglePublishStatus 翻转视频的发布状态
func (service *PublishVideoService) TogglePublishStatus(ctx context.Context, videoId, userId int64) (bool, error) {
	video, err := service.findOwnedVideo(ctx, videoId, userId)
	if err != nil {
		return false, err
	}
	next := !video.IsPublished
	if err := db.UpdatePublishStatus(ctx, videoId, next); err != nil {
		return false, errno.ServiceErr
	}
	return next, nil
}

// findOwnedVideo 读取视频并校验归属
func (service *PublishVideoService) findOwnedVideo(ctx context.Context, videoId, userId int64) (*model.Video, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	video, exist, err := db.FindVideo(ctx, videoId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.VideoNotExistErr
	}
	if video.UserId != userId {
		return nil, errno.UnauthorizedErr.WithMessage("not the owner of this video")
	}
	return video, nil
}
