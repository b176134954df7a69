package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed,err:%v", err)
	}
	return nil
}

func FindVideo(ctx context.Context, videoId int64) (*model.Video, bool, error) {
	var videos []model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Limit(1).Find(&videos).Error; err != nil {
		return nil, false, errors.Wrapf(err, "FindVideo failed,err:%v", err)
	}
	if len(videos) == 0 {
		return nil, false, nil
	}
	return &videos[0], true, nil
}

func UpdateVideo(ctx context.Context, video *model.Video) error {
	updates := map[string]interface{}{
		"title":       video.Title,
		"description": video.Description,
		"cover_url":   video.CoverUrl,
		"updated_at":  video.UpdatedAt,
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", video.VideoId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideo failed,err:%v", err)
	}
	return nil
}

func UpdatePublishStatus(ctx context.Context, videoId int64, isPublished bool) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("is_published", isPublished).Error; err != nil {
		return errors.Wrapf(err, "UpdatePublishStatus failed,err:%v", err)
	}
	return nil
}

// DeleteVideo 硬删除, 点赞/评论等弱引用不做级联清理
func DeleteVideo(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Where("video_id = ?", videoId).Delete(&model.Video{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteVideo failed, videoId: %d", videoId)
	}
	return nil
}

// IncrVisitCount 播放数自增, 表达式更新避免读改写竞争
func IncrVisitCount(ctx context.Context, videoId int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).
		Update("visit_count", gorm.Expr("visit_count + ?", 1)).Error; err != nil {
		return errors.Wrapf(err, "IncrVisitCount failed,err:%v", err)
	}
	return nil
}
