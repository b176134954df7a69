package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
	"github.com/pkg/errors"
)

func AddWatchHistory(ctx context.Context, history *model.UserVideoWatchHistory) error {
	if err := DB.WithContext(ctx).Create(history).Error; err != nil {
		return errors.Wrapf(err, "AddWatchHistory failed,err: %v", err)
	}
	return nil
}

// GetWatchHistoryPaged 按观看时间倒序取观看记录
func GetWatchHistoryPaged(ctx context.Context, userId int64, offset, limit int) ([]model.UserVideoWatchHistory, int64, error) {
	return join.ManyPaged[model.UserVideoWatchHistory](ctx, DB,
		"watch_time DESC, user_video_watch_history_id DESC", offset, limit,
		"user_id = ?", userId)
}
