package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
)

// GetLikeCount 目标的点赞数, 无点赞为0
func GetLikeCount(ctx context.Context, targetType string, targetId int64) (int64, error) {
	return join.Count[model.Like](ctx, DB, "target_type = ? AND target_id = ?", targetType, targetId)
}

// GetLikedTargetIds 用户点赞过的某类目标Id列表, 按点赞时间倒序
func GetLikedTargetIds(ctx context.Context, userId int64, targetType string) ([]int64, error) {
	likes, err := join.Many[model.Like](ctx, DB, "created_at DESC, like_id DESC", "user_id = ? AND target_type = ?", userId, targetType)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(likes))
	for _, like := range likes {
		ids = append(ids, like.TargetId)
	}
	return ids, nil
}
