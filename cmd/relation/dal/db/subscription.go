package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
)

// GetSubscriberCount 频道的订阅者数
func GetSubscriberCount(ctx context.Context, channelId int64) (int64, error) {
	return join.Count[model.Subscription](ctx, DB, "channel_id = ?", channelId)
}

func IsSubscribed(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	return join.Exists[model.Subscription](ctx, DB, "subscriber_id = ? AND channel_id = ?", subscriberId, channelId)
}

// GetSubscribersPaged 频道订阅关系分页, 最新订阅在前
func GetSubscribersPaged(ctx context.Context, channelId int64, offset, limit int) ([]model.Subscription, int64, error) {
	return join.ManyPaged[model.Subscription](ctx, DB,
		"created_at DESC, subscription_id DESC", offset, limit,
		"channel_id = ?", channelId)
}

// GetSubscriptions 用户订阅的全部频道关系
func GetSubscriptions(ctx context.Context, subscriberId int64) ([]model.Subscription, error) {
	return join.Many[model.Subscription](ctx, DB,
		"created_at DESC, subscription_id DESC",
		"subscriber_id = ?", subscriberId)
}
