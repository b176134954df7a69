package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/pagination"
)

type SubscriberListService struct {
	ctx context.Context
}

func NewSubscriberListService(ctx context.Context) *SubscriberListService {
	return &SubscriberListService{ctx: ctx}
}

// GetSubscribers 频道订阅者分页视图, 每条关系关联订阅者的公开档案
func (service *SubscriberListService) GetSubscribers(ctx context.Context, channelId, page, limit int64) (*pagination.Page[model.SubscriberInfo], error) {
	page, limit = pagination.Normalize(page, limit)
	subscriptions, total, err := db.GetSubscribersPaged(ctx, channelId, pagination.Offset(page, limit), int(limit))
	if err != nil {
		return nil, errno.ServiceErr
	}

	items := make([]model.SubscriberInfo, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		subscriber, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", subscription.SubscriberId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		items = append(items, model.SubscriberInfo{
			SubscriptionId: subscription.SubscriptionId,
			SubscribedAt:   subscription.CreatedAt,
			Subscriber: model.UserLite{
				UserId:    subscriber.UserId,
				UserName:  subscriber.UserName,
				AvatarUrl: subscriber.AvatarUrl,
			},
		})
	}
	return pagination.New(items, page, limit, total), nil
}
