package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
)

type SubscribedChannelsService struct {
	ctx context.Context
}

func NewSubscribedChannelsService(ctx context.Context) *SubscribedChannelsService {
	return &SubscribedChannelsService{ctx: ctx}
}

// GetSubscribedChannels 用户订阅的频道列表, 每个频道再聚合其订阅者数
func (service *SubscribedChannelsService) GetSubscribedChannels(ctx context.Context, subscriberId int64) ([]model.ChannelCard, error) {
	subscriptions, err := db.GetSubscriptions(ctx, subscriberId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	cards := make([]model.ChannelCard, 0, len(subscriptions))
	for _, subscription := range subscriptions {
		channel, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", subscription.ChannelId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		subscriberCount, err := db.GetSubscriberCount(ctx, subscription.ChannelId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		cards = append(cards, model.ChannelCard{
			UserId:          channel.UserId,
			UserName:        channel.UserName,
			AvatarUrl:       channel.AvatarUrl,
			SubscriberCount: subscriberCount,
		})
	}
	return cards, nil
}
