package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
)

type ChannelProfileService struct {
	ctx context.Context
}

func NewChannelProfileService(ctx context.Context) *ChannelProfileService {
	return &ChannelProfileService{ctx: ctx}
}

// GetChannelProfile 组合频道主页视图
// actorId为0表示未登录访问, isSubscribed恒为false
// 三个统计字段各自独立聚合, 无匹配时为零值, 结果不做缓存
func (service *ChannelProfileService) GetChannelProfile(ctx context.Context, username string, actorId int64) (*model.ChannelProfile, error) {
	user, exist, err := db.QueryUserByName(ctx, username)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}

	subscriberCount, err := join.Count[model.Subscription](ctx, db.DB, "channel_id = ?", user.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	subscribedToCount, err := join.Count[model.Subscription](ctx, db.DB, "subscriber_id = ?", user.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	isSubscribed := false
	if actorId != 0 {
		isSubscribed, err = join.Exists[model.Subscription](ctx, db.DB, "channel_id = ? AND subscriber_id = ?", user.UserId, actorId)
		if err != nil {
			return nil, errno.ServiceErr
		}
	}

	return &model.ChannelProfile{
		UserId:            user.UserId,
		UserName:          user.UserName,
		Email:             user.Email,
		AvatarUrl:         user.AvatarUrl,
		CoverUrl:          user.CoverUrl,
		CreatedAt:         user.CreatedAt,
		SubscriberCount:   subscriberCount,
		SubscribedToCount: subscribedToCount,
		IsSubscribed:      isSubscribed,
	}, nil
}
