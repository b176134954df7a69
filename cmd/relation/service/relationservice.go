package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type RelationService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewRelationService(ctx context.Context, producer *mq.Producer) *RelationService {
	return &RelationService{ctx: ctx, producer: producer}
}

// ToggleSubscription 翻转订阅关系并返回结果状态
// subscriber == channel的自我订阅不做拦截, 与现网行为保持一致
func (service *RelationService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (toggle.State, error) {
	if subscriberId == 0 {
		return "", errno.UnauthorizedErr
	}

	exist, err := join.Exists[model.User](ctx, db.DB, "user_id = ?", channelId)
	if err != nil {
		return "", errno.ServiceErr
	}
	if !exist {
		return "", errno.UserNotExistErr.WithMessage("channel not found")
	}

	row := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	state, err := toggle.Flip(ctx, db.DB, row,
		"subscriber_id = ? AND channel_id = ?", subscriberId, channelId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to toggle subscription: %v", err)
		return "", errno.ServiceErr
	}

	if err := service.producer.PublishToggleEvent(ctx, &mq.ToggleEvent{
		ActorId:    subscriberId,
		TargetType: "channel",
		TargetId:   channelId,
		State:      string(state),
		EventType:  "subscription",
		Timestamp:  time.Now().Unix(),
		EventId:    uuid.New().String(),
	}); err != nil {
		hlog.CtxWarnf(ctx, "Failed to publish subscription toggle event: %v", err)
	}

	return state, nil
}
