package service

import (
	"context"
	"time"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/toggle"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type LikeActionService struct {
	ctx      context.Context
	producer *mq.Producer
}

func NewLikeActionService(ctx context.Context, producer *mq.Producer) *LikeActionService {
	return &LikeActionService{ctx: ctx, producer: producer}
}

// ToggleLike 翻转点赞关系并返回结果状态
// 对自己内容点赞不做拦截, 与现网行为保持一致
func (service *LikeActionService) ToggleLike(ctx context.Context, actorId int64, targetType string, targetId int64) (toggle.State, error) {
	if actorId == 0 {
		return "", errno.UnauthorizedErr
	}

	exist, err := service.targetExists(ctx, targetType, targetId)
	if err != nil {
		return "", err
	}
	if !exist {
		return "", errno.NotFoundErr.WithMessage("like target not found")
	}

	row := &model.Like{
		LikeId:     utils.GenerateID(),
		UserId:     actorId,
		TargetType: targetType,
		TargetId:   targetId,
		CreatedAt:  time.Now().Format(constants.DataFormate),
	}
	state, err := toggle.Flip(ctx, db.DB, row,
		"user_id = ? AND target_type = ? AND target_id = ?", actorId, targetType, targetId)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to toggle like: %v", err)
		return "", errno.ServiceErr
	}
	cache.Default().InvalidateTargetLikeCount(ctx, targetType, targetId)

	if err := service.producer.PublishToggleEvent(ctx, &mq.ToggleEvent{
		ActorId:    actorId,
		TargetType: targetType,
		TargetId:   targetId,
		State:      string(state),
		EventType:  "like",
		Timestamp:  time.Now().Unix(),
		EventId:    uuid.New().String(),
	}); err != nil {
		hlog.CtxWarnf(ctx, "Failed to publish like toggle event: %v", err)
	}

	return state, nil
}

func (service *LikeActionService) targetExists(ctx context.Context, targetType string, targetId int64) (bool, error) {
	switch targetType {
	case constants.TargetTypeVideo:
		return join.Exists[model.Video](ctx, db.DB, "video_id = ?", targetId)
	case constants.TargetTypeComment:
		return join.Exists[model.Comment](ctx, db.DB, "comment_id = ?", targetId)
	case constants.TargetTypeTweet:
		return join.Exists[model.Tweet](ctx, db.DB, "tweet_id = ?", targetId)
	default:
		return false, errno.RequestErr.WithMessage("unknown like target type")
	}
}
