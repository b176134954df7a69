package handlers

import (
	"context"

	"VidTube.com/cmd/relation/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/app"
)

func SubscribeAction(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param SubscribeActionParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	state, err := service.NewRelationService(ctx, mq.Default()).ToggleSubscription(ctx, userId, param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"state": state})
}

func SubscriberList(ctx context.Context, c *app.RequestContext) {
	var param SubscriberListParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	page, err := service.NewSubscriberListService(ctx).GetSubscribers(ctx, param.ChannelId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	channels, err := service.NewSubscribedChannelsService(ctx).GetSubscribedChannels(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, channels)
}
