package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/app"
)

func LikeAction(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param LikeActionParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	state, err := service.NewLikeActionService(ctx, mq.Default()).ToggleLike(ctx, userId, param.TargetType, param.TargetId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]interface{}{"state": state})
}

func LikedVideos(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	videos, err := service.NewLikedVideosService(ctx).GetLikedVideos(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
