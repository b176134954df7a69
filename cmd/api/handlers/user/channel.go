package handlers

import (
	"context"

	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChannelProfile 频道主页, 未登录也可访问
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	var param ChannelProfileParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	actorId := jwt.ExtractUserId(ctx, c)
	profile, err := service.NewChannelProfileService(ctx).GetChannelProfile(ctx, param.UserName, actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

func ChannelStats(ctx context.Context, c *app.RequestContext) {
	var param ChannelProfileParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	stats, err := service.NewDashboardService(ctx).GetChannelStats(ctx, param.UserName)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, stats)
}

func ChannelVideos(ctx context.Context, c *app.RequestContext) {
	var param ChannelVideosParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	videos, err := service.NewDashboardService(ctx).GetChannelVideos(ctx, param.UserName, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, videos)
}
