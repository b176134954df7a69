package handlers

import (
	"context"

	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func VideoDetail(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	actorId := jwt.ExtractUserId(ctx, c)
	detail, err := service.NewVideoDetailService(ctx).GetVideoDetail(ctx, param.VideoId, actorId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	// 详情页曝光记一次播放
	if err := service.NewVideoVisitService(ctx).VideoVisit(ctx, param.VideoId); err != nil {
		hlog.CtxWarnf(ctx, "Failed to record video visit: %v", err)
	}
	SendResponse(c, errno.Success, detail)
}

func VideoFeed(ctx context.Context, c *app.RequestContext) {
	var param VideoFeedParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	page, err := service.NewVideoFeedService(ctx).SearchVideos(ctx,
		param.Query, param.SortBy, param.SortOrder, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}

func VideoVisit(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := service.NewVideoVisitService(ctx).VideoVisit(ctx, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}
