package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreateComment(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param CreateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).CreateComment(ctx, userId, param.VideoId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func UpdateComment(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param UpdateCommentParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	comment, err := service.NewCommentService(ctx).UpdateComment(ctx, userId, param.CommentId, param.Content)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, comment)
}

func DeleteComment(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param CommentIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := service.NewCommentService(ctx).DeleteComment(ctx, userId, param.CommentId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func ListComments(ctx context.Context, c *app.RequestContext) {
	var param CommentListParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	page, err := service.NewCommentService(ctx).ListComments(ctx, param.VideoId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, page)
}
