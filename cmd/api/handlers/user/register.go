package handlers

import (
	"context"

	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Register(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	user, err := service.NewCreateUserService(ctx).CreateUser(ctx, &service.CreateUserParam{
		UserName:  param.UserName,
		Email:     param.Email,
		Password:  param.Password,
		AvatarUrl: param.AvatarUrl,
		CoverUrl:  param.CoverUrl,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}
