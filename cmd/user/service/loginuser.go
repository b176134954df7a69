package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

// LoginUser 校验用户名密码, JWT中间件的Authenticator回调
func (service *LoginUserService) LoginUser(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, errno.RequestErr.WithMessage("username and password are required")
	}
	user, err := db.CheckUser(ctx, username, password)
	if err != nil {
		hlog.CtxInfof(ctx, "login failed for %s: %v", username, err)
		return nil, errno.TokenInvailedErr.WithMessage("invalid username or password")
	}
	return user, nil
}
