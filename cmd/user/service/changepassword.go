package service

import (
	"context"
	"time"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

// ChangePassword 校验旧密码后换新密码
func (service *ChangePasswordService) ChangePassword(ctx context.Context, userId int64, oldPassword, newPassword string) error {
	if userId == 0 {
		return errno.UnauthorizedErr
	}
	if newPassword == "" {
		return errno.RequestErr.WithMessage("new password is required")
	}

	user, exist, err := db.QueryUserById(ctx, userId)
	if err != nil {
		return errno.ServiceErr
	}
	if !exist {
		return errno.UserNotExistErr
	}
	if _, ok := utils.VerifyPassword(oldPassword, user.Password); !ok {
		return errno.UnauthorizedErr.WithMessage("old password is not correct")
	}

	hashedPassword, err := utils.Crypt(newPassword)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to hash password: %v", err)
		return errno.ServiceErr
	}
	now := time.Now().Format(constants.DataFormate)
	if err := db.UpdatePassword(ctx, userId, hashedPassword, now); err != nil {
		return errno.ServiceErr
	}
	return nil
}
