package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
)

type UpdateUserService struct {
	ctx context.Context
}

func NewUpdateUserService(ctx context.Context) *UpdateUserService {
	return &UpdateUserService{ctx: ctx}
}

type UpdateUserParam struct {
	UserId    int64
	Email     string
	AvatarUrl string
	CoverUrl  string
}

func (service *UpdateUserService) UpdateUser(ctx context.Context, param *UpdateUserParam) (*model.User, error) {
	user, exist, err := db.QueryUserById(ctx, param.UserId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}

	if param.Email != "" {
		user.Email = param.Email
	}
	if param.AvatarUrl != "" {
		user.AvatarUrl = param.AvatarUrl
	}
	if param.CoverUrl != "" {
		user.CoverUrl = param.CoverUrl
	}
	user.UpdatedAt = time.Now().Format(constants.DataFormate)

	if err := db.UpdateUser(ctx, user); err != nil {
		return nil, errno.ServiceErr
	}
	return user, nil
}
