package service

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

func (service *GetUserInfoService) GetUserInfo(ctx context.Context, userId int64) (*model.User, error) {
	user, exist, err := db.QueryUserById(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.UserNotExistErr
	}
	return user, nil
}
