package service

import (
	"context"

	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/errno"
)

type DeleteUserService struct {
	ctx context.Context
}

func NewDeleteUserService(ctx context.Context) *DeleteUserService {
	return &DeleteUserService{ctx: ctx}
}

// DeleteUser 注销账号, 硬删除
// 名下的视频/点赞/订阅不做级联清理, 读取侧对孤儿引用做退化处理
func (service *DeleteUserService) DeleteUser(ctx context.Context, userId int64) error {
	if userId == 0 {
		return errno.UnauthorizedErr
	}
	exist, err := db.CheckUserExistById(ctx, userId)
	if err != nil {
		return errno.ServiceErr
	}
	if !exist {
		return errno.UserNotExistErr
	}
	if err := db.DeleteUser(ctx, userId); err != nil {
		return errno.ServiceErr
	}
	return nil
}
