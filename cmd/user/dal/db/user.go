package db

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

// NormalizeUserName 用户名统一小写存储和查询
func NormalizeUserName(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func CreateUser(ctx context.Context, user *model.User) error {
	user.UserName = NormalizeUserName(user.UserName)
	if err := DB.WithContext(ctx).Create(user).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed,err: %v", err)
	}
	return nil
}

// QueryUserByName 按用户名查找, 大小写不敏感
func QueryUserByName(ctx context.Context, username string) (*model.User, bool, error) {
	var users []model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_name = ?", NormalizeUserName(username)).Limit(1).Find(&users).Error; err != nil {
		return nil, false, errors.Wrapf(err, "QueryUserByName failed,err:%v", err)
	}
	if len(users) == 0 {
		return nil, false, nil
	}
	return &users[0], true, nil
}

func QueryUserById(ctx context.Context, userId int64) (*model.User, bool, error) {
	var users []model.User
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Limit(1).Find(&users).Error; err != nil {
		return nil, false, errors.Wrapf(err, "QueryUserById failed,err:%v", err)
	}
	if len(users) == 0 {
		return nil, false, nil
	}
	return &users[0], true, nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	return join.Exists[model.User](ctx, DB, "user_id = ?", userId)
}

// CheckUser 校验用户名和密码, 登录用
func CheckUser(ctx context.Context, username, password string) (*model.User, error) {
	user, exist, err := QueryUserByName(ctx, username)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, errors.Errorf("user %s not exist", username)
	}
	if err, ok := utils.VerifyPassword(password, user.Password); !ok {
		return nil, errors.Wrapf(err, "password wrong,err:%v", err)
	}
	return user, nil
}

func UpdateUser(ctx context.Context, user *model.User) error {
	updates := map[string]interface{}{
		"email":      user.Email,
		"avatar_url": user.AvatarUrl,
		"cover_url":  user.CoverUrl,
		"updated_at": user.UpdatedAt,
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", user.UserId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdateUser failed,err: %v", err)
	}
	return nil
}

func UpdatePassword(ctx context.Context, userId int64, hashedPassword, updatedAt string) error {
	updates := map[string]interface{}{
		"password":   hashedPassword,
		"updated_at": updatedAt,
	}
	if err := DB.WithContext(ctx).Model(&model.User{}).Where("user_id = ?", userId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePassword failed,err: %v", err)
	}
	return nil
}

// DeleteUser 硬删除, 关联的视频/点赞/订阅不做级联清理
func DeleteUser(ctx context.Context, userId int64) error {
	if err := DB.WithContext(ctx).Where("user_id = ?", userId).Delete(&model.User{}).Error; err != nil {
		return errors.Wrapf(err, "DeleteUser failed, userId: %d", userId)
	}
	return nil
}
