package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

type CreateUserParam struct {
	UserName  string
	Email     string
	Password  string
	AvatarUrl string
	CoverUrl  string
}

func (service *CreateUserService) CreateUser(ctx context.Context, param *CreateUserParam) (*model.User, error) {
	if strings.TrimSpace(param.UserName) == "" || strings.TrimSpace(param.Email) == "" || param.Password == "" {
		return nil, errno.RequestErr.WithMessage("username, email and password are required")
	}

	hashedPassword, err := utils.Crypt(param.Password)
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to hash password: %v", err)
		return nil, errno.ServiceErr
	}

	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    utils.GenerateID(),
		UserName:  param.UserName,
		Email:     strings.ToLower(strings.TrimSpace(param.Email)),
		Password:  hashedPassword,
		AvatarUrl: param.AvatarUrl,
		CoverUrl:  param.CoverUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.UserAlreadyExistErr
		}
		return nil, errno.ServiceErr
	}
	return user, nil
}
