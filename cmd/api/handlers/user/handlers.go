package handlers

import (
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type RegisterParam struct {
	UserName  string `form:"user_name" json:"user_name"`
	Email     string `form:"email" json:"email"`
	Password  string `form:"password" json:"password"`
	AvatarUrl string `form:"avatar_url" json:"avatar_url"`
	CoverUrl  string `form:"cover_url" json:"cover_url"`
}

type ChangePasswordParam struct {
	OldPassword string `form:"old_password" json:"old_password"`
	NewPassword string `form:"new_password" json:"new_password"`
}

type UpdateUserParam struct {
	Email     string `form:"email" json:"email"`
	AvatarUrl string `form:"avatar_url" json:"avatar_url"`
	CoverUrl  string `form:"cover_url" json:"cover_url"`
}

type ChannelProfileParam struct {
	UserName string `path:"username"`
}

type ChannelVideosParam struct {
	UserName string `path:"username"`
	PageNum  int64  `query:"page_num"`
	PageSize int64  `query:"page_size"`
}

type WatchHistoryParam struct {
	VideoId  int64 `form:"video_id" json:"video_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
