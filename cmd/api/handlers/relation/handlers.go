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

type SubscribeActionParam struct {
	ChannelId int64 `form:"channel_id" json:"channel_id"`
}

type SubscriberListParam struct {
	ChannelId int64 `path:"channel_id"`
	PageNum   int64 `query:"page_num"`
	PageSize  int64 `query:"page_size"`
}
