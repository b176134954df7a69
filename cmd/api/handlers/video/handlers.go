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

type VideoIdParam struct {
	VideoId int64 `path:"video_id"`
}

type VideoFeedParam struct {
	Query     string `query:"query"`
	SortBy    string `query:"sort_by"`
	SortOrder string `query:"sort_order"`
	PageNum   int64  `query:"page_num"`
	PageSize  int64  `query:"page_size"`
}

type PublishVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	VideoUrl    string `form:"video_url" json:"video_url"`
	CoverUrl    string `form:"cover_url" json:"cover_url"`
	Duration    int64  `form:"duration" json:"duration"`
}

type UpdateVideoParam struct {
	VideoId     int64  `path:"video_id"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	CoverUrl    string `form:"cover_url" json:"cover_url"`
}
