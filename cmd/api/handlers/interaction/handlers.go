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

type LikeActionParam struct {
	TargetType string `form:"target_type" json:"target_type"`
	TargetId   int64  `form:"target_id" json:"target_id"`
}

type CreateCommentParam struct {
	VideoId int64  `form:"video_id" json:"video_id"`
	Content string `form:"content" json:"content"`
}

type UpdateCommentParam struct {
	CommentId int64  `path:"comment_id"`
	Content   string `form:"content" json:"content"`
}

type CommentIdParam struct {
	CommentId int64 `path:"comment_id"`
}

type CommentListParam struct {
	VideoId  int64 `path:"video_id"`
	PageNum  int64 `query:"page_num"`
	PageSize int64 `query:"page_size"`
}
