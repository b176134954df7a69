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

type CreatePlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistIdParam struct {
	PlaylistId int64 `path:"playlist_id"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `path:"playlist_id"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistVideoParam struct {
	PlaylistId int64 `path:"playlist_id"`
	VideoId    int64 `form:"video_id" json:"video_id"`
}

type RemovePlaylistVideoParam struct {
	PlaylistId      int64 `path:"playlist_id"`
	PlaylistVideoId int64 `path:"entry_id"`
}

type UserPlaylistsParam struct {
	UserId int64 `path:"user_id"`
}

type CreateTweetParam struct {
	Content string `form:"content" json:"content"`
}

type UpdateTweetParam struct {
	TweetId int64  `path:"tweet_id"`
	Content string `form:"content" json:"content"`
}

type TweetIdParam struct {
	TweetId int64 `path:"tweet_id"`
}

type UserTweetsParam struct {
	UserId int64 `path:"user_id"`
}
