package handlers

import (
	"context"

	"VidTube.com/cmd/social/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(ctx, userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func AddPlaylistVideo(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param PlaylistVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := service.NewPlaylistService(ctx).AddVideo(ctx, userId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemovePlaylistVideo(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param RemovePlaylistVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := service.NewPlaylistService(ctx).RemoveVideo(ctx, userId, param.PlaylistId, param.PlaylistVideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func GetPlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)

	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).GetPlaylist(ctx, userId, param.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(ctx, userId, param.PlaylistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	userId := jwt.ExtractUserId(ctx, c)
	if userId == 0 {
		SendResponse(c, errno.UnauthorizedErr, nil)
		return
	}

	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	if err := service.NewPlaylistService(ctx).DeletePlaylist(ctx, userId, param.PlaylistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	var param UserPlaylistsParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}

	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(ctx, param.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}
