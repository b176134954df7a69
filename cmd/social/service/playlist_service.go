package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/social/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/join"
	"VidTube.com/pkg/utils"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (service *PlaylistService) CreatePlaylist(ctx context.Context, userId int64, name, description string) (*model.Playlist, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	if strings.TrimSpace(name) == "" {
		return nil, errno.RequestErr.WithMessage("playlist name is required")
	}

	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(ctx, playlist); err != nil {
		return nil, errno.ServiceErr
	}
	return playlist, nil
}

func (service *PlaylistService) AddVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	playlist, err := service.findOwnedPlaylist(ctx, playlistId, userId)
	if err != nil {
		return err
	}

	exist, err := join.Exists[model.Video](ctx, db.DB, "video_id = ?", videoId)
	if err != nil {
		return errno.ServiceErr
	}
	if !exist {
		return errno.VideoNotExistErr
	}

	position, err := db.NextPosition(ctx, playlist.PlaylistId)
	if err != nil {
		return errno.ServiceErr
	}
	entry := &model.PlaylistVideo{
		PlaylistVideoId: utils.GenerateID(),
		PlaylistId:      playlistId,
		VideoId:         videoId,
		Position:        position,
	}
	if err := db.AddPlaylistVideo(ctx, entry); err != nil {
		return errno.ServiceErr
	}
	return nil
}

func (service *PlaylistService) RemoveVideo(ctx context.Context, userId, playlistId, playlistVideoId int64) error {
	if _, err := service.findOwnedPlaylist(ctx, playlistId, userId); err != nil {
		return err
	}
	if err := db.RemovePlaylistVideo(ctx, playlistId, playlistVideoId); err != nil {
		return errno.ServiceErr
	}
	return nil
}

// UpdatePlaylist 改名或改描述, 留空的字段保持原值
func (service *PlaylistService) UpdatePlaylist(ctx context.Context, userId, playlistId int64, name, description string) (*model.Playlist, error) {
	if strings.TrimSpace(name) == "" && strings.TrimSpace(description) == "" {
		return nil, errno.RequestErr.WithMessage("nothing to update")
	}
	playlist, err := service.findOwnedPlaylist(ctx, playlistId, userId)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) != "" {
		playlist.Name = name
	}
	if strings.TrimSpace(description) != "" {
		playlist.Description = description
	}
	playlist.UpdatedAt = time.Now().Format(constants.DataFormate)
	if err := db.UpdatePlaylist(ctx, playlistId, playlist.Name, playlist.Description, playlist.UpdatedAt); err != nil {
		return nil, errno.ServiceErr
	}
	return playlist, nil
}

func (service *PlaylistService) DeletePlaylist(ctx context.Context, userId, playlistId int64) error {
	if _, err := service.findOwnedPlaylist(ctx, playlistId, userId); err != nil {
		return err
	}
	if err := db.DeletePlaylist(ctx, playlistId); err != nil {
		return errno.ServiceErr
	}
	return nil
}

// GetUserPlaylists 用户的收藏夹列表, 每个收藏夹的视频再关联作者
func (service *PlaylistService) GetUserPlaylists(ctx context.Context, userId int64) ([]model.PlaylistInfo, error) {
	playlists, err := db.GetUserPlaylists(ctx, userId)
	if err != nil {
		return nil, errno.ServiceErr
	}

	infos := make([]model.PlaylistInfo, 0, len(playlists))
	for _, playlist := range playlists {
		info, err := service.composePlaylist(ctx, &playlist)
		if err != nil {
			return nil, err
		}
		infos = append(infos, *info)
	}
	return infos, nil
}

// GetPlaylist 单个收藏夹详情, 任何登录用户可读
func (service *PlaylistService) GetPlaylist(ctx context.Context, userId, playlistId int64) (*model.PlaylistInfo, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	playlist, exist, err := db.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}
	return service.composePlaylist(ctx, playlist)
}

func (service *PlaylistService) composePlaylist(ctx context.Context, playlist *model.Playlist) (*model.PlaylistInfo, error) {
	entries, err := db.GetPlaylistVideos(ctx, playlist.PlaylistId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	cards := make([]model.VideoCard, 0, len(entries))
	for _, entry := range entries {
		video, err := join.One(ctx, db.DB, model.Video{}, "video_id = ?", entry.VideoId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		if video.VideoId == 0 {
			// 视频已删除, 条目成为孤儿
			continue
		}
		owner, err := join.One(ctx, db.DB, model.User{}, "user_id = ?", video.UserId)
		if err != nil {
			return nil, errno.ServiceErr
		}
		cards = append(cards, model.VideoCard{
			VideoId:     video.VideoId,
			Title:       video.Title,
			Description: video.Description,
			CoverUrl:    video.CoverUrl,
			Duration:    video.Duration,
			VisitCount:  video.VisitCount,
			CreatedAt:   video.CreatedAt,
			UserName:    owner.UserName,
		})
	}
	return &model.PlaylistInfo{
		PlaylistId:  playlist.PlaylistId,
		Name:        playlist.Name,
		Description: playlist.Description,
		CreatedAt:   playlist.CreatedAt,
		Videos:      cards,
	}, nil
}

func (service *PlaylistService) findOwnedPlaylist(ctx context.Context, playlistId, userId int64) (*model.Playlist, error) {
	if userId == 0 {
		return nil, errno.UnauthorizedErr
	}
	playlist, exist, err := db.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		return nil, errno.ServiceErr
	}
	if !exist {
		return nil, errno.NotFoundErr.WithMessage("playlist not found")
	}
	if playlist.UserId != userId {
		return nil, errno.UnauthorizedErr.WithMessage("not the owner of this playlist")
	}
	return playlist, nil
}
