package db

import (
	"context"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/join"
	"github.com/pkg/errors"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	if err := DB.WithContext(ctx).Create(playlist).Error; err != nil {
		return errors.Wrapf(err, "CreatePlaylist failed,err:%v", err)
	}
	return nil
}

func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, bool, error) {
	var playlists []model.Playlist
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Limit(1).Find(&playlists).Error; err != nil {
		return nil, false, errors.Wrapf(err, "GetPlaylistInfo failed,err:%v", err)
	}
	if len(playlists) == 0 {
		return nil, false, nil
	}
	return &playlists[0], true, nil
}

func UpdatePlaylist(ctx context.Context, playlistId int64, name, description, updatedAt string) error {
	updates := map[string]interface{}{
		"name":        name,
		"description": description,
		"updated_at":  updatedAt,
	}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(updates).Error; err != nil {
		return errors.Wrapf(err, "UpdatePlaylist failed,err:%v", err)
	}
	return nil
}

func DeletePlaylist(ctx context.Context, playlistId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist failed,err:%v", err)
	}
	// 收藏夹条目随收藏夹一起清理
	if err := DB.WithContext(ctx).Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "DeletePlaylist entries failed,err:%v", err)
	}
	return nil
}

func GetUserPlaylists(ctx context.Context, userId int64) ([]model.Playlist, error) {
	return join.Many[model.Playlist](ctx, DB, "created_at DESC, playlist_id DESC", "user_id = ?", userId)
}

// AddPlaylistVideo 追加条目, 同一视频允许重复加入
func AddPlaylistVideo(ctx context.Context, entry *model.PlaylistVideo) error {
	if err := DB.WithContext(ctx).Create(entry).Error; err != nil {
		return errors.Wrapf(err, "AddPlaylistVideo failed,err:%v", err)
	}
	return nil
}

// RemovePlaylistVideo 按条目Id移除, 同一视频重复加入时只删指定那条
func RemovePlaylistVideo(ctx context.Context, playlistId, playlistVideoId int64) error {
	if err := DB.WithContext(ctx).Where("playlist_id = ? AND playlist_video_id = ?", playlistId, playlistVideoId).
		Delete(&model.PlaylistVideo{}).Error; err != nil {
		return errors.Wrapf(err, "RemovePlaylistVideo failed,err:%v", err)
	}
	return nil
}

// GetPlaylistVideos 收藏夹条目按加入顺序返回
func GetPlaylistVideos(ctx context.Context, playlistId int64) ([]model.PlaylistVideo, error) {
	return join.Many[model.PlaylistVideo](ctx, DB, "position ASC, playlist_video_id ASC", "playlist_id = ?", playlistId)
}

// NextPosition 新条目的顺序号
func NextPosition(ctx context.Context, playlistId int64) (int64, error) {
	var maxPos *int64
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Select("MAX(position)").Scan(&maxPos).Error; err != nil {
		return 0, errors.Wrapf(err, "NextPosition failed,err:%v", err)
	}
	if maxPos == nil {
		return 1, nil
	}
	return *maxPos + 1, nil
}
