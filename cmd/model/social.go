package model

type Playlist struct {
	PlaylistId  int64  `gorm:"column:playlist_id;primaryKey" json:"playlist_id"`
	UserId      int64  `gorm:"column:user_id;index" json:"user_id"`
	Name        string `gorm:"column:name" json:"name"`
	Description string `gorm:"column:description" json:"description"`
	CreatedAt   string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   string `gorm:"column:updated_at" json:"updated_at"`
}

func (p *Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo 收藏夹中的视频条目, 允许同一视频重复加入
type PlaylistVideo struct {
	PlaylistVideoId int64 `gorm:"column:playlist_video_id;primaryKey" json:"playlist_video_id"`
	PlaylistId      int64 `gorm:"column:playlist_id;index" json:"playlist_id"`
	VideoId         int64 `gorm:"column:video_id" json:"video_id"`
	Position        int64 `gorm:"column:position" json:"position"`
}

func (p *PlaylistVideo) TableName() string {
	return "playlist_videos"
}

type Tweet struct {
	TweetId   int64  `gorm:"column:tweet_id;primaryKey" json:"tweet_id"`
	UserId    int64  `gorm:"column:user_id;index" json:"user_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (t *Tweet) TableName() string {
	return "tweets"
}
