package model

// User 用户既是观众也是频道主体
type User struct {
	UserId    int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName  string `gorm:"column:user_name;uniqueIndex:idx_user_name" json:"user_name"`
	Email     string `gorm:"column:email;uniqueIndex:idx_email" json:"email"`
	Password  string `gorm:"column:password" json:"-"`
	AvatarUrl string `gorm:"column:avatar_url" json:"avatar_url"`
	CoverUrl  string `gorm:"column:cover_url" json:"cover_url"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

// UserVideoWatchHistory 观看历史, 按watch_time倒序即为最近观看
type UserVideoWatchHistory struct {
	UserVideoWatchHistoryId int64  `gorm:"column:user_video_watch_history_id;primaryKey" json:"user_video_watch_history_id"`
	UserId                  int64  `gorm:"column:user_id;index" json:"user_id"`
	VideoId                 int64  `gorm:"column:video_id" json:"video_id"`
	WatchTime               string `gorm:"column:watch_time" json:"watch_time"`
}

func (h *UserVideoWatchHistory) TableName() string {
	return "user_video_watch_histories"
}
