package model

// Like 点赞关系, 目标为视频/评论/推文三者之一
// (user_id, target_type, target_id)唯一键是并发切换下的正确性兜底
type Like struct {
	LikeId     int64  `gorm:"column:like_id;primaryKey" json:"like_id"`
	UserId     int64  `gorm:"column:user_id;uniqueIndex:idx_user_target" json:"user_id"`
	TargetType string `gorm:"column:target_type;size:16;uniqueIndex:idx_user_target" json:"target_type"`
	TargetId   int64  `gorm:"column:target_id;uniqueIndex:idx_user_target" json:"target_id"`
	CreatedAt  string `gorm:"column:created_at" json:"created_at"`
}

func (l *Like) TableName() string {
	return "likes"
}

type Comment struct {
	CommentId int64  `gorm:"column:comment_id;primaryKey" json:"comment_id"`
	VideoId   int64  `gorm:"column:video_id;index" json:"video_id"`
	UserId    int64  `gorm:"column:user_id" json:"user_id"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt string `gorm:"column:updated_at" json:"updated_at"`
}

func (c *Comment) TableName() string {
	return "comments"
}
