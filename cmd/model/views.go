package model

// 视图结构是固定形状的组合结果, 所有统计字段恒存在,
// 无匹配时为零值而不是缺省

// UserLite 公开的用户信息
type UserLite struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	AvatarUrl string `json:"avatar_url"`
}

// ChannelProfile 频道主页
type ChannelProfile struct {
	UserId            int64  `json:"user_id"`
	UserName          string `json:"user_name"`
	Email             string `json:"email"`
	AvatarUrl         string `json:"avatar_url"`
	CoverUrl          string `json:"cover_url"`
	CreatedAt         string `json:"created_at"`
	SubscriberCount   int64  `json:"subscriber_count"`
	SubscribedToCount int64  `json:"subscribed_to_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
}

// VideoDetail 视频详情
type VideoDetail struct {
	VideoId      int64  `json:"video_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	VideoUrl     string `json:"video_url"`
	CoverUrl     string `json:"cover_url"`
	Duration     int64  `json:"duration"`
	VisitCount   int64  `json:"visit_count"`
	CreatedAt    string `json:"created_at"`
	UserName     string `json:"user_name"`
	AvatarUrl    string `json:"avatar_url"`
	ChannelSubs  int64  `json:"channel_subs"`
	IsSubscribed bool   `json:"is_subscribed"`
	LikeCount    int64  `json:"like_count"`
	IsLiked      bool   `json:"is_liked"`
	CommentCount int64  `json:"comment_count"`
}

// DashboardStats 频道统计面板
type DashboardStats struct {
	UserId           int64  `json:"user_id"`
	UserName         string `json:"user_name"`
	Email            string `json:"email"`
	AvatarUrl        string `json:"avatar_url"`
	CreatedAt        string `json:"created_at"`
	TotalSubscribers int64  `json:"total_subscribers"`
	TotalVideos      int64  `json:"total_videos"`
	TotalViews       int64  `json:"total_views"`
	TotalLikes       int64  `json:"total_likes"`
}

// CommentInfo 评论及其作者信息和点赞数
type CommentInfo struct {
	CommentId int64    `json:"comment_id"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Author    UserLite `json:"author"`
	LikeCount int64    `json:"like_count"`
}

// SubscriberInfo 频道的订阅者
type SubscriberInfo struct {
	SubscriptionId int64    `json:"subscription_id"`
	SubscribedAt   string   `json:"subscribed_at"`
	Subscriber     UserLite `json:"subscriber"`
}

// ChannelCard 订阅列表中的频道及其订阅数
type ChannelCard struct {
	UserId          int64  `json:"user_id"`
	UserName        string `json:"user_name"`
	AvatarUrl       string `json:"avatar_url"`
	SubscriberCount int64  `json:"subscriber_count"`
}

// VideoCard 视频列表项, 附带作者名
type VideoCard struct {
	VideoId     int64  `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverUrl    string `json:"cover_url"`
	Duration    int64  `json:"duration"`
	VisitCount  int64  `json:"visit_count"`
	CreatedAt   string `json:"created_at"`
	UserName    string `json:"user_name"`
}

// TweetInfo 推文及其点赞数
type TweetInfo struct {
	TweetId   int64  `json:"tweet_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	LikeCount int64  `json:"like_count"`
	IsLiked   bool   `json:"is_liked"`
}

// PlaylistInfo 收藏夹及其中的视频
type PlaylistInfo struct {
	PlaylistId  int64       `json:"playlist_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	CreatedAt   string      `json:"created_at"`
	Videos      []VideoCard `json:"videos"`
}
