package model

// Subscription 订阅关系
// (subscriber_id, channel_id)唯一键是并发切换下的正确性兜底
type Subscription struct {
	SubscriptionId int64  `gorm:"column:subscription_id;primaryKey" json:"subscription_id"`
	SubscriberId   int64  `gorm:"column:subscriber_id;uniqueIndex:idx_subscriber_channel" json:"subscriber_id"`
	ChannelId      int64  `gorm:"column:channel_id;uniqueIndex:idx_subscriber_channel" json:"channel_id"`
	CreatedAt      string `gorm:"column:created_at" json:"created_at"`
}

func (s *Subscription) TableName() string {
	return "subscriptions"
}
