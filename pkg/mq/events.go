package mq

// ToggleEvent 关系翻转事件, 供下游通知/统计消费
type ToggleEvent struct {
	ActorId    int64  `json:"actor_id"`    // 发起者ID
	TargetType string `json:"target_type"` // "video" "comment" "tweet" "channel"
	TargetId   int64  `json:"target_id"`   // 目标ID
	State      string `json:"state"`       // "created" or "removed"
	EventType  string `json:"event_type"`  // "like" or "subscription"
	Timestamp  int64  `json:"timestamp"`   // 时间戳
	EventId    string `json:"event_id"`    // 事件ID
}

const (
	ToggleEventExchange = "toggle_events"
	ToggleEventQueue    = "toggle_event_queue"
)
