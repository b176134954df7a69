package constants

const (
	DataFormate = "2006-01-02 15:04:05"

	DefaultPage  = int64(1)
	DefaultLimit = int64(10)
	MaxLimit     = int64(100)

	MaxCommentLength = 500
	MaxTweetLength   = 280

	ApiServiceName = "vidtube-api"
)

// Like目标类型
const (
	TargetTypeVideo   = "video"
	TargetTypeComment = "comment"
	TargetTypeTweet   = "tweet"
)
