package redis

import (
	"context"
	"strconv"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// 播放数热计数存在zset里, MySQL的visit_count是持久副本

var ErrNotLoaded = errors.New("redis client not loaded")

func IncrVideoVisitInfo(ctx context.Context, vid string) error {
	if redisDBVideoInfo == nil {
		return ErrNotLoaded
	}
	_, err := redisDBVideoInfo.ZIncrBy(ctx, `visit`, 1, vid).Result()
	if err != nil {
		return err
	}
	return nil
}

func PutVideoVisitInfo(ctx context.Context, vid string, visitCount int64) error {
	if redisDBVideoInfo == nil {
		return ErrNotLoaded
	}
	_, err := redisDBVideoInfo.ZAdd(ctx, `visit`, redis.Z{Score: float64(visitCount), Member: vid}).Result()
	if err != nil {
		return err
	}
	return nil
}

// GetVideoVisitCount 读取热计数, 成员不存在时返回-1交由调用方回落DB
func GetVideoVisitCount(ctx context.Context, vid string) (int64, error) {
	if redisDBVideoInfo == nil {
		return -1, ErrNotLoaded
	}
	s, err := redisDBVideoInfo.ZScore(ctx, `visit`, vid).Result()
	if errors.Is(err, redis.Nil) {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return int64(s), nil
}

func FormatVideoId(videoId int64) string {
	return strconv.FormatInt(videoId, 10)
}
