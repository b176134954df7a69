package redis

import (
	"context"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var redisDBVideoInfo *redis.Client

func Load() {
	redisDBVideoInfo = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       0,
	})

	if _, err := redisDBVideoInfo.Ping(context.Background()).Result(); err != nil {
		hlog.Info("redisDBVideoInfo", err)
	}
}
