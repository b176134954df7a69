package cache

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

// CountCacheManager 计数缓存管理器
// 评论数/点赞数走缓存, MySQL只在未命中时兜底
type CountCacheManager struct {
	client *redis.Client
	// 计数器缓存时间
	counterExpire time.Duration
}

func NewCountCacheManager(client *redis.Client) *CountCacheManager {
	return &CountCacheManager{
		client:        client,
		counterExpire: 1 * time.Hour,
	}
}

var defaultManager *CountCacheManager

// Load 进程启动时初始化, redis不可用时保持nil
func Load() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
		DB:       1,
	})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		hlog.Warnf("count cache unavailable: %v", err)
		return
	}
	defaultManager = NewCountCacheManager(client)
}

func Default() *CountCacheManager {
	return defaultManager
}

// 缓存键名常量
const (
	// 视频评论总数缓存键
	VideoCommentCountKey = "video:comment_count:%d"
	// 点赞数缓存键 target_type + target_id
	TargetLikeCountKey = "like:count:%s:%d"
)

// GetVideoCommentCount 获取视频评论总数, 未命中返回-1
func (ccm *CountCacheManager) GetVideoCommentCount(ctx context.Context, videoId int64) (int64, error) {
	if ccm == nil {
		return -1, nil
	}
	key := fmt.Sprintf(VideoCommentCountKey, videoId)
	count, err := ccm.client.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return -1, nil
		}
		return -1, fmt.Errorf("failed to get video comment count: %w", err)
	}
	return count, nil
}

func (ccm *CountCacheManager) SetVideoCommentCount(ctx context.Context, videoId, count int64) error {
	if ccm == nil {
		return nil
	}
	key := fmt.Sprintf(VideoCommentCountKey, videoId)
	return ccm.client.Set(ctx, key, count, ccm.counterExpire).Err()
}

// InvalidateVideoCommentCount 评论写路径后清缓存
func (ccm *CountCacheManager) InvalidateVideoCommentCount(ctx context.Context, videoId int64) {
	if ccm == nil {
		return
	}
	key := fmt.Sprintf(VideoCommentCountKey, videoId)
	if err := ccm.client.Del(ctx, key).Err(); err != nil {
		hlog.Warnf("Failed to invalidate comment count for video %d: %v", videoId, err)
	}
}

// GetTargetLikeCount 获取点赞数, 未命中返回-1
func (ccm *CountCacheManager) GetTargetLikeCount(ctx context.Context, targetType string, targetId int64) (int64, error) {
	if ccm == nil {
		return -1, nil
	}
	key := fmt.Sprintf(TargetLikeCountKey, targetType, targetId)
	count, err := ccm.client.Get(ctx, key).Int64()
	if err != nil {
		if err == redis.Nil {
			return -1, nil
		}
		return -1, fmt.Errorf("failed to get like count: %w", err)
	}
	return count, nil
}

func (ccm *CountCacheManager) SetTargetLikeCount(ctx context.Context, targetType string, targetId, count int64) error {
	if ccm == nil {
		return nil
	}
	key := fmt.Sprintf(TargetLikeCountKey, targetType, targetId)
	return ccm.client.Set(ctx, key, count, ccm.counterExpire).Err()
}

// InvalidateTargetLikeCount 点赞翻转后清缓存
func (ccm *CountCacheManager) InvalidateTargetLikeCount(ctx context.Context, targetType string, targetId int64) {
	if ccm == nil {
		return
	}
	key := fmt.Sprintf(TargetLikeCountKey, targetType, targetId)
	if err := ccm.client.Del(ctx, key).Err(); err != nil {
		hlog.Warnf("Failed to invalidate like count for %s %d: %v", targetType, targetId, err)
	}
}
