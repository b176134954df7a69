package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/user/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set, skipping database integration test")
	}
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("mysql unavailable: %v", err)
	}
	if err := gdb.AutoMigrate(
		&model.User{}, &model.Video{},
		&model.Subscription{}, &model.Like{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []interface{}{&model.Like{}, &model.Subscription{}, &model.Video{}, &model.User{}} {
		gdb.Where("1 = 1").Delete(table)
	}
	db.DB = gdb
}

func seedChannel(t *testing.T, ctx context.Context) *model.User {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	user := &model.User{
		UserId:    1001,
		UserName:  "Alice",
		Email:     "alice@example.com",
		Password:  "x",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateUser(ctx, user); err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return user
}

// TestChannelProfile 测试频道主页视图组合
func TestChannelProfile(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := seedChannel(t, ctx)

	// alice订阅了2002, 2003和2004订阅了alice
	now := time.Now().Format(constants.DataFormate)
	subs := []model.Subscription{
		{SubscriptionId: 1, SubscriberId: user.UserId, ChannelId: 2002, CreatedAt: now},
		{SubscriptionId: 2, SubscriberId: 2003, ChannelId: user.UserId, CreatedAt: now},
		{SubscriptionId: 3, SubscriberId: 2004, ChannelId: user.UserId, CreatedAt: now},
	}
	for _, s := range subs {
		if err := db.DB.Create(&s).Error; err != nil {
			t.Fatalf("seed subscription failed: %v", err)
		}
	}

	t.Run("Counts", func(t *testing.T) {
		profile, err := NewChannelProfileService(ctx).GetChannelProfile(ctx, "alice", 0)
		if err != nil {
			t.Fatalf("get profile failed: %v", err)
		}
		if profile.SubscriberCount != 2 {
			t.Errorf("expected 2 subscribers, got %d", profile.SubscriberCount)
		}
		if profile.SubscribedToCount != 1 {
			t.Errorf("expected 1 subscription, got %d", profile.SubscribedToCount)
		}
		if profile.IsSubscribed {
			t.Error("anonymous actor should never be subscribed")
		}
	})

	t.Run("CaseInsensitiveLookup", func(t *testing.T) {
		// 大小写不同的用户名命中同一个频道
		profile, err := NewChannelProfileService(ctx).GetChannelProfile(ctx, "ALICE", 0)
		if err != nil {
			t.Fatalf("get profile failed: %v", err)
		}
		if profile.UserId != user.UserId {
			t.Errorf("expected user %d, got %d", user.UserId, profile.UserId)
		}
	})

	t.Run("IsSubscribedPerActor", func(t *testing.T) {
		profile, err := NewChannelProfileService(ctx).GetChannelProfile(ctx, "alice", 2003)
		if err != nil {
			t.Fatalf("get profile failed: %v", err)
		}
		if !profile.IsSubscribed {
			t.Error("actor 2003 should be subscribed")
		}
		profile, err = NewChannelProfileService(ctx).GetChannelProfile(ctx, "alice", 9999)
		if err != nil {
			t.Fatalf("get profile failed: %v", err)
		}
		if profile.IsSubscribed {
			t.Error("actor 9999 should not be subscribed")
		}
	})

	t.Run("UnknownChannel", func(t *testing.T) {
		// NotFound原样透传, 不会变成零值档案
		_, err := NewChannelProfileService(ctx).GetChannelProfile(ctx, "nobody", 0)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UserNotExistCode {
			t.Errorf("expected user not exist, got %v", err)
		}
	})
}

// TestChannelStats 测试频道统计聚合
func TestChannelStats(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := seedChannel(t, ctx)

	now := time.Now().Format(constants.DataFormate)
	views := []int64{10, 20, 30}
	likes := []int64{1, 0, 2}
	likeId := int64(1)
	for i, v := range views {
		video := model.Video{
			VideoId:    int64(3000 + i),
			UserId:     user.UserId,
			Title:      "vol",
			VisitCount: v,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := db.DB.Create(&video).Error; err != nil {
			t.Fatalf("seed video failed: %v", err)
		}
		for j := int64(0); j < likes[i]; j++ {
			like := model.Like{
				LikeId:     likeId,
				UserId:     4000 + likeId,
				TargetType: constants.TargetTypeVideo,
				TargetId:   video.VideoId,
				CreatedAt:  now,
			}
			likeId++
			if err := db.DB.Create(&like).Error; err != nil {
				t.Fatalf("seed like failed: %v", err)
			}
		}
	}

	t.Run("Sums", func(t *testing.T) {
		stats, err := NewDashboardService(ctx).GetChannelStats(ctx, "alice")
		if err != nil {
			t.Fatalf("get stats failed: %v", err)
		}
		if stats.TotalVideos != 3 {
			t.Errorf("expected 3 videos, got %d", stats.TotalVideos)
		}
		if stats.TotalViews != 60 {
			t.Errorf("expected 60 views, got %d", stats.TotalViews)
		}
		if stats.TotalLikes != 3 {
			t.Errorf("expected 3 likes, got %d", stats.TotalLikes)
		}
	})

	t.Run("ZeroVideoChannel", func(t *testing.T) {
		// 没有视频的频道所有统计是0, 而不是错误
		empty := &model.User{
			UserId:    1002,
			UserName:  "bob",
			Email:     "bob@example.com",
			Password:  "x",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.CreateUser(ctx, empty); err != nil {
			t.Fatalf("seed user failed: %v", err)
		}
		stats, err := NewDashboardService(ctx).GetChannelStats(ctx, "bob")
		if err != nil {
			t.Fatalf("get stats failed: %v", err)
		}
		if stats.TotalVideos != 0 || stats.TotalViews != 0 || stats.TotalLikes != 0 || stats.TotalSubscribers != 0 {
			t.Errorf("expected all zero stats, got %+v", stats)
		}
	})
}

// TestChannelVideosPagination 测试频道视频分页
func TestChannelVideosPagination(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	user := seedChannel(t, ctx)

	now := time.Now().Format(constants.DataFormate)
	for i := 0; i < 25; i++ {
		video := model.Video{
			VideoId:   int64(5000 + i),
			UserId:    user.UserId,
			Title:     "vol",
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.DB.Create(&video).Error; err != nil {
			t.Fatalf("seed video failed: %v", err)
		}
	}

	t.Run("LastPage", func(t *testing.T) {
		page, err := NewDashboardService(ctx).GetChannelVideos(ctx, "alice", 3, 10)
		if err != nil {
			t.Fatalf("get videos failed: %v", err)
		}
		if page.Total != 25 {
			t.Errorf("expected total 25, got %d", page.Total)
		}
		if page.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", page.TotalPages)
		}
		if len(page.Items) != 5 {
			t.Errorf("expected 5 items on last page, got %d", len(page.Items))
		}
	})

	t.Run("InvalidParamsNormalized", func(t *testing.T) {
		page, err := NewDashboardService(ctx).GetChannelVideos(ctx, "alice", 0, -1)
		if err != nil {
			t.Fatalf("get videos failed: %v", err)
		}
		if page.Page != 1 || page.Limit != 10 {
			t.Errorf("expected normalized (1, 10), got (%d, %d)", page.Page, page.Limit)
		}
		if len(page.Items) != 10 {
			t.Errorf("expected 10 items, got %d", len(page.Items))
		}
	})

	t.Run("StableOrdering", func(t *testing.T) {
		// 同一创建时间下按主键倒序兜底排序
		page, err := NewDashboardService(ctx).GetChannelVideos(ctx, "alice", 1, 10)
		if err != nil {
			t.Fatalf("get videos failed: %v", err)
		}
		if page.Items[0].VideoId != 5024 {
			t.Errorf("expected first item 5024, got %d", page.Items[0].VideoId)
		}
	})
}
