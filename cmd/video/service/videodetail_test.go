package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
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
		&model.User{}, &model.Video{}, &model.Subscription{},
		&model.Like{}, &model.Comment{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	for _, table := range []interface{}{&model.Like{}, &model.Comment{}, &model.Subscription{}, &model.Video{}, &model.User{}} {
		gdb.Where("1 = 1").Delete(table)
	}
	db.DB = gdb
}

func seedUser(t *testing.T, userId int64, userName string) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	user := model.User{
		UserId:    userId,
		UserName:  userName,
		Email:     userName + "@example.com",
		AvatarUrl: "https://cdn.example.com/" + userName + ".png",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
}

func seedVideo(t *testing.T, videoId, userId, visitCount int64, title string) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	video := model.Video{
		VideoId:     videoId,
		UserId:      userId,
		Title:       title,
		VisitCount:  visitCount,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.DB.Create(&video).Error; err != nil {
		t.Fatalf("seed video failed: %v", err)
	}
}

// TestGetVideoDetail 测试详情视图组合
// 派生字段没有任何匹配行时必须全部是零值, 而不是报错或缺字段
func TestGetVideoDetail(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	seedUser(t, 10, "creator")
	seedUser(t, 20, "viewer")
	seedVideo(t, 1, 10, 7, "first upload")

	svc := NewVideoDetailService(ctx)

	t.Run("FreshVideoAllZeroValues", func(t *testing.T) {
		detail, err := svc.GetVideoDetail(ctx, 1, 20)
		if err != nil {
			t.Fatalf("get detail failed: %v", err)
		}
		if detail.LikeCount != 0 || detail.IsLiked {
			t.Errorf("expected no likes, got count=%d liked=%v", detail.LikeCount, detail.IsLiked)
		}
		if detail.CommentCount != 0 {
			t.Errorf("expected 0 comments, got %d", detail.CommentCount)
		}
		if detail.ChannelSubs != 0 || detail.IsSubscribed {
			t.Errorf("expected no subscriptions, got subs=%d subscribed=%v", detail.ChannelSubs, detail.IsSubscribed)
		}
		if detail.UserName != "creator" {
			t.Errorf("expected owner name creator, got %q", detail.UserName)
		}
		// 热计数未命中时用持久副本
		if detail.VisitCount != 7 {
			t.Errorf("expected visit count 7, got %d", detail.VisitCount)
		}
	})

	t.Run("DerivedFieldsFollowRows", func(t *testing.T) {
		now := time.Now().Format(constants.DataFormate)
		if err := db.DB.Create(&model.Like{
			LikeId: 100, UserId: 20, TargetType: constants.TargetTypeVideo, TargetId: 1, CreatedAt: now,
		}).Error; err != nil {
			t.Fatalf("seed like failed: %v", err)
		}
		if err := db.DB.Create(&model.Comment{
			CommentId: 101, VideoId: 1, UserId: 20, Content: "nice", CreatedAt: now, UpdatedAt: now,
		}).Error; err != nil {
			t.Fatalf("seed comment failed: %v", err)
		}
		if err := db.DB.Create(&model.Subscription{
			SubscriptionId: 102, SubscriberId: 20, ChannelId: 10, CreatedAt: now,
		}).Error; err != nil {
			t.Fatalf("seed subscription failed: %v", err)
		}

		detail, err := svc.GetVideoDetail(ctx, 1, 20)
		if err != nil {
			t.Fatalf("get detail failed: %v", err)
		}
		if detail.LikeCount != 1 || !detail.IsLiked {
			t.Errorf("expected liked once, got count=%d liked=%v", detail.LikeCount, detail.IsLiked)
		}
		if detail.CommentCount != 1 {
			t.Errorf("expected 1 comment, got %d", detail.CommentCount)
		}
		if detail.ChannelSubs != 1 || !detail.IsSubscribed {
			t.Errorf("expected subscribed channel, got subs=%d subscribed=%v", detail.ChannelSubs, detail.IsSubscribed)
		}
	})

	t.Run("IsLikedPerActor", func(t *testing.T) {
		// 点赞状态是观察者视角的, 频道主自己没点过赞
		detail, err := svc.GetVideoDetail(ctx, 1, 10)
		if err != nil {
			t.Fatalf("get detail failed: %v", err)
		}
		if detail.IsLiked {
			t.Error("owner never liked the video")
		}
		if detail.IsSubscribed {
			t.Error("owner never subscribed to self")
		}
		if detail.LikeCount != 1 || detail.ChannelSubs != 1 {
			t.Errorf("counts are global, got likes=%d subs=%d", detail.LikeCount, detail.ChannelSubs)
		}
	})

	t.Run("OrphanedOwnerDegrades", func(t *testing.T) {
		// 作者已注销的视频仍可观看, 作者档案退化为零值
		seedVideo(t, 2, 999, 0, "orphan")
		detail, err := svc.GetVideoDetail(ctx, 2, 20)
		if err != nil {
			t.Fatalf("get detail failed: %v", err)
		}
		if detail.UserName != "" || detail.AvatarUrl != "" {
			t.Errorf("expected empty owner profile, got name=%q avatar=%q", detail.UserName, detail.AvatarUrl)
		}
		if detail.Title != "orphan" {
			t.Errorf("expected video fields intact, got title %q", detail.Title)
		}
	})

	t.Run("AnonymousActorRejected", func(t *testing.T) {
		_, err := svc.GetVideoDetail(ctx, 1, 0)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UnauthorizedCode {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})

	t.Run("UnknownVideo", func(t *testing.T) {
		_, err := svc.GetVideoDetail(ctx, 404, 20)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.VideoNotExistCode {
			t.Errorf("expected video not exist, got %v", err)
		}
	})
}
