package service

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/toggle"
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
	if err := gdb.AutoMigrate(&model.User{}, &model.Subscription{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	gdb.Where("1 = 1").Delete(&model.Subscription{})
	gdb.Where("1 = 1").Delete(&model.User{})
	db.DB = gdb
}

func seedUser(t *testing.T, userId int64, name string) {
	t.Helper()
	now := time.Now().Format(constants.DataFormate)
	user := model.User{
		UserId:    userId,
		UserName:  name,
		Email:     name + "@example.com",
		Password:  "x",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
}

// TestToggleSubscription 测试订阅关系翻转
func TestToggleSubscription(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")
	seedUser(t, 2, "bob")

	// 事件生产者为nil, 翻转流程不受影响
	svc := NewRelationService(ctx, nil)

	t.Run("Oscillation", func(t *testing.T) {
		want := []toggle.State{toggle.StateCreated, toggle.StateRemoved, toggle.StateCreated}
		for i, expected := range want {
			state, err := svc.ToggleSubscription(ctx, 1, 2)
			if err != nil {
				t.Fatalf("toggle %d failed: %v", i, err)
			}
			if state != expected {
				t.Errorf("toggle %d: expected %s, got %s", i, expected, state)
			}
		}
		subscribed, err := db.IsSubscribed(ctx, 1, 2)
		if err != nil {
			t.Fatalf("is subscribed failed: %v", err)
		}
		if !subscribed {
			t.Error("expected subscribed after odd number of toggles")
		}
	})

	t.Run("DirectionMatters", func(t *testing.T) {
		// 1订阅2不代表2订阅1
		subscribed, err := db.IsSubscribed(ctx, 2, 1)
		if err != nil {
			t.Fatalf("is subscribed failed: %v", err)
		}
		if subscribed {
			t.Error("reverse direction should not be subscribed")
		}
	})

	t.Run("SelfSubscriptionAllowed", func(t *testing.T) {
		// 自我订阅不拦截
		state, err := svc.ToggleSubscription(ctx, 1, 1)
		if err != nil {
			t.Fatalf("self toggle failed: %v", err)
		}
		if state != toggle.StateCreated {
			t.Errorf("expected created, got %s", state)
		}
	})

	t.Run("UnknownChannel", func(t *testing.T) {
		_, err := svc.ToggleSubscription(ctx, 1, 9999)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UserNotExistCode {
			t.Errorf("expected user not exist, got %v", err)
		}
	})

	t.Run("AnonymousActor", func(t *testing.T) {
		_, err := svc.ToggleSubscription(ctx, 0, 2)
		var e errno.ErrNo
		if !errors.As(err, &e) || e.ErrCode != errno.UnauthorizedCode {
			t.Errorf("expected unauthorized, got %v", err)
		}
	})
}

// TestSubscriberList 测试订阅者分页列表
func TestSubscriberList(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()
	seedUser(t, 1, "alice")

	now := time.Now().Format(constants.DataFormate)
	for i := int64(0); i < 12; i++ {
		seedUser(t, 100+i, "fan"+strconv.FormatInt(i, 10))
		sub := model.Subscription{
			SubscriptionId: 100 + i,
			SubscriberId:   100 + i,
			ChannelId:      1,
			CreatedAt:      now,
		}
		if err := db.DB.Create(&sub).Error; err != nil {
			t.Fatalf("seed subscription failed: %v", err)
		}
	}

	page, err := NewSubscriberListService(ctx).GetSubscribers(ctx, 1, 2, 10)
	if err != nil {
		t.Fatalf("get subscribers failed: %v", err)
	}
	if page.Total != 12 {
		t.Errorf("expected total 12, got %d", page.Total)
	}
	if page.TotalPages != 2 {
		t.Errorf("expected 2 total pages, got %d", page.TotalPages)
	}
	if len(page.Items) != 2 {
		t.Errorf("expected 2 items on page 2, got %d", len(page.Items))
	}
}
