package service

import (
	"context"
	"testing"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
)

// TestSearchVideos 测试浏览页检索: 模糊匹配 + 排序白名单 + 分页
func TestSearchVideos(t *testing.T) {
	setupTestDB(t)
	ctx := context.Background()

	seedUser(t, 10, "creator")
	now := time.Now().Format(constants.DataFormate)
	seed := []model.Video{
		{VideoId: 1, UserId: 10, Title: "go tutorial", Description: "basics", VisitCount: 50, Duration: 300, IsPublished: true},
		{VideoId: 2, UserId: 10, Title: "rust tutorial", Description: "ownership", VisitCount: 90, Duration: 600, IsPublished: true},
		{VideoId: 3, UserId: 10, Title: "cooking", Description: "a tutorial on pasta", VisitCount: 10, Duration: 120, IsPublished: true},
		{VideoId: 4, UserId: 10, Title: "tutorial draft", Description: "unfinished", VisitCount: 0, Duration: 60, IsPublished: false},
	}
	for i := range seed {
		seed[i].CreatedAt = now
		seed[i].UpdatedAt = now
		if err := db.DB.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed video failed: %v", err)
		}
	}

	svc := NewVideoFeedService(ctx)

	t.Run("QueryRequired", func(t *testing.T) {
		if _, err := svc.SearchVideos(ctx, "   ", "", "", 1, 10); err == nil {
			t.Error("expected error for blank query")
		}
	})

	t.Run("MatchesTitleAndDescription", func(t *testing.T) {
		// 描述命中的视频也要进结果, 未发布的不进
		page, err := svc.SearchVideos(ctx, "tutorial", "", "", 1, 10)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if page.Total != 3 {
			t.Fatalf("expected 3 matches, got %d", page.Total)
		}
		for _, card := range page.Items {
			if card.VideoId == 4 {
				t.Error("unpublished video leaked into feed")
			}
			if card.UserName != "creator" {
				t.Errorf("expected author name on card, got %q", card.UserName)
			}
		}
	})

	t.Run("SortByViewsDesc", func(t *testing.T) {
		page, err := svc.SearchVideos(ctx, "tutorial", "views", "", 1, 10)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(page.Items) != 3 || page.Items[0].VideoId != 2 || page.Items[2].VideoId != 3 {
			t.Errorf("expected views descending order, got %+v", page.Items)
		}
	})

	t.Run("SortByDurationAsc", func(t *testing.T) {
		page, err := svc.SearchVideos(ctx, "tutorial", "duration", "asc", 1, 10)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(page.Items) != 3 || page.Items[0].VideoId != 3 || page.Items[2].VideoId != 2 {
			t.Errorf("expected duration ascending order, got %+v", page.Items)
		}
	})

	t.Run("UnknownSortFieldFallsBack", func(t *testing.T) {
		// 白名单外的字段不会拼进SQL
		if _, err := svc.SearchVideos(ctx, "tutorial", "visit_count; DROP TABLE videos", "", 1, 10); err != nil {
			t.Fatalf("search failed: %v", err)
		}
	})

	t.Run("Pagination", func(t *testing.T) {
		page, err := svc.SearchVideos(ctx, "tutorial", "views", "", 2, 2)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if page.Total != 3 || page.TotalPages != 2 || len(page.Items) != 1 {
			t.Errorf("expected last page with 1 item of 3, got total=%d pages=%d items=%d",
				page.Total, page.TotalPages, len(page.Items))
		}
	})
}
