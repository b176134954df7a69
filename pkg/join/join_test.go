package join

import (
	"context"
	"os"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type book struct {
	Id     int64  `gorm:"column:id;primaryKey"`
	Author string `gorm:"column:author"`
	Title  string `gorm:"column:title"`
}

func (book) TableName() string {
	return "join_test_books"
}

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping database integration test in short mode")
	}
	dsn := os.Getenv("TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("TEST_MYSQL_DSN not set, skipping database integration test")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("mysql unavailable: %v", err)
	}
	if err := db.AutoMigrate(&book{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	db.Where("1 = 1").Delete(&book{})
	return db
}

func seedBooks(t *testing.T, db *gorm.DB, rows []book) {
	t.Helper()
	for _, row := range rows {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
}

// TestOne 测试单值连接的零匹配退化
func TestOne(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	seedBooks(t, db, []book{{Id: 1, Author: "alice", Title: "go"}})

	t.Run("Match", func(t *testing.T) {
		got, err := One(ctx, db, book{}, "id = ?", 1)
		if err != nil {
			t.Fatalf("one failed: %v", err)
		}
		if got.Author != "alice" {
			t.Errorf("expected alice, got %s", got.Author)
		}
	})

	t.Run("ZeroMatchDegradesToDefault", func(t *testing.T) {
		// 无匹配不是错误, 回落到默认值
		got, err := One(ctx, db, book{Author: "unknown"}, "id = ?", 999)
		if err != nil {
			t.Fatalf("one failed: %v", err)
		}
		if got.Author != "unknown" {
			t.Errorf("expected default value, got %+v", got)
		}
	})
}

// TestAggregates 测试聚合连接
func TestAggregates(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	seedBooks(t, db, []book{
		{Id: 1, Author: "alice", Title: "go"},
		{Id: 2, Author: "alice", Title: "sql"},
		{Id: 3, Author: "bob", Title: "redis"},
	})

	t.Run("Count", func(t *testing.T) {
		count, err := Count[book](ctx, db, "author = ?", "alice")
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 2 {
			t.Errorf("expected 2, got %d", count)
		}
	})

	t.Run("CountZeroMatch", func(t *testing.T) {
		count, err := Count[book](ctx, db, "author = ?", "nobody")
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 0 {
			t.Errorf("expected 0, got %d", count)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		exist, err := Exists[book](ctx, db, "author = ?", "bob")
		if err != nil {
			t.Fatalf("exists failed: %v", err)
		}
		if !exist {
			t.Error("expected true")
		}
		exist, err = Exists[book](ctx, db, "author = ?", "nobody")
		if err != nil {
			t.Fatalf("exists failed: %v", err)
		}
		if exist {
			t.Error("expected false")
		}
	})
}

// TestManyPaged 测试分页集合连接
func TestManyPaged(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	rows := make([]book, 0, 25)
	for i := 1; i <= 25; i++ {
		rows = append(rows, book{Id: int64(i), Author: "alice", Title: "vol"})
	}
	seedBooks(t, db, rows)

	t.Run("FullPage", func(t *testing.T) {
		items, total, err := ManyPaged[book](ctx, db, "id DESC", 0, 10, "author = ?", "alice")
		if err != nil {
			t.Fatalf("many paged failed: %v", err)
		}
		if total != 25 {
			t.Errorf("expected total 25, got %d", total)
		}
		if len(items) != 10 {
			t.Errorf("expected 10 items, got %d", len(items))
		}
		if items[0].Id != 25 {
			t.Errorf("expected ordering id DESC, first id = %d", items[0].Id)
		}
	})

	t.Run("LastPartialPage", func(t *testing.T) {
		items, total, err := ManyPaged[book](ctx, db, "id DESC", 20, 10, "author = ?", "alice")
		if err != nil {
			t.Fatalf("many paged failed: %v", err)
		}
		if total != 25 {
			t.Errorf("expected total 25, got %d", total)
		}
		if len(items) != 5 {
			t.Errorf("expected 5 items on last page, got %d", len(items))
		}
	})

	t.Run("BeyondLastPage", func(t *testing.T) {
		// 越界页拿到空集合而不是错误
		items, total, err := ManyPaged[book](ctx, db, "id DESC", 100, 10, "author = ?", "alice")
		if err != nil {
			t.Fatalf("many paged failed: %v", err)
		}
		if total != 25 {
			t.Errorf("expected total 25, got %d", total)
		}
		if len(items) != 0 {
			t.Errorf("expected empty page, got %d items", len(items))
		}
	})
}
