package repositories_test

import (
	"ZomatoBackend/models"
	"ZomatoBackend/repositories"
	"fmt"
	"sync/atomic"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// 建立測試用的in-memory資料庫，開啟外鍵約束以測試CASCADE行為
// 每個測試使用獨立的資料庫名稱避免互相干擾
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared&_foreign_keys=on",
		atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("開啟測試資料庫失敗: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.Order{},
	)
	if err != nil {
		t.Fatalf("建立資料表失敗: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, repo *repositories.UserRepository, username, password string) *models.User {
	t.Helper()

	user, err := repo.Create(username, password)
	if err != nil {
		t.Fatalf("建立測試使用者失敗: %v", err)
	}
	return user
}

func createTestItem(t *testing.T, repo *repositories.ItemRepository, name, category string, price float64) *models.Item {
	t.Helper()

	item := &models.Item{Name: name, Category: category, Price: price}
	if err := repo.Create(item); err != nil {
		t.Fatalf("建立測試餐點失敗: %v", err)
	}
	return item
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.Order{}).Count(&count).Error; err != nil {
		t.Fatalf("查詢訂單數失敗: %v", err)
	}
	return count
}
