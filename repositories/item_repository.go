package repositories

import (
	"ZomatoBackend/models"
	"errors"
	"gorm.io/gorm"
	"strings"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// 查詢所有餐點，依分類和名稱排序
func (r *ItemRepository) GetAll() ([]models.Item, error) {
	var items []models.Item
	err := r.db.Order("category, name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// 查詢所有餐點並依分類分組
func (r *ItemRepository) GetByCategory() (map[string][]models.Item, error) {
	items, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	itemsByCategory := make(map[string][]models.Item)
	for _, item := range items {
		itemsByCategory[item.Category] = append(itemsByCategory[item.Category], item)
	}
	return itemsByCategory, nil
}

// 以ID查詢餐點，查無時回傳nil
func (r *ItemRepository) GetByID(itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, "id = ?", itemID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// 以名稱查詢餐點，查無時回傳nil
func (r *ItemRepository) GetByName(name string) (*models.Item, error) {
	var item models.Item
	err := r.db.First(&item, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// 新增餐點，名稱重複時回傳ErrItemNameExists
// 價格格式由呼叫端驗證
func (r *ItemRepository) Create(item *models.Item) error {
	existing, err := r.GetByName(item.Name)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrItemNameExists
	}

	return r.db.Create(item).Error
}

// 更新餐點，覆蓋所有可變欄位(包含清空image_url)
func (r *ItemRepository) Update(item *models.Item) error {
	return r.db.
		Model(&models.Item{}).
		Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":      item.Name,
			"category":  item.Category,
			"price":     item.Price,
			"image_url": item.ImageURL,
		}).
		Error
}

// 刪除餐點，回傳是否有刪除任何資料
// 關聯的訂單由資料庫的CASCADE一併刪除
func (r *ItemRepository) Delete(itemID uint) (bool, error) {
	result := r.db.Delete(&models.Item{}, "id = ?", itemID)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// 以名稱或分類搜尋餐點(不分大小寫的部分比對)
// categoryFilter不為空時再限制為完全相符的分類
func (r *ItemRepository) Search(term, categoryFilter string) ([]models.Item, error) {
	pattern := "%" + strings.ToLower(term) + "%"

	query := r.db.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	if categoryFilter != "" {
		query = query.Where("category = ?", categoryFilter)
	}

	var items []models.Item
	err := query.Order("category, name").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
