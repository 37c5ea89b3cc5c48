package repositories

import (
	"ZomatoBackend/models"
	"gorm.io/gorm"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var addressSanitizePattern = regexp.MustCompile(`[<>"']`)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// 檢查數量字串是否合法，回傳轉換後的整數
func ValidateQuantity(raw string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, newValidationError("數量必須是有效的數字")
	}
	if err := checkQuantity(quantity); err != nil {
		return 0, err
	}
	return quantity, nil
}

func checkQuantity(quantity int) error {
	if quantity < 1 || quantity > 100 {
		return newValidationError("數量必須介於1至100之間")
	}
	return nil
}

// 檢查外送地址是否合法，回傳去除頭尾空白並過濾特殊字元後的地址
func ValidateAddress(raw string) (string, error) {
	address := strings.TrimSpace(raw)
	if len(address) < 10 {
		return "", newValidationError("外送地址至少需要10個字元")
	}
	return addressSanitizePattern.ReplaceAllString(address, ""), nil
}

// 建立訂單
// 寫入的是驗證後的數量與過濾後的地址，不直接使用原始輸入
func (r *OrderRepository) Create(userID, itemID uint, quantity int, address string) error {
	if err := checkQuantity(quantity); err != nil {
		return err
	}

	sanitizedAddress, err := ValidateAddress(address)
	if err != nil {
		return err
	}

	//檢查餐點是否存在
	var count int64
	if err := r.db.Model(&models.Item{}).Where("id = ?", itemID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return ErrItemNotFound
	}

	order := models.Order{
		UserID:          userID,
		ItemID:          itemID,
		Quantity:        quantity,
		DeliveryAddress: sanitizedAddress,
	}
	return r.db.Create(&order).Error
}

// 訂單連同餐點資訊的查詢結果
type OrderDetail struct {
	OrderID         uint
	UserID          uint
	ItemID          uint
	Quantity        int
	DeliveryAddress string
	OrderTime       time.Time
	ItemName        string
	Category        string
	Price           float64
	Username        string //只在查詢全部訂單時填入
}

// 查詢使用者的訂單，新到舊排序
// limit大於0時才分頁，limit和offset一律以參數綁定
func (r *OrderRepository) GetUserOrders(userID uint, limit, offset int) ([]OrderDetail, error) {
	query := r.db.
		Table("orders").
		Select("orders.id AS order_id, orders.user_id, orders.item_id, orders.quantity, orders.delivery_address, orders.created_at AS order_time, items.name AS item_name, items.category, items.price").
		Joins("JOIN items ON items.id = orders.item_id").
		Where("orders.user_id = ?", userID).
		Order("orders.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var orders []OrderDetail
	if err := query.Scan(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// 查詢全部訂單(管理用)，連同餐點和使用者名稱
func (r *OrderRepository) GetAllOrders(limit, offset int) ([]OrderDetail, error) {
	query := r.db.
		Table("orders").
		Select("orders.id AS order_id, orders.user_id, orders.item_id, orders.quantity, orders.delivery_address, orders.created_at AS order_time, items.name AS item_name, items.category, items.price, users.username").
		Joins("JOIN items ON items.id = orders.item_id").
		Joins("JOIN users ON users.id = orders.user_id").
		Order("orders.created_at DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var orders []OrderDetail
	if err := query.Scan(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// 刪除訂單，只能刪除自己的訂單，回傳是否有刪除任何資料
func (r *OrderRepository) Delete(orderID, userID uint) (bool, error) {
	result := r.db.
		Where("id = ? AND user_id = ?", orderID, userID).
		Delete(&models.Order{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// 修改訂單的數量和地址，只能修改自己的訂單，回傳是否有修改任何資料
func (r *OrderRepository) Update(orderID, userID uint, quantity int, address string) (bool, error) {
	if err := checkQuantity(quantity); err != nil {
		return false, err
	}

	sanitizedAddress, err := ValidateAddress(address)
	if err != nil {
		return false, err
	}

	result := r.db.
		Model(&models.Order{}).
		Where("id = ? AND user_id = ?", orderID, userID).
		Updates(map[string]interface{}{
			"quantity":         quantity,
			"delivery_address": sanitizedAddress,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
