package repositories

import (
	"ZomatoBackend/models"
	"time"
)

type PopularDish struct {
	ItemName     string
	Category     string
	Price        float64
	TotalOrdered int
	OrderCount   int
}

type DailyOrders struct {
	OrderDate  string
	OrderCount int
}

type CategoryOrders struct {
	Category      string
	OrderCount    int
	TotalQuantity int
}

// 查詢訂單總數
func (r *OrderRepository) TotalOrders() (int64, error) {
	var total int64
	err := r.db.Model(&models.Order{}).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// 查詢熱門餐點，依總訂購數量排序取前limit名
func (r *OrderRepository) PopularDishes(limit int) ([]PopularDish, error) {
	var dishes []PopularDish
	err := r.db.
		Table("orders").
		Select("items.name AS item_name, items.category, items.price, SUM(orders.quantity) AS total_ordered, COUNT(orders.id) AS order_count").
		Joins("JOIN items ON items.id = orders.item_id").
		Group("items.id, items.name, items.category, items.price").
		Order("total_ordered DESC").
		Limit(limit).
		Scan(&dishes).
		Error
	if err != nil {
		return nil, err
	}
	return dishes, nil
}

// 查詢最近days天內每天的訂單數
func (r *OrderRepository) OrdersPerDay(days int) ([]DailyOrders, error) {
	since := time.Now().AddDate(0, 0, -days)

	var rows []DailyOrders
	err := r.db.
		Table("orders").
		Select("DATE(created_at) AS order_date, COUNT(*) AS order_count").
		Where("created_at >= ?", since).
		Group("DATE(created_at)").
		Order("order_date").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// 查詢各分類的訂單數和總訂購數量，依訂單數排序
func (r *OrderRepository) OrdersByCategory() ([]CategoryOrders, error) {
	var rows []CategoryOrders
	err := r.db.
		Table("orders").
		Select("items.category, COUNT(orders.id) AS order_count, SUM(orders.quantity) AS total_quantity").
		Joins("JOIN items ON items.id = orders.item_id").
		Group("items.category").
		Order("order_count DESC").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
