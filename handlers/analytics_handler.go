package handlers

import (
	"ZomatoBackend/repositories"
	"github.com/gin-gonic/gin"
	"net/http"
	"strconv"
)

const (
	defaultPopularLimit  = 5
	defaultAnalyticsDays = 7
	maxPopularLimit      = 50
	maxAnalyticsDays     = 365
)

// 銷售統計總覽
func GetAnalyticsSummaryHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	totalOrders, err := orderRepo.TotalOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢訂單總數失敗",
			"error":   err.Error(),
		})
		return
	}

	popularDishes, err := orderRepo.PopularDishes(defaultPopularLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢熱門餐點失敗",
			"error":   err.Error(),
		})
		return
	}

	ordersPerDay, err := orderRepo.OrdersPerDay(defaultAnalyticsDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢每日訂單數失敗",
			"error":   err.Error(),
		})
		return
	}

	ordersByCategory, err := orderRepo.OrdersByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢分類訂單統計失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "成功查詢銷售統計",
		"totalOrders":      totalOrders,
		"popularDishes":    popularDishes,
		"ordersPerDay":     ordersPerDay,
		"ordersByCategory": ordersByCategory,
	})
}

// 查詢熱門餐點排行
func GetPopularDishesHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPopularLimit)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "limit輸入錯誤",
		})
		return
	}
	//限制最高查詢數量
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	popularDishes, err := orderRepo.PopularDishes(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢熱門餐點失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "成功查詢熱門餐點",
		"popularDishes": popularDishes,
	})
}

// 查詢最近N天每日訂單數
func GetOrdersPerDayHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultAnalyticsDays)))
	if err != nil || days < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "days輸入錯誤",
		})
		return
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}

	ordersPerDay, err := orderRepo.OrdersPerDay(days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢每日訂單數失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "成功查詢每日訂單數",
		"ordersPerDay": ordersPerDay,
	})
}

// 查詢各分類訂單統計
func GetOrdersByCategoryHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	ordersByCategory, err := orderRepo.OrdersByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢分類訂單統計失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "成功查詢分類訂單統計",
		"ordersByCategory": ordersByCategory,
	})
}
