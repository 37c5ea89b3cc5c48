package handlers

import (
	"ZomatoBackend/repositories"
	"encoding/json"
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// 解析limit和offset查詢參數，limit為0表示不分頁
func parsePagination(c *gin.Context) (int, int, bool) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "limit輸入錯誤",
		})
		return 0, 0, false
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "offset輸入錯誤",
		})
		return 0, 0, false
	}

	return limit, offset, true
}

// 送出訂單，購物車每一項餐點各建立一筆訂單
// 每筆訂單是獨立的交易，中途失敗時先前已建立的訂單不會回復
func PlaceOrderHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	var orderReq struct {
		Cart []struct {
			ItemID   uint `json:"item_id" binding:"required"`
			Quantity int  `json:"quantity"`
		} `json:"cart" binding:"required"`
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&orderReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	if len(orderReq.Cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "購物車是空的",
		})
		return
	}

	address := strings.TrimSpace(orderReq.Address)
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "請輸入外送地址",
		})
		return
	}

	for _, cartItem := range orderReq.Cart {
		//數量為0的項目直接略過
		if cartItem.Quantity <= 0 {
			continue
		}

		err := orderRepo.Create(userID.(uint), cartItem.ItemID, cartItem.Quantity, address)
		if err != nil {
			if repositories.IsValidationError(err) {
				c.JSON(http.StatusBadRequest, gin.H{
					"message": "送出訂單失敗:" + err.Error(),
				})
				return
			}
			if errors.Is(err, repositories.ErrItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"message": "送出訂單失敗:找不到此餐點",
				})
				return
			}
			log.Printf("建立訂單失敗: %v\n", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "送出訂單失敗",
				"error":   err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "訂單已送出",
	})
}

// 查詢自己的訂單列表
func GetOrderListHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	orders, err := orderRepo.GetUserOrders(userID.(uint), limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢訂單列表失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功查詢訂單列表",
		"orders":  orders,
	})
}

// 查詢全部訂單(管理用)
func GetAllOrdersHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	limit, offset, ok := parsePagination(c)
	if !ok {
		return
	}

	orders, err := orderRepo.GetAllOrders(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢訂單列表失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功查詢訂單列表",
		"orders":  orders,
	})
}

// 修改自己的訂單
func UpdateOrderHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "訂單ID格式錯誤",
			"error":   err.Error(),
		})
		return
	}

	var updateReq struct {
		Quantity        json.Number `json:"quantity" binding:"required"`
		DeliveryAddress string      `json:"delivery_address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&updateReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	quantity, err := repositories.ValidateQuantity(updateReq.Quantity.String())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "修改訂單失敗:" + err.Error(),
		})
		return
	}

	updated, err := orderRepo.Update(uint(orderID), userID.(uint), quantity, updateReq.DeliveryAddress)
	if err != nil {
		if repositories.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "修改訂單失敗:" + err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "修改訂單失敗",
			"error":   err.Error(),
		})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到此訂單或沒有權限修改",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功修改訂單",
	})
}

// 刪除自己的訂單
func DeleteOrderHandler(c *gin.Context, orderRepo *repositories.OrderRepository) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	orderID, err := strconv.ParseUint(c.Param("orderID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "訂單ID格式錯誤",
			"error":   err.Error(),
		})
		return
	}

	deleted, err := orderRepo.Delete(uint(orderID), userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除訂單失敗",
			"error":   err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到此訂單或沒有權限刪除",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功刪除訂單",
	})
}
