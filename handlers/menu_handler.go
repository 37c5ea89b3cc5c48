package handlers

import (
	"ZomatoBackend/models"
	"ZomatoBackend/repositories"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// 檢查價格是否為正數且最多兩位小數
// 價格格式在這一層驗證，repository不再檢查
func ValidatePrice(price float64) bool {
	if price <= 0 {
		return false
	}
	return pricePattern.MatchString(strconv.FormatFloat(price, 'f', -1, 64))
}

// 查詢菜單，依分類分組，可用category參數過濾單一分類
func GetMenuHandler(c *gin.Context, itemRepo *repositories.ItemRepository) {
	categoryFilter := strings.TrimSpace(c.Query("category"))

	itemsByCategory, err := itemRepo.GetByCategory()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取菜單",
			"error":   err.Error(),
		})
		return
	}

	//取得所有分類(排序後)供過濾按鈕使用
	categories := make([]string, 0, len(itemsByCategory))
	for category := range itemsByCategory {
		if category != "" {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	//有指定分類時只保留該分類
	if categoryFilter != "" {
		filtered := make(map[string][]models.Item)
		if items, ok := itemsByCategory[categoryFilter]; ok {
			filtered[categoryFilter] = items
		}
		itemsByCategory = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "成功讀取菜單",
		"menu":             itemsByCategory,
		"categories":       categories,
		"selectedCategory": categoryFilter,
	})
}

// 菜單管理列表，可用search和category參數搜尋
func ManageMenuHandler(c *gin.Context, itemRepo *repositories.ItemRepository) {
	search := strings.TrimSpace(c.Query("search"))
	categoryFilter := strings.TrimSpace(c.Query("category"))

	var items []models.Item
	var err error
	if search != "" || categoryFilter != "" {
		items, err = itemRepo.Search(search, categoryFilter)
	} else {
		items, err = itemRepo.GetAll()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法讀取餐點列表",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功讀取餐點列表",
		"items":   items,
		"search":  search,
	})
}

// 查詢餐點詳細資料
func GetItemHandler(c *gin.Context, itemRepo *repositories.ItemRepository) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "餐點ID格式錯誤",
			"error":   err.Error(),
		})
		return
	}

	item, err := itemRepo.GetByID(uint(itemID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢餐點資料失敗",
			"error":   err.Error(),
		})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到此餐點",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功查詢餐點資料",
		"item":    item,
	})
}

type itemRequest struct {
	ItemName string  `json:"item_name" binding:"required"`
	Category string  `json:"category" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	ImageURL string  `json:"image_url"`
}

// 新增餐點
func CreateItemHandler(c *gin.Context, itemRepo *repositories.ItemRepository) {
	var itemReq itemRequest
	if err := c.ShouldBindJSON(&itemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	//檢查價格是否合法
	if !ValidatePrice(itemReq.Price) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "價格必須是正數且最多兩位小數",
		})
		return
	}

	item := models.Item{
		Name:     strings.TrimSpace(itemReq.ItemName),
		Category: strings.TrimSpace(itemReq.Category),
		Price:    itemReq.Price,
		ImageURL: strings.TrimSpace(itemReq.ImageURL),
	}
	if err := itemRepo.Create(&item); err != nil {
		if errors.Is(err, repositories.ErrItemNameExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "已有相同名稱的餐點",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "新增餐點失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "成功新增餐點",
		"item":    item,
	})
}

// 修改餐點
func UpdateItemHandler(c *gin.Context, itemRepo *repositories.ItemRepository) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "餐點ID格式錯誤",
			"error":   err.Error(),
		})
		return
	}

	var itemReq itemRequest
	if err := c.ShouldBindJSON(&itemReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	//檢查價格是否合法
	if !ValidatePrice(itemReq.Price) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "價格必須是正數且最多兩位小數",
		})
		return
	}

	//檢查餐點是否存在
	existing, err := itemRepo.GetByID(uint(itemID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢餐點資料失敗",
			"error":   err.Error(),
		})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到此餐點",
		})
		return
	}

	//檢查新名稱是否與其他餐點重複
	itemName := strings.TrimSpace(itemReq.ItemName)
	nameConflict, err := itemRepo.GetByName(itemName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "查詢餐點資料失敗",
			"error":   err.Error(),
		})
		return
	}
	if nameConflict != nil && nameConflict.ID != uint(itemID) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "已有相同名稱的餐點",
		})
		return
	}

	item := models.Item{
		ID:       uint(itemID),
		Name:     itemName,
		Category: strings.TrimSpace(itemReq.Category),
		Price:    itemReq.Price,
		ImageURL: strings.TrimSpace(itemReq.ImageURL),
	}
	if err := itemRepo.Update(&item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "修改餐點失敗",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功修改餐點",
	})
}

// 刪除餐點，關聯的訂單會一併刪除
func DeleteItemHandler(c *gin.Context, itemRepo *repositories.ItemRepository) {
	itemID, err := strconv.ParseUint(c.Param("itemID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "餐點ID格式錯誤",
			"error":   err.Error(),
		})
		return
	}

	deleted, err := itemRepo.Delete(uint(itemID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除餐點失敗",
			"error":   err.Error(),
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到此餐點",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "成功刪除餐點",
	})
}
