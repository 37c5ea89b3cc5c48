package handlers

import (
	"ZomatoBackend/jwt"
	"ZomatoBackend/repositories"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"net/http"
	"time"
)

// 註冊使用者帳戶
func RegisterHandler(c *gin.Context, userRepo *repositories.UserRepository) {
	var registerReq struct {
		Username        string `json:"username" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirmPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&registerReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	//檢查兩次輸入的密碼是否相同
	if registerReq.Password != registerReq.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "註冊失敗:兩次輸入的密碼不一致",
		})
		return
	}

	user, err := userRepo.Create(registerReq.Username, registerReq.Password)
	if err != nil {
		if repositories.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "註冊失敗:" + err.Error(),
			})
			return
		}
		if errors.Is(err, repositories.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "註冊失敗:使用者名稱已被使用",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "註冊失敗:無法儲存使用者資料至資料庫",
			"error":   err.Error(),
		})
		return
	}

	//成功註冊
	c.JSON(http.StatusCreated, gin.H{
		"message":  "使用者已成功註冊",
		"username": user.Username,
	})
	return
}

func LoginHandler(c *gin.Context, userRepo *repositories.UserRepository, rdb *redis.Client) {
	//檢查是否已經登入
	if _, ok := c.Get("UserID"); ok {
		c.JSON(http.StatusOK, gin.H{
			"message": "已經登入",
		})
		return
	}

	//從請求擷取帳號和密碼
	var loginReq struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "綁定請求資料錯誤",
			"error":   err.Error(),
		})
		return
	}

	//驗證帳號密碼，不區分帳號不存在或密碼錯誤
	user, err := userRepo.Authenticate(loginReq.Username, loginReq.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "資料庫錯誤",
			"error":   err.Error(),
		})
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "使用者名稱或密碼錯誤",
		})
		return
	}

	//生成JWT Token
	tokenExpiredTime := time.Now().Add(time.Hour * 24)
	token, err := jwt.GenerateToken(user.ID, tokenExpiredTime.Unix())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "生成JWT Token錯誤",
			"error":   err.Error(),
		})
		return
	}

	//將登入Token儲存至Redis，過期時間與Token相同
	err = rdb.Set(c, jwt.TokenKey(token), user.ID, time.Until(tokenExpiredTime)).Err()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "儲存登入Token失敗",
			"error":   err.Error(),
		})
		return
	}

	//成功登入 回傳Token和成功訊息
	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"message": "成功登入",
	})
}

func LogOutHandler(c *gin.Context, rdb *redis.Client) {
	token, exists := c.Get("Token")
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "無法取得Token",
		})
		return
	}

	//從Redis刪除登入Token
	deleted, err := rdb.Del(c, jwt.TokenKey(token.(string))).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "刪除登入Token失敗",
			"error":   err.Error(),
		})
		return
	}
	if deleted == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "找不到此Token或已登出",
		})
		return
	}

	c.Header("Authorization", "")
	c.JSON(http.StatusOK, gin.H{
		"message": "成功登出",
	})
	return
}

// 查詢使用者資料
func GetUserProfileHandler(c *gin.Context, userRepo *repositories.UserRepository) {
	userID, ok := c.Get("UserID")
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法取得使用者ID",
		})
		return
	}

	user, err := userRepo.GetByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "資料庫錯誤",
			"error":   err.Error(),
		})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到此使用者",
		})
		return
	}

	//成功查詢使用者資料，不回傳密碼雜湊
	c.JSON(http.StatusOK, gin.H{
		"message": "成功查詢使用者資料",
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"createdAt": user.CreatedAt,
		},
	})
}

// 查詢使用者列表(管理用)
func GetUserListHandler(c *gin.Context, userRepo *repositories.UserRepository) {
	userList, err := userRepo.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "無法獲取使用者列表",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "成功獲取使用者列表",
		"userList": userList,
	})
}
