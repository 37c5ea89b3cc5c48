package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// 檢查是否可管理菜單
// 目前users資料表沒有角色欄位，所有登入使用者皆可管理菜單
// TODO: users加上role欄位後改為檢查admin角色
func CheckMenuAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("UserID")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "沒有權限",
			})
			c.Abort()
			return
		}

		c.Next()
		return
	}
}
