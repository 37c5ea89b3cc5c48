package routers

import (
	"ZomatoBackend/handlers"
	"ZomatoBackend/middleware"
	"ZomatoBackend/repositories"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"net/http"
)

func SetupRouters(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	//建立Gin路由器
	router := gin.Default()
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Authorization")
		c.Next()
	})
	err := router.SetTrustedProxies(nil)
	if err != nil {
		return nil
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	//建立各repository，共用同一個資料庫連線池
	userRepo := repositories.NewUserRepository(db)
	itemRepo := repositories.NewItemRepository(db)
	orderRepo := repositories.NewOrderRepository(db)

	////無須權限，使用中間件檢查是否登入
	router.Use(middleware.AuthMiddleware(rdb))
	{
		//註冊帳號
		router.POST("/api/v1/register", func(context *gin.Context) {
			handlers.RegisterHandler(context, userRepo)
		})
		//登入帳號
		router.POST("/api/v1/login", func(context *gin.Context) {
			handlers.LoginHandler(context, userRepo, rdb)
		})

		////需要登入，使用中間件檢查是否登入
		loginRequired := router.Group("/api/v1")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			//查詢菜單(依分類分組，可過濾分類)
			loginRequired.GET("/menu", func(context *gin.Context) {
				handlers.GetMenuHandler(context, itemRepo)
			})
			//查詢餐點詳細資料
			loginRequired.GET("/menu/items/:itemID", func(context *gin.Context) {
				handlers.GetItemHandler(context, itemRepo)
			})
			//送出訂單
			loginRequired.POST("/orders", func(context *gin.Context) {
				handlers.PlaceOrderHandler(context, orderRepo)
			})
			//查詢自己的訂單列表
			loginRequired.GET("/orders", func(context *gin.Context) {
				handlers.GetOrderListHandler(context, orderRepo)
			})
			//修改訂單
			loginRequired.PUT("/orders/:orderID", func(context *gin.Context) {
				handlers.UpdateOrderHandler(context, orderRepo)
			})
			//刪除訂單
			loginRequired.DELETE("/orders/:orderID", func(context *gin.Context) {
				handlers.DeleteOrderHandler(context, orderRepo)
			})
			//查詢使用者資料
			loginRequired.GET("/user/profile", func(context *gin.Context) {
				handlers.GetUserProfileHandler(context, userRepo)
			})
			//登出
			loginRequired.POST("/user/logout", func(context *gin.Context) {
				handlers.LogOutHandler(context, rdb)
			})
			//銷售統計
			loginRequired.GET("/analytics", func(context *gin.Context) {
				handlers.GetAnalyticsSummaryHandler(context, orderRepo)
			})
			loginRequired.GET("/analytics/popular_dishes", func(context *gin.Context) {
				handlers.GetPopularDishesHandler(context, orderRepo)
			})
			loginRequired.GET("/analytics/orders_per_day", func(context *gin.Context) {
				handlers.GetOrdersPerDayHandler(context, orderRepo)
			})
			loginRequired.GET("/analytics/orders_by_category", func(context *gin.Context) {
				handlers.GetOrdersByCategoryHandler(context, orderRepo)
			})
		}

		////菜單管理，使用中間件檢查權限
		adminRequired := router.Group("/api/v1/admin")
		adminRequired.Use(middleware.CheckLoginMiddleware(), middleware.CheckMenuAdminMiddleware())
		{
			//菜單管理列表(可搜尋)
			adminRequired.GET("/menu", func(context *gin.Context) {
				handlers.ManageMenuHandler(context, itemRepo)
			})
			//新增餐點
			adminRequired.POST("/menu/items", func(context *gin.Context) {
				handlers.CreateItemHandler(context, itemRepo)
			})
			//修改餐點
			adminRequired.PUT("/menu/items/:itemID", func(context *gin.Context) {
				handlers.UpdateItemHandler(context, itemRepo)
			})
			//刪除餐點
			adminRequired.DELETE("/menu/items/:itemID", func(context *gin.Context) {
				handlers.DeleteItemHandler(context, itemRepo)
			})
			//查詢全部訂單
			adminRequired.GET("/orders", func(context *gin.Context) {
				handlers.GetAllOrdersHandler(context, orderRepo)
			})
			//查詢使用者列表
			adminRequired.GET("/users", func(context *gin.Context) {
				handlers.GetUserListHandler(context, userRepo)
			})
		}
	}

	return router
}
