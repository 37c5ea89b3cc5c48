package main

import (
	"ZomatoBackend/config"
	"ZomatoBackend/routers"
)

func main() {
	cfg, err := config.LoadConfig("config/config.yaml")
	if err != nil {
		panic("無法讀取設定檔")
	}

	db, err := config.SetupMySQLConnection()
	if err != nil {
		panic("無法連接到資料庫")
	}
	defer func() {
		dbInstance, _ := db.DB()
		_ = dbInstance.Close()
	}()

	rdb, err := config.SetupRedisConnection()
	if err != nil {
		panic("無法連接到Redis")
	}
	defer rdb.Close()

	port := cfg.Server.Port
	if port == "" {
		port = "5000"
	}

	router := routers.SetupRouters(db, rdb)
	router.Run(":" + port)
}
