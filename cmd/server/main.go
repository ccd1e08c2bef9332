package main

import (
	"log"
	"os"

	"aimecost/internal/config"
	"aimecost/internal/database"
	"aimecost/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()

	// 价格缓存数据库初始化失败不阻塞启动，解析器直接降级到内置价格表
	if err := database.Init(cfg.DatabasePath); err != nil {
		log.Printf("警告: 价格缓存数据库初始化失败: %v", err)
	}
	defer database.Close()

	r := router.Setup()

	port := cfg.ServerPort
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Printf("服务器启动在 http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatalf("服务器启动失败: %v", err)
	}
}
