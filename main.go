package main

import (
	"fmt"

	"github.com/VanThinh512/Ordering-Food-Website/configs"
	"github.com/VanThinh512/Ordering-Food-Website/middlewares"
	"github.com/VanThinh512/Ordering-Food-Website/routes"
	"github.com/VanThinh512/Ordering-Food-Website/ws"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logrus.Fatalf("database: %v", err)
	}
	db := configs.DB()

	// migrate + seed
	if err := configs.SetupDatabase(); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		logrus.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		logrus.Fatalf("seed lookups failed: %v", err)
	}

	// order status feed สำหรับหน้าจอครัว/แอดมิน
	feed := ws.NewOrderFeed()
	go feed.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	routes.RegisterRoutes(r, db, cfg, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
