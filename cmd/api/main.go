package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/MenteSaServices/clinic-scheduler/internal/config"
	dbpkg "github.com/MenteSaServices/clinic-scheduler/internal/db"
	"github.com/MenteSaServices/clinic-scheduler/internal/logging"
	"github.com/MenteSaServices/clinic-scheduler/internal/middleware"
	"github.com/MenteSaServices/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	jobs := routes.RegisterRoutes(r, cfg, routes.Deps{
		DB:     db,
		Redis:  rdb,
		Logger: logger,
	})

	scheduler, err := jobs.Start()
	if err != nil {
		logger.Error("failed to start scheduled jobs", "error", err)
	} else {
		defer scheduler.Stop()
	}

	logger.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "error", err)
	}
}
