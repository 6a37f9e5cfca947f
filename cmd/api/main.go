package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/GlamourSalonSA/salon-booking/internal/config"
	dbpkg "github.com/GlamourSalonSA/salon-booking/internal/db"
	infraRepo "github.com/GlamourSalonSA/salon-booking/internal/infra/repository"
	"github.com/GlamourSalonSA/salon-booking/internal/logging"
	"github.com/GlamourSalonSA/salon-booking/internal/notification"
	"github.com/GlamourSalonSA/salon-booking/internal/reminder"
	"github.com/GlamourSalonSA/salon-booking/internal/routes"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	logging.Init(cfg.IsProduction())
	logger := logging.L()
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, logger)

	// Day-before reminders over WhatsApp, swept hourly.
	whatsApp := notification.NewWhatsAppSender(cfg, logger)
	reminders := reminder.NewScheduler(infraRepo.NewBookingGormRepository(db), whatsApp, logger)
	if err := reminders.Start(); err != nil {
		logger.Fatal("failed to start reminder scheduler", zap.Error(err))
	}
	defer reminders.Stop()

	logger.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
