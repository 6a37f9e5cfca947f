package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/GlamourSalonSA/salon-booking/internal/audit"
	"github.com/GlamourSalonSA/salon-booking/internal/cache"
	"github.com/GlamourSalonSA/salon-booking/internal/config"
	"github.com/GlamourSalonSA/salon-booking/internal/handlers"
	infraRepo "github.com/GlamourSalonSA/salon-booking/internal/infra/repository"
	"github.com/GlamourSalonSA/salon-booking/internal/middleware"
	"github.com/GlamourSalonSA/salon-booking/internal/notification"
	ucBooking "github.com/GlamourSalonSA/salon-booking/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	logger *zap.Logger,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	catalogCache := cache.NewCatalogCache(
		rdb,
		bookingRepo,
		time.Duration(cfg.CatalogCacheTTLMin)*time.Minute,
		logger,
	)

	emailNotifier := notification.NewEmailNotifier(cfg, logger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo)
	slotLookup := ucBooking.NewSlotLookup(getAvailabilityUC)

	validateCouponUC := ucBooking.NewValidateCoupon(bookingRepo)

	bookSlotUC := ucBooking.NewBookSlot(bookingRepo, auditDispatcher)
	cancelSlotUC := ucBooking.NewCancelSlot(bookingRepo, auditDispatcher)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, logger)

	submitPipeline := ucBooking.NewSubmitBooking(
		createBookingUC,
		bookSlotUC,
		bookingRepo,
		emailNotifier,
		logger,
	)

	rescheduleUC := ucBooking.NewRescheduleBooking(
		bookingRepo,
		emailNotifier,
		auditDispatcher,
		logger,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogCache)
	addressHandler := handlers.NewAddressHandler(bookingRepo)
	slotHandler := handlers.NewSlotHandler(getAvailabilityUC, bookSlotUC, cancelSlotUC)
	couponHandler := handlers.NewCouponHandler(validateCouponUC)
	notificationHandler := handlers.NewNotificationHandler(bookingRepo, emailNotifier, logger)

	bookingHandler := handlers.NewBookingHandler(
		bookingRepo,
		submitPipeline,
		slotLookup,
		rescheduleUC,
		cancelBookingUC,
		logger,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/services/", catalogHandler.ListServices)
		api.GET("/categories/", catalogHandler.ListCategories)
		api.GET("/admin-slots/available/", slotHandler.Available)
		api.POST("/validate-coupon/", couponHandler.Validate)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register/", authHandler.Register)
		api.POST("/auth/login/", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me/", authHandler.GetMe)

			secured.GET("/addresses/", addressHandler.List)
			secured.POST("/addresses/", addressHandler.Create)
			secured.GET("/addresses/:id/", addressHandler.Detail)

			secured.POST("/admin-slots/book/", slotHandler.Book)
			secured.POST("/admin-slots/cancel/", slotHandler.Cancel)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.POST("/bookings/", bookingHandler.Create)
			secured.POST("/bookings/submit/", bookingHandler.Submit)
			secured.GET("/bookings/", bookingHandler.List)
			secured.GET("/bookings/:id/", bookingHandler.Detail)
			secured.POST("/bookings/:id/reschedule/", bookingHandler.Reschedule)
			secured.GET("/bookings/:id/reschedule-history/", bookingHandler.RescheduleHistory)
			secured.POST("/bookings/:id/cancel/", bookingHandler.Cancel)

			secured.POST("/send-booking-emails/", notificationHandler.SendBookingEmails)
		}
	}
}
