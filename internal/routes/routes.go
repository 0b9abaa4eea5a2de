package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/serviplan/booking-api/internal/audit"
	"github.com/serviplan/booking-api/internal/config"
	"github.com/serviplan/booking-api/internal/handlers"
	"github.com/serviplan/booking-api/internal/middleware"
	"github.com/serviplan/booking-api/internal/repository"
	"github.com/serviplan/booking-api/internal/service"
	"github.com/serviplan/booking-api/internal/session"
	"github.com/serviplan/booking-api/internal/storage"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	sessions session.Store,
	images storage.ImageStore,
	logger *zap.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.LoadSession(sessions, cfg))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	userRepo := repository.NewUserGormRepository(db)
	serviceRepo := repository.NewServiceGormRepository(db)
	appointmentRepo := repository.NewAppointmentGormRepository(db)
	paymentRepo := repository.NewPaymentGormRepository(db)
	reviewRepo := repository.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, logger)

	// ======================================================
	// SERVICES
	// ======================================================
	userSvc := service.NewUserService(userRepo)
	serviceSvc := service.NewServiceService(serviceRepo)
	appointmentSvc := service.NewAppointmentService(appointmentRepo)
	paymentSvc := service.NewPaymentService(paymentRepo)
	reviewSvc := service.NewReviewService(reviewRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userSvc, sessions, cfg)
	userHandler := handlers.NewUserHandler(userSvc, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(serviceSvc, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentSvc, auditDispatcher)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc, auditDispatcher)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, auditDispatcher)
	profileHandler := handlers.NewProfileHandler(userSvc, appointmentSvc, images)
	adminHandler := handlers.NewAdminHandler(db)

	requireUser := middleware.RequireUser()
	requireAdmin := middleware.RequireAdmin()

	// ======================================================
	// USERS & AUTH
	// ======================================================
	users := r.Group("/users")
	{
		users.POST("", authHandler.Register)
		users.POST("/login", authHandler.Login)
		users.GET("/logout", authHandler.Logout)

		users.GET("", requireAdmin, userHandler.List)
		users.GET("/:user_id", requireAdmin, userHandler.GetByID)
		users.GET("/name/:user_name", requireAdmin, userHandler.GetByName)
		users.GET("/email/:user_email", requireAdmin, userHandler.GetByEmail)
		users.PUT("/:user_id", requireAdmin, userHandler.Update)
		users.DELETE("/:user_id", requireAdmin, userHandler.Delete)
	}

	// ======================================================
	// SERVICES (CATALOG)
	// ======================================================
	services := r.Group("/services")
	{
		services.GET("", serviceHandler.List)
		services.GET("/:service_id", serviceHandler.GetByID)
		services.GET("/by-name/:service_name", serviceHandler.GetByName)
		services.GET("/price/:price/:operator", serviceHandler.ListByPrice)

		services.POST("", requireAdmin, serviceHandler.Create)
		services.PUT("/:service_id", requireAdmin, serviceHandler.Update)
		services.DELETE("/:service_id", requireAdmin, serviceHandler.Delete)
	}

	// ======================================================
	// APPOINTMENTS
	// ======================================================
	appointments := r.Group("/appointments")
	{
		appointments.POST("", requireUser, appointmentHandler.Create)
		appointments.GET("/me", requireUser, appointmentHandler.ListMine)

		appointments.GET("", requireAdmin, appointmentHandler.List)
		appointments.GET("/:appointment_id", requireAdmin, appointmentHandler.GetByID)
		appointments.GET("/user/:user_id", requireAdmin, appointmentHandler.ListByUser)
		appointments.PUT("/:appointment_id", requireAdmin, appointmentHandler.Update)
		appointments.DELETE("/:appointment_id", requireAdmin, appointmentHandler.Delete)
	}

	// ======================================================
	// PAYMENTS
	// ======================================================
	payments := r.Group("/payments")
	{
		payments.POST("", requireUser, paymentHandler.Create)

		payments.GET("", requireAdmin, paymentHandler.List)
		payments.GET("/:payment_id", requireAdmin, paymentHandler.GetByID)
		payments.PUT("/:payment_id", requireAdmin, paymentHandler.Update)
		payments.DELETE("/:payment_id", requireAdmin, paymentHandler.Delete)
	}

	// ======================================================
	// REVIEWS
	// ======================================================
	reviews := r.Group("/reviews")
	{
		reviews.POST("", reviewHandler.Create)
		reviews.GET("", reviewHandler.List)
		reviews.GET("/:review_id", reviewHandler.GetByID)

		reviews.PUT("/:review_id", requireAdmin, reviewHandler.Update)
		reviews.DELETE("/:review_id", requireAdmin, reviewHandler.Delete)
	}

	// ======================================================
	// PROFILE
	// ======================================================
	profile := r.Group("/profile")
	profile.Use(requireUser)
	{
		profile.GET("", profileHandler.Show)
		profile.POST("/upload", profileHandler.UploadImage)
	}

	// ======================================================
	// ADMIN
	// ======================================================
	admin := r.Group("/admin")
	admin.Use(requireAdmin)
	{
		admin.GET("/dashboard", adminHandler.Dashboard)
	}
}
