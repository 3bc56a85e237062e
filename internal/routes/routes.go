package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/ferrobarbershop/booking-api/internal/audit"
	"github.com/ferrobarbershop/booking-api/internal/config"
	"github.com/ferrobarbershop/booking-api/internal/handlers"
	"github.com/ferrobarbershop/booking-api/internal/infra/cache"
	infraRepo "github.com/ferrobarbershop/booking-api/internal/infra/repository"
	"github.com/ferrobarbershop/booking-api/internal/middleware"
	"github.com/ferrobarbershop/booking-api/internal/models"
	ucBooking "github.com/ferrobarbershop/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	slotCache *cache.AvailabilityCache,
	log zerolog.Logger,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var slots ucBooking.SlotCache
	if slotCache != nil {
		slots = slotCache
	}

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo, slots)
	bookableDatesUC := ucBooking.NewGetBookableDates(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher, slots)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, auditDispatcher, slots)
	listBookingsUC := ucBooking.NewListUserBookings(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db, auditDispatcher)
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, bookableDatesUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, cancelBookingUC, listBookingsUC)
	adminHandler := handlers.NewAdminHandler(db, auditDispatcher, slots)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db, auditDispatcher, slots)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/shop", publicHandler.GetShop)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/dates", publicHandler.BookableDates)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLIENT (authenticated)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.PATCH("/me", meHandler.UpdateMe)
			secured.DELETE("/me", meHandler.DeleteMe)

			secured.POST("/me/appointments", bookingHandler.Create)
			secured.GET("/me/appointments", bookingHandler.ListMine)
			secured.PATCH("/me/appointments/:id/cancel", bookingHandler.CancelMine)
		}

		// ------------------------------
		// STAFF / ADMIN
		// ------------------------------
		staff := api.Group("/admin")
		staff.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRoles(models.RoleStaff, models.RoleAdmin),
		)
		{
			staff.GET("/appointments", adminHandler.ListAppointments)
			staff.PATCH("/appointments/:id/cancel", adminHandler.CancelAppointment)
			staff.PATCH("/appointments/:id/complete", adminHandler.CompleteAppointment)

			staff.GET("/working-hours", workingHoursHandler.Get)
			staff.PUT("/working-hours", workingHoursHandler.Update)

			staff.GET("/audit-logs", auditLogsHandler.List)
		}

		adminOnly := api.Group("/admin")
		adminOnly.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRoles(models.RoleAdmin),
		)
		{
			adminOnly.DELETE("/appointments/:id", adminHandler.DeleteAppointment)

			adminOnly.GET("/staff", adminHandler.ListStaff)
			adminOnly.POST("/staff", adminHandler.CreateStaff)
			adminOnly.DELETE("/staff/:id", adminHandler.DeleteStaff)
		}
	}
}
