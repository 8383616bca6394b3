package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sessionbook/booking-api/docs"
	"github.com/sessionbook/booking-api/internal/api/handler"
	"github.com/sessionbook/booking-api/internal/api/middleware"
	"github.com/sessionbook/booking-api/internal/core/domain"
	"github.com/sessionbook/booking-api/internal/core/service"
	mongodb "github.com/sessionbook/booking-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/sessionbook/booking-api/internal/infrastructure/db/redis"
	"github.com/sessionbook/booking-api/internal/pkg/config"
)

// dashboardRole resolves the role required for a role-gated dashboard path.
// Panics on a path outside the fixed mapping; route registration is the
// wrong place to degrade silently.
func dashboardRole(path string) domain.Role {
	role, ok := domain.DashboardRole(path)
	if !ok {
		panic("router: no role mapping for " + path)
	}
	return role
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("sessionbook"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	profileRepo := mongodb.NewProfileRepository(db)
	expertRepo := mongodb.NewExpertRepository(db)
	sessionTypeRepo := mongodb.NewSessionTypeRepository(db)
	availabilityRepo := mongodb.NewAvailabilityRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)

	denylist := redisinfra.NewDenylist(rdb)
	idempotency := redisinfra.NewIdempotencyStore(rdb)

	authService := service.NewAuthService(profileRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	expertService := service.NewExpertService(expertRepo, sessionTypeRepo, availabilityRepo, bookingRepo, log)
	bookingService := service.NewBookingService(bookingRepo, expertRepo, sessionTypeRepo, idempotency, log)

	authHandler := handler.NewAuthHandler(authService)
	expertHandler := handler.NewExpertHandler(expertService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	adminHandler := handler.NewAdminHandler(expertService, bookingService)

	authRequired := middleware.Auth(cfg.JWTSecret, denylist)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- Public directory ---
	e.GET("/v1/experts", expertHandler.List)
	e.GET("/v1/experts/:id", expertHandler.Get)
	e.GET("/v1/experts/:id/availability", expertHandler.Availability)
	e.GET("/v1/experts/:id/slots", expertHandler.Slots)

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authRequired)
	v1.GET("/me", authHandler.Me)
	v1.PATCH("/me", authHandler.UpdateMe)
	v1.POST("/bookings", bookingHandler.Create)
	v1.POST("/bookings/:reference/feedback", bookingHandler.SubmitFeedback)
	v1.GET("/dashboard", bookingHandler.UserDashboard)
	v1.GET("/expert-dashboard", bookingHandler.ExpertDashboard, middleware.RBAC(dashboardRole(domain.PathExpertDashboard)))

	// --- Admin routes ---
	// The admin surface backs the admin dashboard, so it is gated by the
	// same role mapping the client navigates by.
	admin := v1.Group("/admin", middleware.RBAC(dashboardRole(domain.PathAdminDashboard)))
	admin.GET("/experts", adminHandler.ListExperts)
	admin.POST("/experts", adminHandler.CreateExpert)
	admin.PATCH("/experts/:id/status", adminHandler.TransitionExpert)
	admin.POST("/experts/:id/session-types", adminHandler.AddSessionType)
	admin.GET("/bookings", adminHandler.ListBookings)

	return e
}
