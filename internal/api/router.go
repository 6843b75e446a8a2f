package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"

	"github.com/worklane/hr-system/internal/api/handler"
	"github.com/worklane/hr-system/internal/api/middleware"
	"github.com/worklane/hr-system/internal/core/domain"
	"github.com/worklane/hr-system/internal/core/service"
	"github.com/worklane/hr-system/internal/core/token"
	"github.com/worklane/hr-system/internal/infrastructure/config"
	mongodb "github.com/worklane/hr-system/internal/infrastructure/db/mongo"
	redisdb "github.com/worklane/hr-system/internal/infrastructure/db/redis"
	"github.com/worklane/hr-system/internal/infrastructure/mail"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	clientRepo := mongodb.NewClientRepository(db)
	expenseRepo := mongodb.NewExpenseRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)
	absenceRepo := mongodb.NewAbsenceRepository(db)
	settingsRepo := mongodb.NewSettingsRepository(db)

	tokenCfg := token.Config{
		AccessSecret:  cfg.Auth.AccessTokenSecret,
		RefreshSecret: cfg.Auth.RefreshTokenSecret,
		AccessTTL:     cfg.Auth.AccessTokenExpiry,
		RefreshTTL:    cfg.Auth.RefreshTokenExpiry,
	}

	authService := service.NewAuthService(userRepo, clientRepo, service.AuthServiceConfig{
		Issuer: token.NewIssuer(tokenCfg),
		Mailer: mail.NewSMTPMailer(mail.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}),
		Throttle:     redisdb.NewResetThrottle(rdb, cfg.Auth.ResetTokenExpiry),
		ResetBaseURL: cfg.Auth.ResetBaseURL,
		ResetTTL:     cfg.Auth.ResetTokenExpiry,
		Logger:       log,
	})

	userService := service.NewUserService(userRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	expenseService := service.NewExpenseService(expenseRepo, log)
	activityService := service.NewActivityService(activityRepo, log)
	absenceService := service.NewAbsenceService(absenceRepo, log)
	settingsService := service.NewSettingsService(settingsRepo, log)

	authHandler := handler.NewAuthHandler(authService, cfg.Auth.AccessTokenExpiry, cfg.Auth.RefreshTokenExpiry)
	userHandler := handler.NewUserHandler(userService)
	clientHandler := handler.NewClientHandler(clientService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	activityHandler := handler.NewActivityHandler(activityService)
	absenceHandler := handler.NewAbsenceHandler(absenceService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	authMW := middleware.Auth(token.NewVerifier(tokenCfg), authService)
	authOptional := middleware.AuthOptional(token.NewVerifier(tokenCfg), authService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	// One credential attempt every 2s per IP, small burst for page reloads.
	loginRate := middleware.RateLimit(rate.Every(2*time.Second), 5)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	v1 := e.Group("/api/v1")

	// --- Session routes ---
	users := v1.Group("/users")
	users.POST("/register", userHandler.Register)
	users.POST("/login", authHandler.Login, loginRate)
	// Logout resolves the identity when a token is present but never gates:
	// an anonymous logout is a 400, not a 401.
	users.POST("/logout", authHandler.Logout, authOptional)
	users.POST("/forget-password", authHandler.ForgetPassword, loginRate)
	users.PUT("/reset-password/:token", authHandler.ResetPassword)

	// --- User management ---
	users.GET("/list", userHandler.List, authMW)
	users.GET("/users-dropdown", userHandler.Dropdown, authMW)
	users.GET("/:id/detail", userHandler.Detail, authMW)
	users.PUT("/:id/update", userHandler.Update, authMW)
	users.DELETE("/:id/delete", userHandler.Delete, authMW, adminOnly)

	// --- Client (tenant) management, admin only ---
	clients := v1.Group("/clients", authMW, adminOnly)
	clients.POST("/create", clientHandler.Create)
	clients.GET("/list", clientHandler.List)
	clients.GET("/:id/detail", clientHandler.Detail)
	clients.PUT("/:id/update", clientHandler.Update)
	clients.DELETE("/:id/delete", clientHandler.Delete)

	// --- Expenses ---
	expenses := v1.Group("/expenses", authMW)
	expenses.POST("/create", expenseHandler.Create)
	expenses.GET("/list", expenseHandler.List)
	expenses.GET("/my/list", expenseHandler.ListOwn)
	expenses.GET("/:id/detail", expenseHandler.Detail)
	expenses.PUT("/:id/update", expenseHandler.Update)
	expenses.DELETE("/:id/delete", expenseHandler.Delete)

	// --- Activities ---
	activities := v1.Group("/activities", authMW)
	activities.POST("/create", activityHandler.Create)
	activities.GET("/list", activityHandler.List)
	activities.GET("/:id/detail", activityHandler.Detail)
	activities.PUT("/:id/update", activityHandler.Update)
	activities.DELETE("/:id/delete", activityHandler.Delete)

	// --- Absences ---
	absences := v1.Group("/absences", authMW)
	absences.POST("/create", absenceHandler.Create)
	absences.GET("/list", absenceHandler.List)
	absences.GET("/:id/detail", absenceHandler.Detail)
	absences.PUT("/:id/update", absenceHandler.Update)
	absences.DELETE("/:id/delete", absenceHandler.Delete)

	// --- Advanced settings, admin only ---
	settings := v1.Group("/settings", authMW, adminOnly)
	settings.POST("/create", settingsHandler.Create)
	settings.GET("/list", settingsHandler.List)
	settings.GET("/:id/detail", settingsHandler.Detail)
	settings.PUT("/:id/update", settingsHandler.Update)
	settings.DELETE("/:id/delete", settingsHandler.Delete)

	return e
}
