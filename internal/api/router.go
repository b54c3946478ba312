package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	"github.com/fittrack/training-api/internal/api/handler"
	"github.com/fittrack/training-api/internal/api/middleware"
	"github.com/fittrack/training-api/internal/core/domain"
	"github.com/fittrack/training-api/internal/core/service"
	"github.com/fittrack/training-api/internal/infrastructure/db/mysql"
	redisinfra "github.com/fittrack/training-api/internal/infrastructure/db/redis"
	"github.com/fittrack/training-api/internal/infrastructure/logsink"
	"github.com/fittrack/training-api/internal/pkg/config"
	"github.com/fittrack/training-api/internal/pkg/i18n"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, cfg *config.Config, bundle *i18n.Bundle, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, bundle, logsink.New(cfg.ErrorLogPath))

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("fittrack"))

	// --- Dependencies ---
	userRepo := mysql.NewUserRepository(db)
	programRepo := mysql.NewProgramRepository(db)
	exerciseRepo := mysql.NewExerciseRepository(db)
	completedRepo := mysql.NewCompletedExerciseRepository(db)
	listCache := redisinfra.NewExerciseListCache(rdb)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, time.Hour)
	programService := service.NewProgramService(programRepo, exerciseRepo, listCache, log)
	exerciseService := service.NewExerciseService(exerciseRepo, listCache, log)
	userService := service.NewUserService(userRepo)
	completedService := service.NewCompletedExerciseService(completedRepo, exerciseRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService, bundle)
	programHandler := handler.NewProgramHandler(programService, bundle)
	exerciseHandler := handler.NewExerciseHandler(exerciseService, bundle)
	userHandler := handler.NewUserHandler(userService, bundle)
	completedHandler := handler.NewCompletedExerciseHandler(completedService, bundle)

	authn := middleware.Auth(cfg.JWTSecret, bundle)
	requireUser := middleware.RequireRole(domain.RoleUser, bundle)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin, bundle)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Programs ---
	programs := e.Group("/programs", authn)
	programs.GET("", programHandler.List, requireUser)
	programs.POST("", programHandler.Create, requireAdmin)
	programs.PUT("/:id", programHandler.Update, requireAdmin)
	programs.DELETE("/:id", programHandler.Delete, requireAdmin)
	programs.PUT("/:programId/add-exercise/:exerciseId", programHandler.AddExercise, requireAdmin)
	programs.PUT("/:programId/remove-exercise/:exerciseId", programHandler.RemoveExercise, requireAdmin)

	// --- Exercises (listing is public) ---
	e.GET("/exercises", exerciseHandler.List)
	exercises := e.Group("/exercises", authn, requireAdmin)
	exercises.POST("", exerciseHandler.Create)
	exercises.PUT("/:id", exerciseHandler.Update)
	exercises.DELETE("/:id", exerciseHandler.Delete)

	// --- Users ---
	users := e.Group("/users", authn)
	users.GET("", userHandler.List, requireAdmin)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)

	// --- Completed exercises ---
	completed := e.Group("/completed-exercises", authn)
	completed.POST("", completedHandler.Track)
	completed.GET("/me", completedHandler.ListOwn)
	completed.GET("/:id", completedHandler.UserDetail, requireAdmin)
	completed.DELETE("/:id", completedHandler.Delete)

	// --- Ops endpoints (no auth required) ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
