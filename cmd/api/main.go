// @title LingoPath API
// @version 1.0
// @description REST API for the LingoPath English learning platform.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lingopath/internal/adapter"
	"lingopath/internal/cache"
	"lingopath/internal/config"
	"lingopath/internal/database"
	"lingopath/internal/handler"
	"lingopath/internal/logger"
	"lingopath/internal/middleware"
	"lingopath/internal/repository"
	"lingopath/internal/service"
	"lingopath/internal/validation"

	_ "lingopath/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	examRepository := repository.NewSQLXExamRepository(db)
	materialRepository := repository.NewSQLXMaterialRepository(db)
	missionRepository := repository.NewSQLXMissionRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Services
	authService, err := service.NewAuthService(userRepository, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	examService := service.NewExamService(examRepository, cacheAdapter, cfg.Cache.ContentTTL)
	materialService := service.NewMaterialService(materialRepository, cacheAdapter, cfg.Cache.ContentTTL)
	missionService := service.NewMissionService(missionRepository, txManager)

	// Handlers
	validator := validation.NewValidator()
	authHandler := handler.NewAuthHandler(authService, validator, cfg)
	examHandler := handler.NewExamHandler(examService, validator)
	materialHandler := handler.NewMaterialHandler(materialService, validator)
	missionHandler := handler.NewMissionHandler(missionService, validator)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		MaxAge:           300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Get("/me", middleware.Protected(authService), authHandler.Profile)
	authGroup.Get("/google/login", authHandler.GoogleLogin)
	authGroup.Get("/google/callback", authHandler.GoogleCallback)

	// Exam routes (all protected)
	examGroup := apiGroup.Group("/exams", middleware.Protected(authService))
	examGroup.Get("/", examHandler.GetExams)
	examGroup.Get("/:slug", examHandler.GetExamBySlug)
	examGroup.Post("/:slug/submit", examHandler.SubmitExam)
	examGroup.Get("/:slug/submissions", examHandler.GetSubmissionHistory)

	// Material routes (all protected)
	materialGroup := apiGroup.Group("/materials", middleware.Protected(authService))
	materialGroup.Get("/", materialHandler.GetMaterials)
	materialGroup.Get("/:slug", materialHandler.GetMaterialBySlug)
	materialGroup.Post("/:slug/like", materialHandler.ToggleLike)

	// Mission routes (all protected)
	missionGroup := apiGroup.Group("/missions", middleware.Protected(authService))
	missionGroup.Get("/next", missionHandler.GetNextMission)
	missionGroup.Get("/completions", missionHandler.GetCompletions)
	missionGroup.Post("/:slug/answer", missionHandler.SubmitAnswer)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		appLogger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			appLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + strconv.Itoa(cfg.Server.Port)
	appLogger.Info("Starting server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("Server stopped unexpectedly", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
