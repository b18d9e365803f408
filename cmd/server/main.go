package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kayan/internal/config"
	"kayan/internal/handler"
	"kayan/internal/mailer"
	"kayan/internal/repository"
	"kayan/internal/service"
	"kayan/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gopkg.in/natefinch/lumberjack.v2"
)

// @title Kayan Al-Khalij Website API
// @version 1.0
// @description Backend for the factory website: contact form, customer testimonials and visit analytics

// @host localhost:3001
// @BasePath /
func main() {
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(&cfg.Log, cfg.Server.Mode)

	// Repositories
	sqliteRepo := repository.NewSQLiteRepository(&cfg.Database.SQLite)
	defer sqliteRepo.Close()

	redisRepo := repository.NewRedisRepository(&cfg.Database.Redis)
	defer redisRepo.Close()

	// Outbound email
	notifier := mailer.NewNotifier(mailer.NewMailer(&cfg.Mail), sqliteRepo, &cfg.Mail)

	// Services
	analyticsSvc := service.NewAnalyticsService(sqliteRepo, redisRepo)
	contactSvc := service.NewContactService(sqliteRepo, notifier)
	testimonialSvc := service.NewTestimonialService(sqliteRepo, notifier)

	retentionSvc := service.NewRetentionService(sqliteRepo, &cfg.Retention)
	if err := retentionSvc.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start retention scheduler")
	}
	defer retentionSvc.Stop()

	// HTTP server
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS)

	submitLimiter := submitRateLimiter(cfg)

	analyticsHandler := handler.NewAnalyticsHandler(analyticsSvc)
	analytics := router.Group("/api/analytics")
	{
		analytics.POST("/visit", analyticsHandler.Track)
		analytics.PUT("/visit/:id/duration", analyticsHandler.UpdateDuration)
		analytics.GET("/visits", analyticsHandler.ListVisits)
		analytics.GET("/stats/overview", analyticsHandler.Overview)
		analytics.GET("/stats/real-time", analyticsHandler.RealTime)
		analytics.GET("/export", analyticsHandler.Export)
	}

	contactHandler := handler.NewContactHandler(contactSvc)
	contact := router.Group("/api/contact")
	{
		contact.POST("", submitLimiter, contactHandler.Submit)
		contact.GET("", contactHandler.List)
		contact.GET("/stats/summary", contactHandler.Stats)
		contact.GET("/:id", contactHandler.Get)
		contact.PUT("/:id/status", contactHandler.UpdateStatus)
		contact.DELETE("/:id", contactHandler.Delete)
	}

	testimonialHandler := handler.NewTestimonialHandler(testimonialSvc)
	testimonials := router.Group("/api/testimonials")
	{
		testimonials.POST("", submitLimiter, testimonialHandler.Submit)
		testimonials.GET("", testimonialHandler.List)
		testimonials.GET("/public", testimonialHandler.ListPublic)
		testimonials.GET("/stats/summary", testimonialHandler.Stats)
		testimonials.PUT("/:id/approve", testimonialHandler.Approve)
		testimonials.DELETE("/:id", testimonialHandler.Delete)
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// setupLogger configures the global zerolog logger. Release mode writes JSON,
// optionally to a rotating file; anything else gets a console writer.
func setupLogger(cfg *config.LogConfig, mode string) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if mode != "release" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
		return
	}

	if cfg.File.Enable {
		log.Logger = log.Output(&lumberjack.Logger{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.MaxSizeMB,
			MaxBackups: cfg.File.MaxBackups,
			MaxAge:     cfg.File.MaxAgeDays,
			Compress:   cfg.File.Compress,
		})
	}
}

// submitRateLimiter builds the shared per-IP limiter for the public
// form-submission endpoints, or a pass-through when disabled
func submitRateLimiter(cfg *config.Config) gin.HandlerFunc {
	if !cfg.RateLimit.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	period, err := cfg.RateLimitPeriod()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid rate limit period")
	}
	return middleware.RateLimit(period, cfg.RateLimit.Limit)
}
