// File: servicedirectory/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"servicedirectory/config"
	"servicedirectory/handlers"
	"servicedirectory/middleware"
	"servicedirectory/routes"
	"servicedirectory/services/directory"
	"servicedirectory/templates"
	"servicedirectory/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	shutdownTracing, err := utils.SetupTracing(rootCtx, cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to set up tracing: %v", err)
	}

	redisClient, err := utils.NewRedisClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	tmpl, err := templates.New()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to parse templates: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	router.SetHTMLTemplate(tmpl)

	// services.
	directoryClient := directory.NewClient(cfg.DirectoryAPIURL, cfg.FetchTimeout, logger.Named("directory"))
	monitor := utils.NewHealthMonitor(directoryClient, redisClient, logger.Named("health"))
	monitor.Start(rootCtx, cfg.HealthCheckInterval)

	directoryHandler := handlers.NewDirectoryHandler(directoryClient)
	submissionHandler := handlers.NewSubmissionHandler(directoryClient)

	submitLimiter := middleware.RateLimitMiddleware(cfg.SubmitRequestsPerMin)
	if redisClient != nil {
		submitLimiter = middleware.NewRedisRateLimiter(redisClient, cfg.SubmitRequestsPerMin, time.Minute, "rl:submit").Middleware()
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HomeHandler:            directoryHandler.HomeHandler,
		ListProvidersHandler:   directoryHandler.ListProvidersHandler,
		GetProviderHandler:     directoryHandler.GetProviderHandler,
		NewProviderFormHandler: submissionHandler.NewProviderFormHandler,
		CreateProviderHandler:  submissionHandler.CreateProviderHandler,
		SubmitLimiter:          submitLimiter,
		HealthHandler:          handlers.HealthHandler(monitor),
	}

	routes.RegisterRoutes(router, handlerBundle)

	port := cfg.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server",
		zap.String("addr", srv.Addr),
		zap.String("directoryApi", cfg.DirectoryAPIURL),
		zap.Duration("fetchTimeout", cfg.FetchTimeout),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		logger.Warn("main: tracing shutdown failed", zap.Error(err))
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
