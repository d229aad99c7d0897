package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-admin-status/docs"
	"github.com/sbilibin2017/gw-admin-status/internal/config"
	"github.com/sbilibin2017/gw-admin-status/internal/facades"
	"github.com/sbilibin2017/gw-admin-status/internal/handlers"
	"github.com/sbilibin2017/gw-admin-status/internal/logger"
	"github.com/sbilibin2017/gw-admin-status/internal/middlewares"
	"github.com/sbilibin2017/gw-admin-status/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-admin-status API
// @version 1.0.0
// @description Liveness and database connection status endpoints
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nDate: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run connects to MongoDB, serves the status routes and blocks until ctx is
// cancelled or a termination signal arrives.
func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	var provider services.StatusProvider
	if cfg.MongoEnabled {
		mongo, err := facades.NewMongoFacade(cfg.MongoURI, cfg.MongoDB, cfg.MongoConnectTimeout)
		if err != nil {
			return err
		}
		if err := mongo.Connect(ctx); err != nil {
			logger.Log.Warnw("serving without a live MongoDB connection", "error", err)
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := mongo.Disconnect(disconnectCtx); err != nil {
				logger.Log.Errorw("MongoDB disconnect error", "error", err)
			}
		}()
		provider = mongo
	} else {
		logger.Log.Info("MongoDB disabled, /mongo-status will report unknown")
	}

	statusService := services.NewStatusService(provider)
	docs.SwaggerInfo.Host = cfg.Addr()

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: newRouter(cfg, statusService),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts the status, metrics and documentation routes.
func newRouter(cfg *config.Config, statusService handlers.DBStatuser) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowedOrigins))

	r.Get("/health", handlers.NewHealthHandler())
	r.Get("/mongo-status", handlers.NewDBStatusHandler(statusService))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
