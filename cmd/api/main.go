package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"unitracker/docs"
	"unitracker/internal/config"
	"unitracker/internal/database"
	"unitracker/internal/database/migration"
	handlers "unitracker/internal/http/handler"
	"unitracker/internal/http/middleware"
	"unitracker/internal/logging"
	"unitracker/internal/otel"
	"unitracker/internal/repository"
	"unitracker/internal/repository/file"
	"unitracker/internal/repository/postgres"
	"unitracker/internal/service"
	"unitracker/internal/storage"
)

// @title University Application Tracker API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid APP_TIMEZONE %q: %v", cfg.Timezone, err)
	}
	logger, err := logging.New(cfg.LogLevel, loc)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("server_failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) error {
	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	repo, db, err := newWorkspaceRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	store, err := newUploadStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init upload storage: %w", err)
	}

	wsSvc := service.NewWorkspaceService(repo, logger)
	upSvc := service.NewUploadService(wsSvc, store, logger)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.BodyLimitMB << 20,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware())
	app.Use(middleware.Logger(logger))
	app.Use(metrics.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, handlers.Deps{
		Workspace: wsSvc,
		Uploads:   upSvc,
		ReadOnly:  cfg.Store.ReadOnly,
		Log:       logger,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logger.Warn("server_shutdown_failed", zap.Error(err))
		}
	}()

	logger.Info("server_starting",
		zap.String("port", cfg.Port),
		zap.String("workspace_backend", cfg.Store.WorkspaceBackend),
		zap.String("upload_backend", cfg.Store.UploadBackend),
		zap.Bool("read_only", cfg.Store.ReadOnly),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	logger.Info("server_stopped")
	return nil
}

// newWorkspaceRepository returns the configured workspace backend. The *sql.DB is nil for the file backend.
func newWorkspaceRepository(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (repository.WorkspaceRepository, *sql.DB, error) {
	switch cfg.Store.WorkspaceBackend {
	case config.WorkspaceBackendFile:
		return file.NewWorkspaceFile(cfg.Store.WorkspaceFile), nil, nil
	case config.WorkspaceBackendPostgres:
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate database: %w", err)
		}
		return postgres.NewWorkspacePostgres(db), db, nil
	default:
		return nil, nil, fmt.Errorf("unknown WORKSPACE_BACKEND %q", cfg.Store.WorkspaceBackend)
	}
}

func newUploadStorage(ctx context.Context, cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Store.UploadBackend {
	case config.UploadBackendDisk:
		return storage.NewDisk(cfg.Store.UploadsDir)
	case config.UploadBackendMinIO:
		return storage.NewMinIO(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown UPLOAD_BACKEND %q", cfg.Store.UploadBackend)
	}
}
