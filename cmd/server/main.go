package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"orgbook.app/api-server/common/id"
	"orgbook.app/api-server/common/logger"
	"orgbook.app/api-server/common/otel"
	"orgbook.app/api-server/core/config"
	"orgbook.app/api-server/core/db"
	"orgbook.app/api-server/internal/http/middleware"
	httprouter "orgbook.app/api-server/internal/http/router"
	"orgbook.app/api-server/internal/registry"
	"orgbook.app/api-server/internal/service"
	"orgbook.app/api-server/internal/store"
	"orgbook.app/api-server/internal/token"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "orgbook starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores)
	verifier := token.NewVerifier(cfg.Auth.SigningSecret)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services, verifier)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	// Best-effort self-registration with the host platform. Runs detached so
	// a slow or absent registry never delays readiness; the outcome is only
	// logged.
	go announceModule(ctx, cfg.Registry)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services, verifier *token.Verifier) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services, verifier)

	return router
}

func announceModule(ctx context.Context, cfg config.RegistryConfig) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "orgbook.registry.announcer"})

	if !cfg.Enabled() {
		slog.DebugContext(ctx, "registry announcement skipped (no admin token configured)")
		return
	}

	announcer := registry.NewAnnouncer(cfg, registry.DefaultManifest(cfg.UIEntryURL))
	if err := announcer.Announce(ctx); err != nil {
		slog.WarnContext(ctx, "registry announcement failed", "error", err, "registry", cfg.BaseURL)
		return
	}

	slog.InfoContext(ctx, "module announced to host registry", "registry", cfg.BaseURL)
}

const banner = `
 ██████╗ ██████╗  ██████╗ ██████╗  ██████╗  ██████╗ ██╗  ██╗
██╔═══██╗██╔══██╗██╔════╝ ██╔══██╗██╔═══██╗██╔═══██╗██║ ██╔╝
██║   ██║██████╔╝██║  ███╗██████╔╝██║   ██║██║   ██║█████╔╝
██║   ██║██╔══██╗██║   ██║██╔══██╗██║   ██║██║   ██║██╔═██╗
╚██████╔╝██║  ██║╚██████╔╝██████╔╝╚██████╔╝╚██████╔╝██║  ██╗
 ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚═════╝  ╚═════╝  ╚═════╝ ╚═╝  ╚═╝
`
