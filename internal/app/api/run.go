package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"

	storemanagerserver "github.com/Apurer/store-manager/go"

	saleworkflows "github.com/Apurer/store-manager/internal/domains/sales/adapters/workflows"
	saleports "github.com/Apurer/store-manager/internal/domains/sales/ports"
	platformobservability "github.com/Apurer/store-manager/internal/platform/observability"
)

const serviceName = "store-manager-api"

// Run boots the store manager HTTP API with observability, repositories, and
// workflows wired. It blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.WithLogLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	services, cleanup, err := BuildServices(ctx, cfg, instruments)
	if err != nil {
		return err
	}
	defer cleanup()

	var registrar saleports.SaleRegistrar = saleworkflows.NewInlineSaleRegistrar(services.Sales)
	if temporalClient, err := DialTemporal(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, registering sales inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		registrar = saleworkflows.NewTemporalSaleRegistrar(temporalClient, cfg.SalesTaskQueue)
		logger.Info("Temporal workflows enabled",
			slog.String("namespace", cfg.TemporalNamespace),
			slog.String("taskQueue", cfg.SalesTaskQueue),
		)
	}

	handlers := storemanagerserver.ApiHandleFunctions{
		ProductAPI: storemanagerserver.NewProductAPI(services.Products),
		SaleAPI:    storemanagerserver.NewSaleAPI(services.Sales, registrar),
	}
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	router = storemanagerserver.NewRouterWithGinEngine(router, handlers)

	return serve(ctx, &http.Server{Addr: cfg.Addr(), Handler: router}, cfg.ShutdownTimeout, logger)
}

func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("store manager API listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("store manager API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("store manager API shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
