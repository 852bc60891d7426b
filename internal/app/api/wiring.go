package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	productmemory "github.com/Apurer/store-manager/internal/domains/products/adapters/memory"
	productobs "github.com/Apurer/store-manager/internal/domains/products/adapters/observability"
	productpostgres "github.com/Apurer/store-manager/internal/domains/products/adapters/persistence/postgres"
	productapp "github.com/Apurer/store-manager/internal/domains/products/application"
	productports "github.com/Apurer/store-manager/internal/domains/products/ports"
	salememory "github.com/Apurer/store-manager/internal/domains/sales/adapters/memory"
	saleobs "github.com/Apurer/store-manager/internal/domains/sales/adapters/observability"
	salepostgres "github.com/Apurer/store-manager/internal/domains/sales/adapters/persistence/postgres"
	saleapp "github.com/Apurer/store-manager/internal/domains/sales/application"
	saleports "github.com/Apurer/store-manager/internal/domains/sales/ports"
	"github.com/Apurer/store-manager/internal/platform/migrations"
	platformobservability "github.com/Apurer/store-manager/internal/platform/observability"
	platformpostgres "github.com/Apurer/store-manager/internal/platform/postgres"
)

// Services bundles the decorated application services shared by the API and
// the worker.
type Services struct {
	Products productports.Service
	Sales    saleports.Service
}

// BuildServices wires repositories (postgres when reachable, memory otherwise)
// and wraps the core services with observability decorators. The returned
// cleanup closes the database pool.
func BuildServices(ctx context.Context, cfg Config, instruments *platformobservability.Instruments) (Services, func(), error) {
	logger := effectiveLogger(instruments)

	productRepo, saleRepo, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return Services{}, nil, err
	}

	products := productobs.New(
		productapp.NewService(productRepo),
		productobs.WithLogger(logger),
		productobs.WithTracer(instruments.Tracer("internal.products.application")),
		productobs.WithMeter(instruments.Meter("internal.products.application")),
	)
	sales := saleobs.New(
		saleapp.NewService(saleRepo, productRepo),
		saleobs.WithLogger(logger),
		saleobs.WithTracer(instruments.Tracer("internal.sales.application")),
		saleobs.WithMeter(instruments.Meter("internal.sales.application")),
	)
	return Services{Products: products, Sales: sales}, cleanup, nil
}

type productRepository interface {
	productports.Repository
	saleports.ProductCatalog
}

func buildRepositories(ctx context.Context, cfg Config, logger *slog.Logger) (productRepository, saleports.Repository, func(), error) {
	db, cleanup := platformpostgres.ConnectWithFallback(ctx, cfg.PostgresDSN, logger)
	if db == nil {
		return productmemory.NewRepository(), salememory.NewRepository(), cleanup, nil
	}
	if err := migrations.Run(db.WithContext(ctx)); err != nil {
		cleanup()
		return nil, nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info("repositories configured with postgres")
	return productpostgres.NewRepository(db), salepostgres.NewRepository(db), cleanup, nil
}

// DialTemporal connects a Temporal client with tracing and structured logging.
func DialTemporal(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
