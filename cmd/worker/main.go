package main

import (
	"context"
	"log"
	"log/slog"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/store-manager/internal/app/api"
	saleactivities "github.com/Apurer/store-manager/internal/durable/temporal/activities/sales"
	saleworkflows "github.com/Apurer/store-manager/internal/durable/temporal/workflows/sales"
	platformobservability "github.com/Apurer/store-manager/internal/platform/observability"
)

func main() {
	ctx := context.Background()
	const serviceName = "store-manager-worker"
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName, platformobservability.WithLogLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	services, cleanup, err := api.BuildServices(ctx, cfg, instruments)
	if err != nil {
		logger.Error("failed to build services", slog.String("error", err.Error()))
		return
	}
	defer cleanup()
	saleActivities := saleactivities.NewActivities(services.Sales)

	// The worker never falls back: without Temporal it has nothing to do.
	cfg.TemporalDisabled = false
	temporalClient, err := api.DialTemporal(cfg, instruments)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		return
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, cfg.SalesTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(saleworkflows.SaleRegistrationWorkflow, workflow.RegisterOptions{Name: saleworkflows.SaleRegistrationWorkflowName})
	w.RegisterActivityWithOptions(saleActivities.RegisterSale, activity.RegisterOptions{Name: saleactivities.RegisterSaleActivityName})

	logger.Info("worker listening", slog.String("taskQueue", cfg.SalesTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
