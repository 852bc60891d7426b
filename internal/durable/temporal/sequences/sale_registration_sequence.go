package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	saleactivities "github.com/Apurer/store-manager/internal/durable/temporal/activities/sales"
)

// RunSaleRegistrationSequence executes the activities that persist a new sale.
func RunSaleRegistrationSequence(ctx workflow.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("sale registration sequence started", "items", len(items))
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		// Storage failures surface to the caller as-is; a sale is never re-attempted.
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 1,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var registration saledomain.Registration
	err := workflow.ExecuteActivity(ctx, saleactivities.RegisterSaleActivityName, items).Get(ctx, &registration)
	if err != nil {
		logger.Error("sale registration sequence failed", "error", err)
		return nil, err
	}
	logger.Info("sale registration sequence completed", "saleId", registration.ID)
	return &registration, nil
}
