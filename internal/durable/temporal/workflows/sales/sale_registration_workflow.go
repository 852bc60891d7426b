package sales

import (
	"go.temporal.io/sdk/workflow"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	"github.com/Apurer/store-manager/internal/durable/temporal/sequences"
)

const (
	// SaleRegistrationWorkflowName is the public identifier for registering the workflow.
	SaleRegistrationWorkflowName = "sales.workflows.Registration"
	// SaleRegistrationTaskQueue is the default queue consumed by the worker.
	SaleRegistrationTaskQueue = "SALE_REGISTRATION"
)

// SaleRegistrationWorkflowInput captures the payload required to register a sale.
type SaleRegistrationWorkflowInput struct {
	Items   []saledomain.ItemInput
	TraceID string
}

// SaleRegistrationWorkflow orchestrates the activities that create a sale.
func SaleRegistrationWorkflow(ctx workflow.Context, input SaleRegistrationWorkflowInput) (*saledomain.Registration, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("SaleRegistrationWorkflow started", withTraceID(input.TraceID, "items", len(input.Items))...)
	registration, err := sequences.RunSaleRegistrationSequence(ctx, input.Items)
	if err != nil {
		logger.Error("SaleRegistrationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	logger.Info("SaleRegistrationWorkflow completed", withTraceID(input.TraceID, "saleId", registration.ID)...)
	return registration, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
