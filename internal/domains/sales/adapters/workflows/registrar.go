package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	"github.com/Apurer/store-manager/internal/domains/sales/ports"
	saleworkflows "github.com/Apurer/store-manager/internal/durable/temporal/workflows/sales"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

var (
	_ ports.SaleRegistrar = (*TemporalSaleRegistrar)(nil)
	_ ports.SaleRegistrar = (*InlineSaleRegistrar)(nil)
)

// DefaultRegistrationTimeout bounds a registration workflow so a missing
// worker yields an error instead of a request that never completes.
const DefaultRegistrationTimeout = 30 * time.Second

// TemporalSaleRegistrar starts sale registration workflows on a Temporal cluster.
type TemporalSaleRegistrar struct {
	client           client.Client
	taskQueue        string
	executionTimeout time.Duration
}

// RegistrarOption customises a TemporalSaleRegistrar.
type RegistrarOption func(*TemporalSaleRegistrar)

// WithExecutionTimeout overrides DefaultRegistrationTimeout. Non-positive values are ignored.
func WithExecutionTimeout(timeout time.Duration) RegistrarOption {
	return func(r *TemporalSaleRegistrar) {
		if timeout > 0 {
			r.executionTimeout = timeout
		}
	}
}

// NewTemporalSaleRegistrar wires a Temporal client into the registrar. An
// empty task queue selects the default one.
func NewTemporalSaleRegistrar(c client.Client, taskQueue string, opts ...RegistrarOption) *TemporalSaleRegistrar {
	if taskQueue == "" {
		taskQueue = saleworkflows.SaleRegistrationTaskQueue
	}
	r := &TemporalSaleRegistrar{client: c, taskQueue: taskQueue, executionTimeout: DefaultRegistrationTimeout}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// RegisterSale runs the registration workflow and waits for its result.
func (r *TemporalSaleRegistrar) RegisterSale(ctx context.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	if r == nil || r.client == nil {
		return nil, errors.New("temporal sale registrar not configured")
	}
	traceID := workflowTraceID(ctx)
	options := client.StartWorkflowOptions{
		ID:                       fmt.Sprintf("sale-registration-%s", uuid.NewString()),
		TaskQueue:                r.taskQueue,
		WorkflowExecutionTimeout: r.executionTimeout,
	}
	run, err := r.client.ExecuteWorkflow(
		ctx,
		options,
		saleworkflows.SaleRegistrationWorkflow,
		saleworkflows.SaleRegistrationWorkflowInput{Items: items, TraceID: traceID},
	)
	if err != nil {
		return nil, err
	}
	var registration saledomain.Registration
	if err := run.Get(ctx, &registration); err != nil {
		return nil, mapWorkflowError(err)
	}
	return &registration, nil
}

// InlineSaleRegistrar executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineSaleRegistrar struct {
	service ports.Service
}

// NewInlineSaleRegistrar wraps the sale service for synchronous execution.
func NewInlineSaleRegistrar(service ports.Service) *InlineSaleRegistrar {
	return &InlineSaleRegistrar{service: service}
}

// RegisterSale delegates to the application service.
func (r *InlineSaleRegistrar) RegisterSale(ctx context.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	if r == nil || r.service == nil {
		return nil, errors.New("inline sale registrar not configured")
	}
	return r.service.Add(ctx, items)
}

// mapWorkflowError restores taxonomy errors raised by the registration
// activity so the HTTP layer can map them to client statuses.
func mapWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	var message string
	if detailsErr := appErr.Details(&message); detailsErr != nil {
		return err
	}
	if domainErr, ok := apierrors.FromKind(apierrors.Kind(appErr.Type()), message); ok {
		return domainErr
	}
	return err
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanContextFromContext(ctx)
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
