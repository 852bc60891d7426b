package sales

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	saleports "github.com/Apurer/store-manager/internal/domains/sales/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

// RegisterSaleActivityName creates a sale after its product existence check.
const RegisterSaleActivityName = "sales.activities.RegisterSale"

// Activities groups activities that operate on the sales bounded context.
type Activities struct {
	service saleports.Service
}

// NewActivities wires the sale service into the Temporal activities bundle.
func NewActivities(service saleports.Service) *Activities {
	return &Activities{service: service}
}

// RegisterSale stores a sale. Taxonomy failures are returned as
// non-retryable application errors whose type is the error kind and whose
// single detail is the client message.
func (a *Activities) RegisterSale(ctx context.Context, items []saledomain.ItemInput) (*saledomain.Registration, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("sale registration activity not initialized")
		return nil, errors.New("sale registration activity not initialized")
	}
	logger.Info("RegisterSale activity started", "items", len(items))
	registration, err := a.service.Add(ctx, items)
	if err != nil {
		logger.Error("RegisterSale activity failed", "error", err)
		if domainErr, ok := apierrors.As(err); ok {
			return nil, temporal.NewNonRetryableApplicationError(domainErr.Message, string(domainErr.Kind), nil, domainErr.Message)
		}
		return nil, err
	}
	logger.Info("RegisterSale activity completed", "saleId", registration.ID)
	return registration, nil
}
