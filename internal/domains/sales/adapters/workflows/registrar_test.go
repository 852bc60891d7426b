package workflows

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/mocks"
	"go.temporal.io/sdk/temporal"

	productmemory "github.com/Apurer/store-manager/internal/domains/products/adapters/memory"
	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
	salememory "github.com/Apurer/store-manager/internal/domains/sales/adapters/memory"
	saleapp "github.com/Apurer/store-manager/internal/domains/sales/application"
	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

func TestInlineSaleRegistrar(t *testing.T) {
	products := productmemory.NewRepository()
	products.Seed(productdomain.Product{ID: 1, Name: "Martelo de Thor"})
	registrar := NewInlineSaleRegistrar(saleapp.NewService(salememory.NewRepository(), products))
	ctx := context.Background()

	registration, err := registrar.RegisterSale(ctx, []saledomain.ItemInput{{ProductID: 1, Quantity: 2}})
	require.NoError(t, err)
	require.Equal(t, int64(1), registration.ID)

	_, err = registrar.RegisterSale(ctx, []saledomain.ItemInput{{ProductID: 2, Quantity: 2}})
	require.ErrorIs(t, err, apierrors.ErrProductNotFound)
}

func TestUnconfiguredRegistrars(t *testing.T) {
	ctx := context.Background()

	_, err := (&InlineSaleRegistrar{}).RegisterSale(ctx, nil)
	require.Error(t, err)
	_, err = (&TemporalSaleRegistrar{}).RegisterSale(ctx, nil)
	require.Error(t, err)
}

func TestMapWorkflowError(t *testing.T) {
	notFound := temporal.NewNonRetryableApplicationError("Product not found", string(apierrors.KindNotFound), nil, "Product not found")
	require.ErrorIs(t, mapWorkflowError(fmt.Errorf("workflow failed: %w", notFound)), apierrors.ErrProductNotFound)

	unknownType := temporal.NewApplicationError("boom", "SomethingElse", "boom")
	require.Equal(t, unknownType, mapWorkflowError(unknownType))

	plain := errors.New("timeout")
	require.Equal(t, plain, mapWorkflowError(plain))
}

func TestNewTemporalSaleRegistrarDefaultsQueue(t *testing.T) {
	registrar := NewTemporalSaleRegistrar(nil, "")
	require.Equal(t, "SALE_REGISTRATION", registrar.taskQueue)
}

func TestTemporalSaleRegistrarBoundsWorkflowExecution(t *testing.T) {
	cases := map[string]struct {
		opts []RegistrarOption
		want time.Duration
	}{
		"default":         {want: DefaultRegistrationTimeout},
		"override":        {opts: []RegistrarOption{WithExecutionTimeout(5 * time.Second)}, want: 5 * time.Second},
		"ignored if zero": {opts: []RegistrarOption{WithExecutionTimeout(0)}, want: DefaultRegistrationTimeout},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			temporalClient := &mocks.Client{}
			var started client.StartWorkflowOptions
			temporalClient.
				On("ExecuteWorkflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) {
					started = args.Get(1).(client.StartWorkflowOptions)
				}).
				Return(nil, errors.New("namespace unavailable"))

			registrar := NewTemporalSaleRegistrar(temporalClient, "sales-test", tc.opts...)
			_, err := registrar.RegisterSale(context.Background(), []saledomain.ItemInput{{ProductID: 1, Quantity: 1}})
			require.Error(t, err)
			require.Equal(t, "sales-test", started.TaskQueue)
			require.Equal(t, tc.want, started.WorkflowExecutionTimeout)
			temporalClient.AssertExpectations(t)
		})
	}
}

func TestTimedOutWorkflowIsNotATaxonomyError(t *testing.T) {
	timeout := temporal.NewTimeoutError(0, nil)
	mapped := mapWorkflowError(fmt.Errorf("workflow failed: %w", timeout))
	_, ok := apierrors.As(mapped)
	require.False(t, ok)
}
