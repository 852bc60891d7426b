package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/converter"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	productmemory "github.com/Apurer/store-manager/internal/domains/products/adapters/memory"
	productdomain "github.com/Apurer/store-manager/internal/domains/products/domain"
	salememory "github.com/Apurer/store-manager/internal/domains/sales/adapters/memory"
	saleapp "github.com/Apurer/store-manager/internal/domains/sales/application"
	saledomain "github.com/Apurer/store-manager/internal/domains/sales/domain"
	saleactivities "github.com/Apurer/store-manager/internal/durable/temporal/activities/sales"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

func newTestEnv(t *testing.T) *testsuite.TestWorkflowEnvironment {
	t.Helper()
	products := productmemory.NewRepository()
	products.Seed(productdomain.Product{ID: 1, Name: "Martelo de Thor"})
	sales := salememory.NewRepository().WithClock(func() time.Time {
		return time.Date(2022, 8, 17, 17, 19, 10, 0, time.UTC)
	})
	activities := saleactivities.NewActivities(saleapp.NewService(sales, products))

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivityWithOptions(activities.RegisterSale, activity.RegisterOptions{Name: saleactivities.RegisterSaleActivityName})
	return env
}

func TestSaleRegistrationWorkflow_Completes(t *testing.T) {
	env := newTestEnv(t)
	items := []saledomain.ItemInput{{ProductID: 1, Quantity: 3}}

	env.ExecuteWorkflow(SaleRegistrationWorkflow, SaleRegistrationWorkflowInput{Items: items, TraceID: "trace"})

	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())
	var registration saledomain.Registration
	require.NoError(t, env.GetWorkflowResult(&registration))
	require.Equal(t, int64(1), registration.ID)
	require.Equal(t, items, registration.ItemsSold)
}

func TestSaleRegistrationWorkflow_UnknownProductIsNotRetried(t *testing.T) {
	env := newTestEnv(t)
	attempts := 0
	env.SetOnActivityStartedListener(func(*activity.Info, context.Context, converter.EncodedValues) {
		attempts++
	})

	env.ExecuteWorkflow(SaleRegistrationWorkflow, SaleRegistrationWorkflowInput{
		Items: []saledomain.ItemInput{{ProductID: 99, Quantity: 1}},
	})

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, string(apierrors.KindNotFound), appErr.Type())
	require.True(t, appErr.NonRetryable())
	require.Equal(t, 1, attempts)
}

type unreachableCatalog struct{}

func (unreachableCatalog) CountByIDs(context.Context, []int64) (int64, error) {
	return 0, errors.New("storage unreachable")
}

func TestSaleRegistrationWorkflow_StorageFailureIsNotRetried(t *testing.T) {
	activities := saleactivities.NewActivities(saleapp.NewService(salememory.NewRepository(), unreachableCatalog{}))
	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	env.RegisterActivityWithOptions(activities.RegisterSale, activity.RegisterOptions{Name: saleactivities.RegisterSaleActivityName})
	attempts := 0
	env.SetOnActivityStartedListener(func(*activity.Info, context.Context, converter.EncodedValues) {
		attempts++
	})

	env.ExecuteWorkflow(SaleRegistrationWorkflow, SaleRegistrationWorkflowInput{
		Items: []saledomain.ItemInput{{ProductID: 1, Quantity: 1}},
	})

	require.True(t, env.IsWorkflowCompleted())
	err := env.GetWorkflowError()
	require.Error(t, err)
	require.Contains(t, err.Error(), "storage unreachable")
	require.Equal(t, 1, attempts)
}
