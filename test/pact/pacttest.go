//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"
)

const (
	ProviderName = "store-manager-api"
	ConsumerName = "store-frontend"

	StateProductsBaseline = "products baseline"
	StateProductExists    = "product with id 101 exists"
	StateProductMissing   = "no product with id 404"
	StateSaleExists       = "sale with id 301 exists"
	StateSaleMissing      = "no sale with id 999"
)

const (
	ExistingProductID int64 = 101
	MissingProductID  int64 = 404

	ExistingSaleID int64 = 301
	MissingSaleID  int64 = 999

	ExampleProductName = "Mechanical Keyboard"
	ExampleQuantity    = 3
)

// ExampleSaleDate is the fixed date of the seeded sale.
var ExampleSaleDate = time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleProductPayload provides stable test data for product interactions.
func ExampleProductPayload() map[string]any {
	return map[string]any{
		"id":   ExistingProductID,
		"name": ExampleProductName,
	}
}

// ExampleSaleItemsPayload provides the line items of the seeded sale.
func ExampleSaleItemsPayload() []map[string]any {
	return []map[string]any{
		{"productId": ExistingProductID, "quantity": ExampleQuantity},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
