package application

import (
	"context"

	"github.com/Apurer/store-manager/internal/domains/sales/domain"
	"github.com/Apurer/store-manager/internal/domains/sales/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

// Service orchestrates the sale use cases and guards the sale/product
// relationship.
type Service struct {
	repo     ports.Repository
	products ports.ProductCatalog
}

// NewService wires the sale service with its repository and the product
// catalog used for existence checks.
func NewService(repo ports.Repository, products ports.ProductCatalog) *Service {
	return &Service{repo: repo, products: products}
}

// List returns every line item of every sale with its sale date.
func (s *Service) List(ctx context.Context) ([]domain.ListingRow, error) {
	rows, err := s.repo.Listing(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return rows, nil
}

// GetByID returns the detail rows of a sale. A sale without line items
// yields an empty slice.
func (s *Service) GetByID(ctx context.Context, saleID int64) ([]domain.DetailRow, error) {
	if err := s.ensureSaleExists(ctx, saleID); err != nil {
		return nil, err
	}
	rows, err := s.repo.Detail(ctx, saleID)
	if err != nil {
		return nil, mapError(err)
	}
	return rows, nil
}

// Add creates a sale once every referenced product is known to exist.
// Nothing is written when the check fails.
func (s *Service) Add(ctx context.Context, items []domain.ItemInput) (*domain.Registration, error) {
	if err := s.ensureProductsExist(ctx, items); err != nil {
		return nil, err
	}
	saleID, err := s.repo.Create(ctx, items)
	if err != nil {
		return nil, mapError(err)
	}
	return &domain.Registration{ID: saleID, ItemsSold: items}, nil
}

// Edit updates line item quantities. The sale is checked before the products.
func (s *Service) Edit(ctx context.Context, saleID int64, items []domain.ItemInput) (*domain.Update, error) {
	if err := s.ensureSaleExists(ctx, saleID); err != nil {
		return nil, err
	}
	if err := s.ensureProductsExist(ctx, items); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateQuantities(ctx, items); err != nil {
		return nil, mapError(err)
	}
	return &domain.Update{SaleID: saleID, ItemsUpdated: items}, nil
}

// Remove deletes a sale and its line items.
func (s *Service) Remove(ctx context.Context, saleID int64) error {
	if err := s.ensureSaleExists(ctx, saleID); err != nil {
		return err
	}
	return mapError(s.repo.Delete(ctx, saleID))
}

func (s *Service) ensureSaleExists(ctx context.Context, saleID int64) error {
	exists, err := s.repo.Exists(ctx, saleID)
	if err != nil {
		return err
	}
	if !exists {
		return apierrors.ErrSaleNotFound
	}
	return nil
}

// ensureProductsExist compares one count query against the number of
// requested items, so a repeated product id fails the check like a missing one.
func (s *Service) ensureProductsExist(ctx context.Context, items []domain.ItemInput) error {
	ids := domain.ProductIDs(items)
	count, err := s.products.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apierrors.ErrProductNotFound
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
