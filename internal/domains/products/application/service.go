package application

import (
	"context"

	"github.com/Apurer/store-manager/internal/domains/products/domain"
	"github.com/Apurer/store-manager/internal/domains/products/ports"
	apierrors "github.com/Apurer/store-manager/internal/shared/errors"
)

// Service orchestrates the product use cases.
type Service struct {
	repo ports.Repository
}

// NewService wires the product service with its repository.
func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every stored product.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapError(err)
	}
	return products, nil
}

// GetByID loads a single product.
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// Add stores a new product.
func (s *Service) Add(ctx context.Context, name string) (*domain.Product, error) {
	product, err := s.repo.Create(ctx, name)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// Edit renames an existing product.
func (s *Service) Edit(ctx context.Context, id int64, name string) (*domain.Product, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	product, err := s.repo.UpdateName(ctx, id, name)
	if err != nil {
		return nil, mapError(err)
	}
	return product, nil
}

// Remove deletes an existing product.
func (s *Service) Remove(ctx context.Context, id int64) error {
	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}
	return mapError(s.repo.Delete(ctx, id))
}

// SearchByName returns the products whose name contains term, ignoring case.
// An empty result is reported as ErrProductNotFound.
func (s *Service) SearchByName(ctx context.Context, term string) ([]*domain.Product, error) {
	products, err := s.repo.SearchByName(ctx, term)
	if err != nil {
		return nil, mapError(err)
	}
	if len(products) == 0 {
		return nil, apierrors.ErrProductNotFound
	}
	return products, nil
}

func (s *Service) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apierrors.ErrProductNotFound
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
