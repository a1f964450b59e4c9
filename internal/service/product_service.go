package service

import (
	"context"

	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/internal/repository"
)

// ProductService handles business logic for the catalog.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// ListProducts returns all available products.
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}
