package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/orderpad/orderpad/internal/models"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyOrder      = errors.New("order must contain at least one item")
)

// ProductGetter is the slice of the repository the order service needs.
type ProductGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// OrderService validates incoming orders and issues confirmation codes.
type OrderService struct {
	products ProductGetter
}

// NewOrderService creates a new order service.
func NewOrderService(products ProductGetter) *OrderService {
	return &OrderService{
		products: products,
	}
}

// SaveOrder validates the order and returns a confirmation code.
func (s *OrderService) SaveOrder(ctx context.Context, req models.OrderRequest) (string, error) {
	if len(req.Products) == 0 {
		return "", ErrEmptyOrder
	}

	for _, item := range req.Products {
		if item.Quantity <= 0 {
			return "", ErrInvalidQuantity
		}
		if _, err := s.products.GetByID(ctx, item.ProductID); err != nil {
			return "", ErrInvalidProduct
		}
	}

	return generateCode(), nil
}

// generateCode issues a short confirmation code derived from a UUID.
func generateCode() string {
	id := uuid.New().String()
	return "A-" + strings.ToUpper(id[:8])
}
