package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/orderpad/orderpad/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// InMemoryProductRepository implements ProductRepository with in-memory storage.
type InMemoryProductRepository struct {
	products map[int64]models.Product
}

// NewInMemoryProductRepository creates a new in-memory product repository with
// seed data mirroring the grocery catalog of the remote API.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	products := map[int64]models.Product{
		1: {ID: 1, Title: "Хлеб", Price: 50},
		2: {ID: 2, Title: "Молоко", Price: 80},
		3: {ID: 3, Title: "Кефир", Price: 65},
		4: {ID: 4, Title: "Сыр", Price: 450},
		5: {ID: 5, Title: "Масло", Price: 120},
		6: {ID: 6, Title: "Яйца", Price: 95},
		7: {ID: 7, Title: "Кофе", Price: 310.5},
		8: {ID: 8, Title: "Яблоки", Price: 90},
	}

	return &InMemoryProductRepository{
		products: products,
	}
}

// GetAll returns all products ordered by ID.
func (r *InMemoryProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetByID returns a product by its ID.
func (r *InMemoryProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, exists := r.products[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	return &product, nil
}
