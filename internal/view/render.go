package view

import "github.com/orderpad/orderpad/internal/models"

// Row is one rendered order line.
type Row struct {
	Title     string
	Quantity  int
	LineTotal float64
}

// Snapshot is the fully derived view of an order against a catalog.
// It carries everything a UI adapter needs to replace its rendered content.
type Snapshot struct {
	Rows  []Row
	Total float64
}

// Render derives table rows and the running total from the order items joined
// against the catalog. Items whose product is no longer in the catalog are
// skipped and contribute nothing to the total. Render is pure: identical
// inputs always produce an identical snapshot.
func Render(items []models.OrderItem, catalog []models.Product) Snapshot {
	snap := Snapshot{Rows: make([]Row, 0, len(items))}
	for _, item := range items {
		product, ok := findProduct(catalog, item.ProductID)
		if !ok {
			continue
		}
		line := product.Price * float64(item.Quantity)
		snap.Rows = append(snap.Rows, Row{
			Title:     product.Title,
			Quantity:  item.Quantity,
			LineTotal: line,
		})
		snap.Total += line
	}
	return snap
}

// findProduct does a linear scan; the catalog is small enough that indexing
// would not pay for itself.
func findProduct(catalog []models.Product, id int64) (models.Product, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
