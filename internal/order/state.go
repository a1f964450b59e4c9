package order

import (
	"errors"
	"sync"

	"github.com/orderpad/orderpad/internal/models"
)

var (
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// State holds the pending order as an append-only sequence of line items.
// Insertion order is display order. Adding the same product twice yields two
// separate line items rather than merging them.
type State struct {
	mu    sync.Mutex
	items []models.OrderItem
}

// NewState creates an empty order.
func NewState() *State {
	return &State{}
}

// Add appends a line item to the end of the sequence.
// The sequence is unchanged on error.
func (s *State) Add(productID int64, quantity int) error {
	if productID <= 0 {
		return ErrInvalidProduct
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, models.OrderItem{ProductID: productID, Quantity: quantity})
	return nil
}

// Clear empties the order. Called only after a confirmed submission.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// Items returns a snapshot of the current sequence in insertion order.
func (s *State) Items() []models.OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.OrderItem, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the number of line items.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
