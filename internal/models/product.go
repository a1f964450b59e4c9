package models

// Product is a catalog entry as served by the products endpoint.
// Immutable from the client's perspective; sourced fresh on every fetch.
type Product struct {
	ID    int64   `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}
