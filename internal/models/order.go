package models

// OrderItem is a single pending line of an order.
type OrderItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// OrderRequest is the body of a save request.
type OrderRequest struct {
	Products []OrderItem `json:"products"`
}

// CatalogResponse is the products endpoint envelope.
type CatalogResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products,omitempty"`
}

// SaveResponse is the save endpoint envelope. Code is the server-issued
// confirmation identifier, present only on success.
type SaveResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
}
