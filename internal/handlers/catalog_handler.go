package handlers

import (
	"log/slog"
	"net/http"

	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/internal/service"
)

// CatalogHandler serves the product catalog.
type CatalogHandler struct {
	service *service.ProductService
	log     *slog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service *service.ProductService, log *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /products.php.
// The endpoint always answers 200 with a success envelope, matching the
// remote API contract the widget was written against.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.log.Error("failed to list products", "error", err)
		writeJSON(w, http.StatusOK, models.CatalogResponse{Success: false}, h.log)
		return
	}

	writeJSON(w, http.StatusOK, models.CatalogResponse{Success: true, Products: products}, h.log)
}
