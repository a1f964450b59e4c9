package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/orderpad/orderpad/internal/models"
	"github.com/orderpad/orderpad/internal/service"
)

// SaveHandler accepts order submissions.
type SaveHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewSaveHandler creates a new save handler.
func NewSaveHandler(orderService *service.OrderService, log *slog.Logger) *SaveHandler {
	return &SaveHandler{
		orderService: orderService,
		log:          log,
	}
}

// Save handles POST /save.php.
// Failures are reported inside the envelope as success:false, not as HTTP
// errors — the widget only inspects the success flag.
func (h *SaveHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error("failed to decode save request", "error", err)
		writeJSON(w, http.StatusOK, models.SaveResponse{Success: false}, h.log)
		return
	}

	code, err := h.orderService.SaveOrder(r.Context(), req)
	if err != nil {
		h.log.Error("failed to save order", "error", err)
		writeJSON(w, http.StatusOK, models.SaveResponse{Success: false}, h.log)
		return
	}

	h.log.Info("order saved", "code", code, "items_count", len(req.Products))
	writeJSON(w, http.StatusOK, models.SaveResponse{Success: true, Code: code}, h.log)
}
