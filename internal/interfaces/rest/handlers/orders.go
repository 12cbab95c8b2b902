package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/kristjanluik/ordertrack/internal/application"
	"github.com/kristjanluik/ordertrack/internal/application/services"
	"github.com/kristjanluik/ordertrack/internal/interfaces/rest"
)

type Handlers struct {
	orderService *services.OrderService
	logger       *slog.Logger
}

func NewHandlers(orderService *services.OrderService, logger *slog.Logger) *Handlers {
	return &Handlers{
		orderService: orderService,
		logger:       logger,
	}
}

// CreateOrder handles POST /api/orders.
func (h *Handlers) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req rest.CreateOrderRequest

	decoder := json.NewDecoder(r.Body)
	// Unknown fields are rejected at the boundary rather than passed
	// through silently.
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		rest.WriteError(w, &application.ServiceError{
			Code:       application.ErrCodeValidationFailed,
			Message:    "request body is not a valid order payload",
			HTTPStatus: http.StatusBadRequest,
			Err:        err,
		}, h.logger)
		return
	}

	order, err := h.orderService.Create(r.Context(), req.ToCandidate())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusCreated, rest.ToOrderResponse(order))
}

// ListOrders handles GET /api/orders.
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.List(r.Context())
	if err != nil {
		rest.WriteError(w, err, h.logger)
		return
	}

	rest.WriteJSON(w, http.StatusOK, rest.ToOrderResponses(orders))
}
