package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderGetter interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderGetter
}

func NewHTTPHandler(logger *slog.Logger, svc OrderGetter) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Get("/api/v1/orders/{order_id}", h.GetOrderByID)
}

// GetOrderByID returns a placed order.
// @Summary      Get order
// @Description  Returns a placed order with its items, addresses and payment status
// @Tags         orders
// @Produce      json
// @Param        order_id   path      string  true  "Order id (UUID)"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/v1/orders/{order_id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	status := http.StatusOK
	defer func() {
		orderRequestTotal.WithLabelValues(strconv.Itoa(status)).Inc()
		orderRequestDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.validate.Var(orderID, "required,uuid"); err != nil {
		status = http.StatusBadRequest
		utils.WriteFieldsError(w, "invalid order id", []string{"order_id"})
		return
	}

	order, err := h.svc.GetOrderByID(ctx, orderID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		status = http.StatusNotFound
		utils.WriteError(w, "order not found", status)
		return
	}

	if err != nil {
		status = http.StatusInternalServerError
		h.logger.ErrorContext(ctx, "failed to get order", slog.Any("error", err), slog.String("order_id", orderID))
		utils.WriteError(w, "internal server error", status)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), status)
}
