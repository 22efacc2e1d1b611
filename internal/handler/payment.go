package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/knet"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type PaymentService interface {
	HandleReturn(ctx context.Context, resp entities.PaymentResponse) (service.PaymentOutcome, error)
}

type PaymentHandler struct {
	logger *slog.Logger
	svc    PaymentService
}

func NewPaymentHandler(logger *slog.Logger, svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		logger: logger.With(slog.String("handler", "payment")),
		svc:    svc,
	}
}

func (h *PaymentHandler) Init(r chi.Router) {
	r.Get("/api/v1/payments/knet/return", h.HandleReturn)
}

// HandleReturn settles an order from the KNET return parameters.
// @Summary      KNET return
// @Description  Verifies the signed parameters KNET appends when returning the shopper and settles the order. clear_cart is true only for paid orders.
// @Tags         payments
// @Produce      json
// @Param        status         query     string  true  "Gateway status, e.g. CAPTURED"
// @Param        transactionId  query     string  true  "Gateway transaction id"
// @Param        orderId        query     string  true  "Order id"
// @Param        amount         query     string  true  "Charged amount, KWD"
// @Param        merchantId     query     string  true  "Merchant id"
// @Param        signature      query     string  true  "HMAC-SHA256 signature"
// @Success      200  {object}  PaymentOutcome
// @Failure      400  {object}  PaymentOutcome "Response could not be verified"
// @Failure      404  {object}  utils.ErrorResponse "Order not found"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/v1/payments/knet/return [get]
func (h *PaymentHandler) HandleReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := knet.ParseResponse(r.URL.Query())

	outcome, err := h.svc.HandleReturn(ctx, resp)
	switch {
	case errors.Is(err, entities.ErrPaymentUnverified):
		paymentReturnsTotal.WithLabelValues(string(service.ResultUnverified)).Inc()
		utils.WriteJSON(w, PaymentOutcomeToJSON(outcome), http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to handle payment return", slog.String("order_id", resp.OrderID), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	paymentReturnsTotal.WithLabelValues(string(outcome.Result)).Inc()
	utils.WriteJSON(w, PaymentOutcomeToJSON(outcome), http.StatusOK)
}
