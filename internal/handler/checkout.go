package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const idempotencyHeader = "Idempotency-Key"

type CheckoutService interface {
	ValidateStep(step checkout.Step, d checkout.Draft) error
	Submit(ctx context.Context, req service.CheckoutRequest) (service.CheckoutResult, error)
}

type CheckoutHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      CheckoutService
}

func NewCheckoutHandler(logger *slog.Logger, svc CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		logger:   logger.With(slog.String("handler", "checkout")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *CheckoutHandler) Init(r chi.Router) {
	r.Post("/api/v1/checkout", h.Submit)
	r.Post("/api/v1/checkout/steps/{step}/validate", h.ValidateStep)
}

// Submit places the order and returns the KNET payment page URL.
// @Summary      Place order
// @Description  Validates the wizard state, stores a pending order and returns the KNET payment URL the browser must be redirected to. Repeating a request with the same idempotency key returns the first result.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string           false  "Client generated UUID, alternative to idempotency_key"
// @Param        request          body      CheckoutRequest  true   "Checkout wizard state"
// @Success      201  {object}  CheckoutResponse
// @Success      200  {object}  CheckoutResponse "Replayed submission"
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      409  {object}  utils.ErrorResponse "Submission with this key in progress"
// @Failure      422  {object}  utils.ErrorResponse "Payment method not supported"
// @Failure      500  {object}  utils.ErrorResponse "Internal server error"
// @Router       /api/v1/checkout [post]
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body CheckoutRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if body.IdempotencyKey == "" {
		body.IdempotencyKey = r.Header.Get(idempotencyHeader)
	}
	if err := h.validate.Struct(body); err != nil {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteValidationError(w, err)
		return
	}

	draft, invalid := CheckoutJSONToDraft(body)
	if len(invalid) > 0 {
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteFieldsError(w, "Invalid item price", invalid)
		return
	}

	res, err := h.svc.Submit(ctx, service.CheckoutRequest{
		IdempotencyKey: body.IdempotencyKey,
		Draft:          draft,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	status := http.StatusCreated
	if res.Replayed {
		status = http.StatusOK
		checkoutsTotal.WithLabelValues("replayed").Inc()
	} else {
		checkoutsTotal.WithLabelValues("placed").Inc()
	}
	utils.WriteJSON(w, CheckoutResultToJSON(res), status)
}

// ValidateStep runs the guard of a wizard step.
// @Summary      Validate wizard step
// @Description  Runs the guard that must pass before the wizard may leave the given step
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        step     path      string           true  "Wizard step"  Enums(info, address, payment)
// @Param        request  body      CheckoutRequest  true  "Checkout wizard state"
// @Success      200  {object}  StepValidationResponse
// @Failure      400  {object}  utils.ValidationErrorResponse "Validation error"
// @Failure      404  {object}  utils.ErrorResponse "Unknown step"
// @Router       /api/v1/checkout/steps/{step}/validate [post]
func (h *CheckoutHandler) ValidateStep(w http.ResponseWriter, r *http.Request) {
	step, err := checkout.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusNotFound)
		return
	}

	var body CheckoutRequest
	if err := utils.DecodeBody(r, &body); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	draft, _ := CheckoutJSONToDraft(body)

	if err := h.svc.ValidateStep(step, draft); err != nil {
		var verr *entities.ValidationError
		if errors.As(err, &verr) {
			utils.WriteFieldsError(w, verr.Message, verr.Fields)
			return
		}
		h.logger.ErrorContext(r.Context(), "failed to validate step", slog.String("step", string(step)), slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	res := StepValidationResponse{Step: string(step), Valid: true}
	if next, ok := nextStep(step); ok {
		res.NextStep = string(next)
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *CheckoutHandler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		checkoutsTotal.WithLabelValues("invalid").Inc()
		utils.WriteFieldsError(w, verr.Message, verr.Fields)
	case errors.Is(err, entities.ErrCardNotSupported):
		checkoutsTotal.WithLabelValues("unsupported").Inc()
		utils.WriteError(w, entities.ErrCardNotSupported.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrCheckoutInProgress):
		checkoutsTotal.WithLabelValues("conflict").Inc()
		utils.WriteError(w, "Your order is already being placed. Please wait.", http.StatusConflict)
	default:
		checkoutsTotal.WithLabelValues("error").Inc()
		h.logger.ErrorContext(ctx, "checkout failed", slog.Any("error", err))
		utils.WriteError(w, "We could not place your order. Please try again.", http.StatusInternalServerError)
	}
}

func nextStep(step checkout.Step) (checkout.Step, bool) {
	switch step {
	case checkout.StepInfo:
		return checkout.StepAddress, true
	case checkout.StepAddress:
		return checkout.StepPayment, true
	}
	return "", false
}

func fieldIndex(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}
