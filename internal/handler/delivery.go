package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type FeeTable interface {
	Fee(g entities.Governorate) decimal.Decimal
	FeeFor(g entities.Governorate, subtotal decimal.Decimal) decimal.Decimal
	Default() decimal.Decimal
	FreeThreshold() decimal.Decimal
	Table() []checkout.GovernorateFee
}

type DeliveryHandler struct {
	fees FeeTable
}

func NewDeliveryHandler(fees FeeTable) *DeliveryHandler {
	return &DeliveryHandler{fees: fees}
}

func (h *DeliveryHandler) Init(r chi.Router) {
	r.Get("/api/v1/delivery-fees", h.ListFees)
	r.Get("/api/v1/delivery-fees/{governorate}", h.GetFee)
}

// ListFees returns the delivery fee table.
// @Summary      Delivery fees
// @Tags         delivery
// @Produce      json
// @Success      200  {object}  DeliveryFees
// @Router       /api/v1/delivery-fees [get]
func (h *DeliveryHandler) ListFees(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, feesToJSON(h.fees.Table(), h.fees.Default(), h.fees.FreeThreshold()), http.StatusOK)
}

// GetFee returns the fee for one governorate. Unknown governorates get the
// default fee.
// @Summary      Delivery fee for a governorate
// @Tags         delivery
// @Produce      json
// @Param        governorate  path      string  true   "Governorate"  Enums(capital, hawalli, farwaniya, mubarak_al_kabeer, ahmadi, jahra)
// @Param        subtotal     query     string  false  "Cart subtotal, KWD; applies the free delivery threshold"
// @Success      200  {object}  GovernorateFee
// @Failure      400  {object}  utils.ValidationErrorResponse "Invalid subtotal"
// @Router       /api/v1/delivery-fees/{governorate} [get]
func (h *DeliveryHandler) GetFee(w http.ResponseWriter, r *http.Request) {
	g := entities.Governorate(chi.URLParam(r, "governorate"))

	fee := h.fees.Fee(g)
	if raw := r.URL.Query().Get("subtotal"); raw != "" {
		subtotal, err := money.Parse(raw)
		if err != nil || subtotal.IsNegative() {
			utils.WriteFieldsError(w, "invalid subtotal", []string{"subtotal"})
			return
		}
		fee = h.fees.FeeFor(g, subtotal)
	}

	utils.WriteJSON(w, GovernorateFee{Governorate: string(g), Fee: money.Format(fee)}, http.StatusOK)
}
