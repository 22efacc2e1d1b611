package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/knet-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/knet-checkout/internal/service"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const checkoutBody = `{
	"idempotency_key": "5f0b6a52-7d7e-4c53-9a0b-3c1f6f1f9b10",
	"customer": {"name": "Ali", "email": "ali@example.com", "phone": "+96551234567"},
	"shipping_address": {"governorate": "hawalli", "area": "Salmiya", "block": "10", "street": "Salem Al Mubarak", "building": "5"},
	"payment_method": "knet",
	"items": [{"product_id": "apple-iphone-15", "name": "iPhone 15", "quantity": 1, "unit_price": "399.500"}]
}`

func serveCheckout(t *testing.T, svc *mocks.MockCheckoutService, req *http.Request) *httptest.ResponseRecorder {
	h := handler.NewCheckoutHandler(discardLogger(), svc)
	r := chi.NewRouter()
	h.Init(r)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestCheckoutHandler_Submit(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "placed",
			body: checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().
					Submit(mock.Anything, mock.MatchedBy(func(req service.CheckoutRequest) bool {
						return req.IdempotencyKey == "5f0b6a52-7d7e-4c53-9a0b-3c1f6f1f9b10" &&
							req.Draft.PaymentMethod == entities.PaymentKNET &&
							req.Draft.ShippingAddress.Governorate == entities.GovernorateHawalli &&
							len(req.Draft.Cart.Items) == 1 &&
							money.Format(req.Draft.Cart.Subtotal()) == "399.500"
					})).
					Return(service.CheckoutResult{
						OrderID:    orderID,
						Status:     entities.StatusPending,
						Total:      money.MustParse("402.000"),
						PaymentURL: "https://kpay.example.com/pay?orderId=" + orderID,
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total_amount":"402.000"`,
		},
		{
			name: "replayed",
			body: checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{OrderID: orderID, Total: money.MustParse("402"), Replayed: true}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"replayed":true`,
		},
		{
			name: "card not supported",
			body: checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, entities.ErrCardNotSupported).Once()
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   `"Credit card payments are not yet supported."`,
		},
		{
			name: "domain validation error",
			body: checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, entities.NewValidationError("Please complete all required address fields", "shipping.block")).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"shipping.block":"invalid"`,
		},
		{
			name: "in progress",
			body: checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, entities.ErrCheckoutInProgress).Once()
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "store failure is generic",
			body: checkoutBody,
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().Submit(mock.Anything, mock.Anything).
					Return(service.CheckoutResult{}, errors.New("pq: connection refused")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"We could not place your order. Please try again."`,
		},
		{
			name:         "malformed json",
			body:         `{"customer":`,
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "invalid idempotency key",
			body:         strings.Replace(checkoutBody, "5f0b6a52-7d7e-4c53-9a0b-3c1f6f1f9b10", "nope", 1),
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"IdempotencyKey":"uuid"`,
		},
		{
			name:         "invalid price",
			body:         strings.Replace(checkoutBody, `"399.500"`, `"399.5001"`, 1),
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"items[0].unit_price":"invalid"`,
		},
		{
			name:         "zero quantity",
			body:         strings.Replace(checkoutBody, `"quantity": 1`, `"quantity": 0`, 1),
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"Quantity":"gte"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckoutService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(tc.body))
			rr := serveCheckout(t, svc, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestCheckoutHandler_Submit_IdempotencyHeader(t *testing.T) {
	svc := mocks.NewMockCheckoutService(t)
	svc.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(req service.CheckoutRequest) bool {
			return req.IdempotencyKey == "6a1c2e7e-3b55-4d6c-8c1a-0d2b5a7f4e21"
		})).
		Return(service.CheckoutResult{OrderID: orderID, Total: money.MustParse("402")}, nil).Once()

	body := strings.Replace(checkoutBody, `"idempotency_key": "5f0b6a52-7d7e-4c53-9a0b-3c1f6f1f9b10",`, "", 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Idempotency-Key", "6a1c2e7e-3b55-4d6c-8c1a-0d2b5a7f4e21")

	rr := serveCheckout(t, svc, req)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestCheckoutHandler_Submit_KeepsVariantLines(t *testing.T) {
	svc := mocks.NewMockCheckoutService(t)
	svc.EXPECT().
		Submit(mock.Anything, mock.MatchedBy(func(req service.CheckoutRequest) bool {
			items := req.Draft.Cart.Items
			return len(items) == 2 &&
				items[0].SKU == "IP15-128" && items[0].Quantity == 1 &&
				items[1].SKU == "IP15-512" && items[1].Quantity == 1 &&
				money.Format(req.Draft.Cart.Subtotal()) == "698.000"
		})).
		Return(service.CheckoutResult{OrderID: orderID, Total: money.MustParse("700.500")}, nil).Once()

	body := strings.Replace(checkoutBody,
		`"items": [{"product_id": "apple-iphone-15", "name": "iPhone 15", "quantity": 1, "unit_price": "399.500"}]`,
		`"items": [
			{"product_id": "iphone-15", "name": "iPhone 15", "sku": "IP15-128", "quantity": 1, "unit_price": "299.000"},
			{"product_id": "iphone-15", "name": "iPhone 15", "sku": "IP15-512", "quantity": 1, "unit_price": "399.000"}
		]`, 1)
	rr := serveCheckout(t, svc, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(body)))

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total_amount":"700.500"`)
}

func TestCheckoutHandler_ValidateStep(t *testing.T) {
	testCases := []struct {
		name         string
		step         string
		mockBehavior func(svc *mocks.MockCheckoutService)
		wantStatus   int
		wantNext     string
	}{
		{
			name: "info passes",
			step: "info",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().ValidateStep(checkout.StepInfo, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantNext:   "address",
		},
		{
			name: "payment is last",
			step: "payment",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().ValidateStep(checkout.StepPayment, mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "address incomplete",
			step: "address",
			mockBehavior: func(svc *mocks.MockCheckoutService) {
				svc.EXPECT().ValidateStep(checkout.StepAddress, mock.Anything).
					Return(entities.NewValidationError("Please complete all required address fields", "shipping.street")).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:         "unknown step",
			step:         "review",
			mockBehavior: func(svc *mocks.MockCheckoutService) {},
			wantStatus:   http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockCheckoutService(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/steps/"+tc.step+"/validate", strings.NewReader(checkoutBody))
			rr := serveCheckout(t, svc, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantStatus == http.StatusOK {
				var resp handler.StepValidationResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Valid)
				assert.Equal(t, tc.wantNext, resp.NextStep)
			}
		})
	}
}
