package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

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

func TestPaymentHandler_HandleReturn(t *testing.T) {
	query := "?status=CAPTURED&transactionId=TXN-42&orderId=" + orderID + "&amount=402.000&merchantId=M-100&signature=abc"

	testCases := []struct {
		name          string
		mockBehavior  func(svc *mocks.MockPaymentService)
		wantStatus    int
		wantResult    string
		wantClearCart bool
	}{
		{
			name: "paid",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().
					HandleReturn(mock.Anything, entities.PaymentResponse{
						Status:        "CAPTURED",
						TransactionID: "TXN-42",
						OrderID:       orderID,
						Amount:        "402.000",
						MerchantID:    "M-100",
						Signature:     "abc",
					}).
					Return(service.PaymentOutcome{
						OrderID:       orderID,
						Result:        service.ResultPaid,
						Status:        entities.StatusPaid,
						TransactionID: "TXN-42",
						Total:         money.MustParse("402"),
						Message:       "Payment received. Thank you for your order!",
						ClearCart:     true,
					}, nil).Once()
			},
			wantStatus:    http.StatusOK,
			wantResult:    "paid",
			wantClearCart: true,
		},
		{
			name: "failed",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleReturn(mock.Anything, mock.Anything).
					Return(service.PaymentOutcome{OrderID: orderID, Result: service.ResultFailed, Status: entities.StatusFailed}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantResult: "failed",
		},
		{
			name: "unverified",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleReturn(mock.Anything, mock.Anything).
					Return(
						service.PaymentOutcome{OrderID: orderID, Result: service.ResultUnverified, Message: "We could not verify your payment."},
						fmt.Errorf("%w: %w", entities.ErrPaymentUnverified, entities.ErrInvalidSignature),
					).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantResult: "unverified",
		},
		{
			name: "unknown order",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleReturn(mock.Anything, mock.Anything).
					Return(service.PaymentOutcome{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "store error",
			mockBehavior: func(svc *mocks.MockPaymentService) {
				svc.EXPECT().HandleReturn(mock.Anything, mock.Anything).
					Return(service.PaymentOutcome{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockPaymentService(t)
			tc.mockBehavior(svc)

			h := handler.NewPaymentHandler(discardLogger(), svc)
			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/payments/knet/return"+query, nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			require.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantResult == "" {
				return
			}

			var resp handler.PaymentOutcome
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantResult, resp.Result)
			assert.Equal(t, tc.wantClearCart, resp.ClearCart)
			assert.Equal(t, orderID, resp.OrderID)
		})
	}
}
