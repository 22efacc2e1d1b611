package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/internal/handler"
	mocks "github.com/SergeyBogomolovv/knet-checkout/internal/handler/mocks"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "0b8e2b1c-4a4f-4bb4-9d59-7d0e0f3a1a11"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	validOrder := entities.Order{
		ID:          orderID,
		Status:      entities.StatusPending,
		Subtotal:    money.MustParse("399.5"),
		DeliveryFee: money.MustParse("2.5"),
		Total:       money.MustParse("402"),
		ShippingAddress: entities.Address{
			Governorate: entities.GovernorateHawalli,
			Area:        "Salmiya",
			Block:       "10",
			Street:      "Salem Al Mubarak",
			Building:    "5",
		},
		Items: []entities.OrderItem{
			{ProductID: "apple-iphone-15", Name: "iPhone 15", Quantity: 1, UnitPrice: money.MustParse("399.5"), LineTotal: money.MustParse("399.5")},
		},
	}

	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderGetter)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(validOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total_amount":"402.000"`,
		},
		{
			name:         "invalid id",
			orderID:      "123",
			mockBehavior: func(svc *mocks.MockOrderGetter) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"order_id"`,
		},
		{
			name:    "not found",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: orderID,
			mockBehavior: func(svc *mocks.MockOrderGetter) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, orderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderGetter(t)
			tc.mockBehavior(svc)

			h := handler.NewHTTPHandler(discardLogger(), svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)

			if tc.wantStatus == http.StatusOK {
				var resp handler.Order
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, orderID, resp.ID)
				assert.Equal(t, "399.500", resp.Subtotal)
				assert.Equal(t, "2.500", resp.DeliveryFee)
				assert.Equal(t, "KWD", resp.Currency)
				assert.Equal(t, "hawalli", resp.ShippingAddress.Governorate)
				require.Len(t, resp.Items, 1)
				assert.Equal(t, "399.500", resp.Items[0].LineTotal)
			}
		})
	}
}
