package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart(t *testing.T) {
	var cart entities.Cart
	require.True(t, cart.Empty())

	cart.Add(entities.CartItem{ProductID: "p1", Quantity: 1, UnitPrice: money.MustParse("399.500")})
	cart.Add(entities.CartItem{ProductID: "p2", Quantity: 2, UnitPrice: money.MustParse("10.250")})
	cart.Add(entities.CartItem{ProductID: "p1", Quantity: 1, UnitPrice: money.MustParse("399.500")})
	cart.Add(entities.CartItem{ProductID: "p3", Quantity: 0, UnitPrice: money.MustParse("1")})

	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "819.500", money.Format(cart.Subtotal()))

	cart.Remove("p1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "20.500", money.Format(cart.Subtotal()))

	cart.Clear()
	assert.True(t, cart.Empty())
	assert.Equal(t, "0.000", money.Format(cart.Subtotal()))
}

func TestCanTransition(t *testing.T) {
	assert.True(t, entities.CanTransition(entities.StatusPending, entities.StatusPaid))
	assert.True(t, entities.CanTransition(entities.StatusPending, entities.StatusFailed))
	assert.False(t, entities.CanTransition(entities.StatusPaid, entities.StatusFailed))
	assert.False(t, entities.CanTransition(entities.StatusFailed, entities.StatusPaid))
	assert.False(t, entities.CanTransition(entities.StatusPaid, entities.StatusPending))
}

func TestOrderMarshal(t *testing.T) {
	order := entities.Order{
		ID:     "123",
		Status: entities.StatusPending,
		Total:  money.MustParse("402.000"),
		Items:  []entities.OrderItem{{ProductID: "p1", Quantity: 1, UnitPrice: money.MustParse("399.500")}},
	}

	data, err := order.Marshal()
	require.NoError(t, err)

	var got entities.Order
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, "402.000", money.Format(got.Total))
	assert.Equal(t, "p1", got.Items[0].ProductID)

	assert.ErrorIs(t, got.Unmarshal([]byte("broken")), entities.ErrInvalidOrder)
}

func TestCart_AddKeepsVariantsApart(t *testing.T) {
	testCases := []struct {
		name      string
		second    entities.CartItem
		wantLines int
		wantTotal string
	}{
		{
			name:      "same variant merges",
			second:    entities.CartItem{ProductID: "iphone-15", SKU: "IP15-128", Quantity: 1, UnitPrice: money.MustParse("299.000")},
			wantLines: 1,
			wantTotal: "598.000",
		},
		{
			name:      "other sku",
			second:    entities.CartItem{ProductID: "iphone-15", SKU: "IP15-512", Quantity: 1, UnitPrice: money.MustParse("399.000")},
			wantLines: 2,
			wantTotal: "698.000",
		},
		{
			name:      "same sku other price",
			second:    entities.CartItem{ProductID: "iphone-15", SKU: "IP15-128", Quantity: 2, UnitPrice: money.MustParse("279.000")},
			wantLines: 2,
			wantTotal: "857.000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var cart entities.Cart
			cart.Add(entities.CartItem{ProductID: "iphone-15", SKU: "IP15-128", Quantity: 1, UnitPrice: money.MustParse("299.000")})
			cart.Add(tc.second)

			require.Len(t, cart.Items, tc.wantLines)
			assert.Equal(t, tc.wantTotal, money.Format(cart.Subtotal()))
			assert.Equal(t, "IP15-128", cart.Items[0].SKU)
			assert.Equal(t, "299.000", money.Format(cart.Items[0].UnitPrice))
		})
	}
}
