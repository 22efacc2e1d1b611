package repo

import (
	"database/sql"
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderToEntity(t *testing.T) {
	row := Order{
		ID:            "0b8e2b1c-4a4f-4bb4-9d59-7d0e0f3a1a11",
		CustomerName:  "Ali",
		PaymentMethod: "knet",
		Status:        "paid",
		TransactionID: sql.NullString{String: "TXN-1", Valid: true},
		Subtotal:      money.MustParse("399.500"),
		DeliveryFee:   money.MustParse("2.500"),
		TotalAmount:   money.MustParse("402.000"),
	}
	addresses := []Address{
		{Kind: "billing", Governorate: "capital", Area: "Sharq", Block: "1", Street: "Gulf", Building: "2"},
		{Kind: "shipping", Governorate: "hawalli", Area: "Salmiya", Block: "10", Street: "Salem", Building: "5",
			Floor: sql.NullString{String: "3", Valid: true}},
	}
	items := []Item{{LineNo: 1, ProductID: "apple-iphone-15", Name: "iPhone 15", Quantity: 1,
		UnitPrice: money.MustParse("399.500"), LineTotal: money.MustParse("399.500")}}

	order := OrderToEntity(row, addresses, items)

	assert.Equal(t, entities.StatusPaid, order.Status)
	assert.Equal(t, entities.PaymentKNET, order.PaymentMethod)
	assert.Equal(t, "TXN-1", order.TransactionID)
	assert.Empty(t, order.Notes)
	assert.Equal(t, entities.GovernorateHawalli, order.ShippingAddress.Governorate)
	assert.Equal(t, "3", order.ShippingAddress.Floor)
	require.NotNil(t, order.BillingAddress)
	assert.Equal(t, entities.GovernorateCapital, order.BillingAddress.Governorate)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "399.500", money.Format(order.Items[0].LineTotal))
}

func TestOrderToEntity_NoBilling(t *testing.T) {
	order := OrderToEntity(Order{ID: "x"}, []Address{{Kind: "shipping", Governorate: "ahmadi"}}, nil)
	assert.Nil(t, order.BillingAddress)
	assert.Nil(t, order.Items)
}

func TestPhoneFromEntity(t *testing.T) {
	price := money.MustParse("289.900")
	row := PhoneFromEntity(entities.Phone{
		ID:        "samsung-galaxy-s24",
		Name:      "Galaxy S24",
		Brand:     "Samsung",
		Price:     &price,
		Specs:     entities.PhoneSpecs{RAM: "8GB"},
		Features:  []string{"5G", "NFC"},
		Available: true,
	})

	assert.True(t, row.Price.Valid)
	assert.Equal(t, "289.900", money.Format(row.Price.Decimal))
	assert.Equal(t, sql.NullString{String: "8GB", Valid: true}, row.RAM)
	assert.False(t, row.Display.Valid)
	assert.False(t, row.ImageURL.Valid)
	assert.Equal(t, pq.StringArray{"5G", "NFC"}, row.Features)
	assert.Equal(t, pq.StringArray{}, row.Colors)
	assert.True(t, row.Available)

	row = PhoneFromEntity(entities.Phone{ID: "x", Name: "x", Brand: "y"})
	assert.False(t, row.Price.Valid)
}
