package entities

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentKNET PaymentMethod = "knet"
	PaymentCard PaymentMethod = "card"
)

type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusPaid    OrderStatus = "paid"
	StatusFailed  OrderStatus = "failed"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusPending: {StatusPaid: true, StatusFailed: true},
	StatusPaid:    {},
	StatusFailed:  {},
}

func CanTransition(from, to OrderStatus) bool {
	return validNext[from][to]
}

func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusFailed
}

// OrderItem is a snapshot of a cart line taken at submission time.
type OrderItem struct {
	ProductID string
	Name      string
	SKU       string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Order struct {
	ID            string
	UserID        string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	PaymentMethod PaymentMethod
	Notes         string
	Status        OrderStatus
	TransactionID string

	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal

	ShippingAddress Address
	BillingAddress  *Address
	Items           []OrderItem

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	dec := gob.NewDecoder(bytes.NewBuffer(data))
	if err := dec.Decode(o); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(OrderItem{})
	gob.Register(Address{})
}
