package entities

import "github.com/shopspring/decimal"

type PaymentRequest struct {
	OrderID       string
	Amount        decimal.Decimal
	CustomerEmail string
	CustomerPhone string
	Description   string
}

// PaymentResponse holds the query parameters the gateway appends when it
// sends the browser back to the store.
type PaymentResponse struct {
	Status        string
	TransactionID string
	OrderID       string
	Amount        string
	MerchantID    string
	Signature     string
}

type OrderEventType string

const (
	EventOrderCreated OrderEventType = "order.created"
	EventOrderPaid    OrderEventType = "order.paid"
	EventOrderFailed  OrderEventType = "order.failed"
)

type OrderEvent struct {
	Type          OrderEventType
	OrderID       string
	Status        OrderStatus
	Total         decimal.Decimal
	TransactionID string
}
