package knet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
)

var paidStatuses = map[string]bool{
	"CAPTURED": true,
	"SUCCESS":  true,
}

type Verification struct {
	OrderID       string
	TransactionID string
	Amount        decimal.Decimal
	Status        string
	Paid          bool
}

type Verifier struct {
	merchantID string
	secret     []byte
}

func NewVerifier(merchantID, secret string) *Verifier {
	return &Verifier{merchantID: merchantID, secret: []byte(secret)}
}

// Verify authenticates a gateway return. Any missing field fails
// verification; a verified response may still carry a failed status.
func (v *Verifier) Verify(resp entities.PaymentResponse) (Verification, error) {
	values := responseValues(resp)
	for _, key := range []string{paramStatus, paramTransactionID, paramOrderID, paramAmount, paramMerchantID, paramSignature} {
		if strings.TrimSpace(values.Get(key)) == "" {
			return Verification{}, fmt.Errorf("%w: %s", entities.ErrMissingPaymentField, key)
		}
	}

	if resp.MerchantID != v.merchantID {
		return Verification{}, entities.ErrMerchantMismatch
	}

	amount, err := money.Parse(resp.Amount)
	if err != nil || !amount.IsPositive() {
		return Verification{}, fmt.Errorf("%w: %s", entities.ErrInvalidAmount, resp.Amount)
	}

	if !validSignature(v.secret, values, resp.Signature) {
		return Verification{}, entities.ErrInvalidSignature
	}

	return Verification{
		OrderID:       resp.OrderID,
		TransactionID: resp.TransactionID,
		Amount:        amount,
		Status:        resp.Status,
		Paid:          paidStatuses[strings.ToUpper(resp.Status)],
	}, nil
}

// SignResponse returns resp with a signature computed the way the gateway
// does. It backs the sandbox simulator and tests.
func SignResponse(secret string, resp entities.PaymentResponse) entities.PaymentResponse {
	resp.Signature = sign([]byte(secret), responseValues(resp))
	return resp
}

// ParseResponse reads the return query string.
func ParseResponse(q url.Values) entities.PaymentResponse {
	return entities.PaymentResponse{
		Status:        q.Get(paramStatus),
		TransactionID: q.Get(paramTransactionID),
		OrderID:       q.Get(paramOrderID),
		Amount:        q.Get(paramAmount),
		MerchantID:    q.Get(paramMerchantID),
		Signature:     q.Get(paramSignature),
	}
}

func responseValues(resp entities.PaymentResponse) url.Values {
	values := url.Values{}
	values.Set(paramStatus, resp.Status)
	values.Set(paramTransactionID, resp.TransactionID)
	values.Set(paramOrderID, resp.OrderID)
	values.Set(paramAmount, resp.Amount)
	values.Set(paramMerchantID, resp.MerchantID)
	values.Set(paramSignature, resp.Signature)
	return values
}
