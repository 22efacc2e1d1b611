// Package knet builds redirect URLs to the KNET hosted payment page and
// verifies the parameters the gateway returns with the shopper.
package knet

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
)

const (
	paramMerchantID    = "merchantId"
	paramOrderID       = "orderId"
	paramAmount        = "amount"
	paramCurrency      = "currency"
	paramDescription   = "description"
	paramEmail         = "email"
	paramPhone         = "phone"
	paramResponseURL   = "responseUrl"
	paramErrorURL      = "errorUrl"
	paramLang          = "lang"
	paramStatus        = "status"
	paramTransactionID = "transactionId"
	paramSignature     = "signature"
)

type Config struct {
	GatewayURL  string
	MerchantID  string
	Secret      string
	ResponseURL string
	ErrorURL    string
	Lang        string
}

type URLBuilder struct {
	cfg     Config
	gateway *url.URL
}

func NewURLBuilder(cfg Config) (*URLBuilder, error) {
	u, err := url.Parse(cfg.GatewayURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gateway url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid gateway url %q: must be absolute", cfg.GatewayURL)
	}
	if cfg.Lang == "" {
		cfg.Lang = "EN"
	}
	return &URLBuilder{cfg: cfg, gateway: u}, nil
}

// Build returns the hosted payment page URL for req. Identical requests
// always produce identical URLs.
func (b *URLBuilder) Build(req entities.PaymentRequest) (string, error) {
	if !req.Amount.IsPositive() {
		return "", entities.ErrInvalidAmount
	}
	if strings.TrimSpace(req.OrderID) == "" {
		return "", entities.ErrEmptyOrderID
	}

	values := url.Values{}
	values.Set(paramMerchantID, b.cfg.MerchantID)
	values.Set(paramOrderID, req.OrderID)
	values.Set(paramAmount, money.Format(req.Amount))
	values.Set(paramCurrency, money.CurrencyCode)
	values.Set(paramDescription, req.Description)
	values.Set(paramLang, b.cfg.Lang)
	if req.CustomerEmail != "" {
		values.Set(paramEmail, req.CustomerEmail)
	}
	if req.CustomerPhone != "" {
		values.Set(paramPhone, req.CustomerPhone)
	}
	if b.cfg.ResponseURL != "" {
		values.Set(paramResponseURL, b.cfg.ResponseURL)
	}
	if b.cfg.ErrorURL != "" {
		values.Set(paramErrorURL, b.cfg.ErrorURL)
	}
	values.Set(paramSignature, sign([]byte(b.cfg.Secret), values))

	u := *b.gateway
	u.RawQuery = values.Encode()
	return u.String(), nil
}
