// Package money holds helpers for Kuwaiti Dinar amounts. One dinar is 1000 fils,
// so every amount carries exactly three decimal digits.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	Scale int32 = 3

	// ISO 4217 numeric code expected by KNET.
	CurrencyCode = "414"
	Currency     = "KWD"
)

// Round rounds d to whole fils.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Format renders d with exactly three decimals, e.g. 402.000.
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}

// Parse reads a KWD amount. Amounts with sub-fils precision are rejected.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !d.Equal(Round(d)) {
		return decimal.Decimal{}, fmt.Errorf("invalid amount %q: more than %d decimals", s, Scale)
	}
	return Round(d), nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func Mul(price decimal.Decimal, qty int) decimal.Decimal {
	return Round(price.Mul(decimal.NewFromInt(int64(qty))))
}
