package checkout

import (
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
)

var defaultFees = map[entities.Governorate]decimal.Decimal{
	entities.GovernorateCapital:         money.MustParse("2.000"),
	entities.GovernorateHawalli:         money.MustParse("2.500"),
	entities.GovernorateFarwaniya:       money.MustParse("2.500"),
	entities.GovernorateMubarakAlKabeer: money.MustParse("3.000"),
	entities.GovernorateAhmadi:          money.MustParse("3.500"),
	entities.GovernorateJahra:           money.MustParse("3.500"),
}

// FeeResolver is a static governorate fee table. A zero FreeThreshold
// disables free shipping.
type FeeResolver struct {
	fees          map[entities.Governorate]decimal.Decimal
	defaultFee    decimal.Decimal
	freeThreshold decimal.Decimal
}

func NewFeeResolver(defaultFee, freeThreshold decimal.Decimal) *FeeResolver {
	return &FeeResolver{
		fees:          defaultFees,
		defaultFee:    money.Round(defaultFee),
		freeThreshold: money.Round(freeThreshold),
	}
}

// Fee returns the flat delivery fee for a governorate, ignoring thresholds.
func (r *FeeResolver) Fee(g entities.Governorate) decimal.Decimal {
	if fee, ok := r.fees[g]; ok {
		return fee
	}
	return r.defaultFee
}

// FeeFor applies the free-shipping threshold to the governorate fee.
func (r *FeeResolver) FeeFor(g entities.Governorate, subtotal decimal.Decimal) decimal.Decimal {
	if r.freeThreshold.IsPositive() && subtotal.GreaterThan(r.freeThreshold) {
		return decimal.Zero
	}
	return r.Fee(g)
}

func (r *FeeResolver) Default() decimal.Decimal {
	return r.defaultFee
}

func (r *FeeResolver) FreeThreshold() decimal.Decimal {
	return r.freeThreshold
}

// Table lists the fee of every known governorate in declaration order.
func (r *FeeResolver) Table() []GovernorateFee {
	out := make([]GovernorateFee, 0, len(entities.Governorates))
	for _, g := range entities.Governorates {
		out = append(out, GovernorateFee{Governorate: g, Fee: r.Fee(g)})
	}
	return out
}

type GovernorateFee struct {
	Governorate entities.Governorate
	Fee         decimal.Decimal
}
