package checkout

import (
	"testing"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFeeResolver_Fee(t *testing.T) {
	r := NewFeeResolver(money.MustParse("3.000"), decimal.Zero)

	testCases := []struct {
		governorate entities.Governorate
		want        string
	}{
		{entities.GovernorateCapital, "2.000"},
		{entities.GovernorateHawalli, "2.500"},
		{entities.GovernorateFarwaniya, "2.500"},
		{entities.GovernorateMubarakAlKabeer, "3.000"},
		{entities.GovernorateAhmadi, "3.500"},
		{entities.GovernorateJahra, "3.500"},
		{"unknown", "3.000"},
		{"", "3.000"},
	}

	for _, tc := range testCases {
		t.Run(string(tc.governorate), func(t *testing.T) {
			first := r.Fee(tc.governorate)
			second := r.Fee(tc.governorate)
			assert.Equal(t, tc.want, money.Format(first))
			assert.True(t, first.Equal(second))
		})
	}
}

func TestFeeResolver_FreeThreshold(t *testing.T) {
	r := NewFeeResolver(money.MustParse("3.000"), money.MustParse("500.000"))

	assert.Equal(t, "2.500", money.Format(r.FeeFor(entities.GovernorateHawalli, money.MustParse("500.000"))))
	assert.Equal(t, "0.000", money.Format(r.FeeFor(entities.GovernorateHawalli, money.MustParse("500.001"))))

	disabled := NewFeeResolver(money.MustParse("3.000"), decimal.Zero)
	assert.Equal(t, "2.500", money.Format(disabled.FeeFor(entities.GovernorateHawalli, money.MustParse("9999"))))
}

func TestFeeResolver_Table(t *testing.T) {
	r := NewFeeResolver(money.MustParse("3.000"), decimal.Zero)
	table := r.Table()
	assert.Len(t, table, 6)
	assert.Equal(t, entities.GovernorateCapital, table[0].Governorate)
}
