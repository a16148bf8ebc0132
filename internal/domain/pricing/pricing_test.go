package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmo/storefront-backend/internal/domain/pricing"
)

var vat15 = decimal.NewFromFloat(0.15)

func TestPriceLine(t *testing.T) {
	amounts, err := pricing.PriceLine(decimal.NewFromFloat(9.00), 2, vat15)
	require.NoError(t, err)

	assert.Equal(t, "1.35", amounts.UnitVATAmount.StringFixed(2))
	assert.Equal(t, "10.35", amounts.UnitPriceInclVAT.StringFixed(2))
	assert.Equal(t, "18.00", amounts.TotalExclVAT.StringFixed(2))
	assert.Equal(t, "2.70", amounts.TotalVATAmount.StringFixed(2))
	assert.Equal(t, "20.70", amounts.TotalInclVAT.StringFixed(2))
}

func TestPriceLine_RoundsUnitVATBeforeLineMultiplication(t *testing.T) {
	// 6.99 * 0.15 = 1.0485 -> unit VAT 1.05, not derived from the line subtotal
	amounts, err := pricing.PriceLine(decimal.NewFromFloat(6.99), 3, vat15)
	require.NoError(t, err)

	assert.Equal(t, "1.05", amounts.UnitVATAmount.StringFixed(2))
	assert.Equal(t, "8.04", amounts.UnitPriceInclVAT.StringFixed(2))
	assert.Equal(t, "24.12", amounts.TotalInclVAT.StringFixed(2))

	// Taxing the line subtotal would give 20.97*1.15 = 24.1155 -> 24.12 here,
	// but the invariant is the unit-first order, checked explicitly:
	unitVAT := decimal.NewFromFloat(6.99).Mul(vat15).Round(2)
	unitIncl := decimal.NewFromFloat(6.99).Add(unitVAT).Round(2)
	want := unitIncl.Mul(decimal.NewFromInt(3)).Round(2)
	assert.True(t, amounts.TotalInclVAT.Equal(want))
}

func TestPriceLine_ZeroRate(t *testing.T) {
	amounts, err := pricing.PriceLine(decimal.NewFromFloat(35.00), 1, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, amounts.UnitVATAmount.IsZero())
	assert.Equal(t, "35.00", amounts.TotalInclVAT.StringFixed(2))
}

func TestPriceLine_InvalidInputs(t *testing.T) {
	cases := []struct {
		name     string
		price    decimal.Decimal
		quantity int
		rate     decimal.Decimal
	}{
		{"negative price", decimal.NewFromFloat(-1.00), 1, vat15},
		{"zero quantity", decimal.NewFromFloat(9.00), 0, vat15},
		{"negative quantity", decimal.NewFromFloat(9.00), -2, vat15},
		{"negative rate", decimal.NewFromFloat(9.00), 1, decimal.NewFromFloat(-0.1)},
		{"rate above one", decimal.NewFromFloat(9.00), 1, decimal.NewFromFloat(1.5)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.PriceLine(tc.price, tc.quantity, tc.rate)
			assert.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
		})
	}
}

func TestWithQuantity_RecomputesFromUnitAmounts(t *testing.T) {
	amounts, err := pricing.PriceLine(decimal.NewFromFloat(6.99), 1, vat15)
	require.NoError(t, err)

	updated := amounts.WithQuantity(7)
	assert.Equal(t, "48.93", updated.TotalExclVAT.StringFixed(2))
	assert.Equal(t, "7.35", updated.TotalVATAmount.StringFixed(2))
	assert.Equal(t, "56.28", updated.TotalInclVAT.StringFixed(2))
	// Unit amounts untouched
	assert.Equal(t, "8.04", updated.UnitPriceInclVAT.StringFixed(2))
}
