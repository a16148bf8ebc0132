package cart_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmo/storefront-backend/internal/domain/cart"
	"github.com/freshmo/storefront-backend/internal/domain/pricing"
)

var vat15 = decimal.NewFromFloat(0.15)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAdd_MergesSameSKUAndVariant(t *testing.T) {
	c := cart.New("sess-1")

	require.NoError(t, c.Add("sm-single", "Mouthwash Sachet", "", price("6.99"), 2, vat15))
	require.NoError(t, c.Add("sm-single", "Mouthwash Sachet", "", price("6.99"), 3, vat15))

	require.Len(t, c.Items, 1)
	item := c.Items[0]
	assert.Equal(t, 5, item.Quantity)
	// Totals come from unit amounts times 5, not from summing two rounded partials
	assert.Equal(t, "34.95", item.TotalExclVAT.StringFixed(2))
	assert.Equal(t, "5.25", item.TotalVATAmount.StringFixed(2))
	assert.Equal(t, "40.20", item.TotalInclVAT.StringFixed(2))
}

func TestAdd_DifferentVariantsAreDistinctLines(t *testing.T) {
	c := cart.New("sess-1")

	require.NoError(t, c.Add("toothbrush", "Biodegradable Toothbrush", "green", price("35.00"), 1, vat15))
	require.NoError(t, c.Add("toothbrush", "Biodegradable Toothbrush", "blue", price("35.00"), 1, vat15))

	require.Len(t, c.Items, 2)
	assert.Equal(t, "green", c.Items[0].Variant)
	assert.Equal(t, "blue", c.Items[1].Variant)
}

func TestAdd_RejectsInvalidPricing(t *testing.T) {
	c := cart.New("sess-1")

	err := c.Add("sm-single", "Mouthwash Sachet", "", price("-1.00"), 1, vat15)
	assert.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
	assert.True(t, c.IsEmpty())

	err = c.Add("sm-single", "Mouthwash Sachet", "", price("6.99"), 0, vat15)
	assert.ErrorIs(t, err, pricing.ErrInvalidPricingInput)
	assert.True(t, c.IsEmpty())
}

func TestUpdateQuantity(t *testing.T) {
	c := cart.New("sess-1")
	require.NoError(t, c.Add("sm-box", "Mouthwash Box of 30", "", price("150.00"), 1, vat15))

	c.UpdateQuantity("sm-box", "", 4)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 4, c.Items[0].Quantity)
	assert.Equal(t, "600.00", c.Items[0].TotalExclVAT.StringFixed(2))
	assert.Equal(t, "690.00", c.Items[0].TotalInclVAT.StringFixed(2))
}

func TestUpdateQuantity_NonPositiveRemovesLine(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		c := cart.New("sess-1")
		require.NoError(t, c.Add("sm-box", "Mouthwash Box of 30", "", price("150.00"), 2, vat15))

		c.UpdateQuantity("sm-box", "", quantity)
		assert.True(t, c.IsEmpty())
	}
}

func TestUpdateQuantity_MissingTargetIsNoOp(t *testing.T) {
	c := cart.New("sess-1")
	require.NoError(t, c.Add("sm-box", "Mouthwash Box of 30", "", price("150.00"), 2, vat15))

	c.UpdateQuantity("absent", "", 5)
	// Same sku with a different variant is not a match either
	c.UpdateQuantity("sm-box", "green", 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemove_IsIdempotent(t *testing.T) {
	c := cart.New("sess-1")
	require.NoError(t, c.Add("sm-box", "Mouthwash Box of 30", "", price("150.00"), 1, vat15))

	c.Remove("sm-box", "")
	c.Remove("sm-box", "")

	assert.True(t, c.IsEmpty())
}

func TestTotals_SumsLineFieldsWithoutReRounding(t *testing.T) {
	c := cart.New("sess-1")
	require.NoError(t, c.Add("sm-single", "Mouthwash Sachet", "", price("6.99"), 3, vat15))
	require.NoError(t, c.Add("toothbrush", "Biodegradable Toothbrush", "green", price("35.00"), 1, vat15))

	totals := c.Totals()
	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 4, totals.TotalQuantity)
	// 20.97 + 35.00
	assert.Equal(t, "55.97", totals.SubtotalExclVAT.StringFixed(2))
	// 3.15 + 5.25
	assert.Equal(t, "8.40", totals.TotalVATAmount.StringFixed(2))
	// 24.12 + 40.25
	assert.Equal(t, "64.37", totals.GrandTotalInclVAT.StringFixed(2))
}

func TestTotals_EmptyCartIsZero(t *testing.T) {
	totals := cart.New("sess-1").Totals()
	assert.True(t, totals.SubtotalExclVAT.IsZero())
	assert.True(t, totals.GrandTotalInclVAT.IsZero())
}
