// internal/domain/pricing/pricing.go
package pricing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidPricingInput indicates a price, quantity or rate outside the valid range
var ErrInvalidPricingInput = errors.New("invalid pricing input")

var one = decimal.NewFromInt(1)

// LineAmounts holds the per-unit and per-line monetary amounts of a cart line.
// Each field is rounded half-up to 2 decimal places independently; line totals
// are always unit amount times quantity, never a running sum of rounded partials.
type LineAmounts struct {
	UnitPriceExclVAT decimal.Decimal `json:"unit_price_excl_vat"`
	UnitVATAmount    decimal.Decimal `json:"unit_vat_amount"`
	UnitPriceInclVAT decimal.Decimal `json:"unit_price_incl_vat"`
	TotalExclVAT     decimal.Decimal `json:"total_excl_vat"`
	TotalVATAmount   decimal.Decimal `json:"total_vat_amount"`
	TotalInclVAT     decimal.Decimal `json:"total_incl_vat"`
}

// PriceLine computes VAT-aware amounts for one cart line.
//
// The unit VAT amount is rounded before any line multiplication, so
// TotalInclVAT == round(round(price + round(price*rate)) * quantity). This
// matches the till-slip behavior the storefront has always shown and is not
// the same as taxing the line subtotal.
func PriceLine(unitPriceExclVAT decimal.Decimal, quantity int, vatRate decimal.Decimal) (LineAmounts, error) {
	if unitPriceExclVAT.IsNegative() {
		return LineAmounts{}, fmt.Errorf("%w: unit price %s is negative", ErrInvalidPricingInput, unitPriceExclVAT)
	}
	if quantity < 1 {
		return LineAmounts{}, fmt.Errorf("%w: quantity %d must be at least 1", ErrInvalidPricingInput, quantity)
	}
	if vatRate.IsNegative() || vatRate.GreaterThan(one) {
		return LineAmounts{}, fmt.Errorf("%w: vat rate %s outside [0,1]", ErrInvalidPricingInput, vatRate)
	}

	unitVAT := unitPriceExclVAT.Mul(vatRate).Round(2)
	unitIncl := unitPriceExclVAT.Add(unitVAT).Round(2)

	amounts := LineAmounts{
		UnitPriceExclVAT: unitPriceExclVAT.Round(2),
		UnitVATAmount:    unitVAT,
		UnitPriceInclVAT: unitIncl,
	}
	return amounts.WithQuantity(quantity), nil
}

// WithQuantity recomputes the line totals from the unit amounts. Used when a
// cart line's quantity changes so rounded partial sums never accumulate.
func (a LineAmounts) WithQuantity(quantity int) LineAmounts {
	q := decimal.NewFromInt(int64(quantity))
	a.TotalExclVAT = a.UnitPriceExclVAT.Mul(q).Round(2)
	a.TotalVATAmount = a.UnitVATAmount.Mul(q).Round(2)
	a.TotalInclVAT = a.UnitPriceInclVAT.Mul(q).Round(2)
	return a
}
