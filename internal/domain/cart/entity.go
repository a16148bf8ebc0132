// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshmo/storefront-backend/internal/domain/pricing"
)

// LineItem represents one distinct (sku, variant) entry in a cart.
type LineItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Variant  string `json:"variant,omitempty"` // e.g. toothbrush color; empty means no variant
	Quantity int    `json:"quantity"`

	pricing.LineAmounts
}

// Matches reports whether the line is identified by the given sku and variant.
// Identity is the exact pair; the same sku with a different variant is a
// different line.
func (li LineItem) Matches(sku, variant string) bool {
	return li.SKU == sku && li.Variant == variant
}

// Cart is the session-scoped ordered collection of line items. All mutation
// goes through its methods; the service only loads and saves it.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Totals represents the aggregate amounts across all cart lines. Sums are
// presented as-is, without re-rounding.
type Totals struct {
	ItemCount         int             `json:"item_count"`
	TotalQuantity     int             `json:"total_quantity"`
	SubtotalExclVAT   decimal.Decimal `json:"subtotal_excl_vat"`
	TotalVATAmount    decimal.Decimal `json:"total_vat_amount"`
	GrandTotalInclVAT decimal.Decimal `json:"grand_total_incl_vat"`
}

// New creates an empty cart for a session
func New(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Add prices the item and appends it, or merges it into an existing line with
// the same sku and variant. On merge the quantity is incremented and all line
// totals are recomputed from the line's unit amounts.
func (c *Cart) Add(sku, name, variant string, unitPriceExclVAT decimal.Decimal, quantity int, vatRate decimal.Decimal) error {
	amounts, err := pricing.PriceLine(unitPriceExclVAT, quantity, vatRate)
	if err != nil {
		return err
	}

	for i := range c.Items {
		if c.Items[i].Matches(sku, variant) {
			c.Items[i].Quantity += quantity
			c.Items[i].LineAmounts = c.Items[i].LineAmounts.WithQuantity(c.Items[i].Quantity)
			c.touch()
			return nil
		}
	}

	c.Items = append(c.Items, LineItem{
		SKU:         sku,
		Name:        name,
		Variant:     variant,
		Quantity:    quantity,
		LineAmounts: amounts,
	})
	c.touch()
	return nil
}

// UpdateQuantity sets the quantity of the matching line, recomputing its
// totals from the unit amounts. A non-positive quantity removes the line.
// A missing target is a no-op. (Policy choice: updates against stale carts
// from a second tab should not surface as errors.)
func (c *Cart) UpdateQuantity(sku, variant string, quantity int) {
	if quantity <= 0 {
		c.Remove(sku, variant)
		return
	}
	for i := range c.Items {
		if c.Items[i].Matches(sku, variant) {
			c.Items[i].Quantity = quantity
			c.Items[i].LineAmounts = c.Items[i].LineAmounts.WithQuantity(quantity)
			c.touch()
			return
		}
	}
}

// Remove drops the matching line if present; idempotent.
func (c *Cart) Remove(sku, variant string) {
	for i := range c.Items {
		if c.Items[i].Matches(sku, variant) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.touch()
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals sums the line fields across all lines
func (c *Cart) Totals() Totals {
	totals := Totals{
		ItemCount:         len(c.Items),
		SubtotalExclVAT:   decimal.Zero,
		TotalVATAmount:    decimal.Zero,
		GrandTotalInclVAT: decimal.Zero,
	}
	for _, item := range c.Items {
		totals.TotalQuantity += item.Quantity
		totals.SubtotalExclVAT = totals.SubtotalExclVAT.Add(item.TotalExclVAT)
		totals.TotalVATAmount = totals.TotalVATAmount.Add(item.TotalVATAmount)
		totals.GrandTotalInclVAT = totals.GrandTotalInclVAT.Add(item.TotalInclVAT)
	}
	return totals
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
