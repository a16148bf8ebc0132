// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog product
type Product struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	SKU          string          `gorm:"uniqueIndex;not null;size:100" json:"sku"`
	Name         string          `gorm:"not null;size:255" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Category     string          `gorm:"not null;index;size:100" json:"category"`
	PriceExclVAT decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price_excl_vat"`
	Variants     string          `gorm:"size:255" json:"-"` // comma-separated variant options, e.g. toothbrush colors
	SortRank     int             `gorm:"default:0" json:"-"` // within-category display ordering
	IsActive     bool            `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
}

// Category represents a product category with its storefront description
type Category struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"uniqueIndex;not null;size:100" json:"name"`
	Description string         `gorm:"size:500" json:"description"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// VariantOptions returns the product's variant options, nil when it has none
func (p *Product) VariantOptions() []string {
	if p.Variants == "" {
		return nil
	}
	options := strings.Split(p.Variants, ",")
	for i := range options {
		options[i] = strings.TrimSpace(options[i])
	}
	return options
}

// HasVariant reports whether the given variant is valid for this product.
// Products without variants accept only the empty variant.
func (p *Product) HasVariant(variant string) bool {
	if variant == "" {
		return p.Variants == ""
	}
	for _, option := range p.VariantOptions() {
		if strings.EqualFold(option, variant) {
			return true
		}
	}
	return false
}
