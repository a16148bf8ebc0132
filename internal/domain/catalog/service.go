// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/pricing"
)

// ErrProductNotFound indicates the sku has no active product
var ErrProductNotFound = errors.New("product not found")

// Service handles catalog queries
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductView is a product with its VAT-inclusive display price
type ProductView struct {
	Product
	VATAmount    decimal.Decimal `json:"vat_amount"`
	PriceInclVAT decimal.Decimal `json:"price_incl_vat"`
	Options      []string        `json:"variants,omitempty"`
}

// List returns all active products with display prices
func (s *Service) List(ctx context.Context) ([]ProductView, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category").Order("sort_rank").Order("name").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return s.withDisplayPrices(products)
}

// ByCategory returns active products in one category, ordered by the
// category's fixed rank first and name second
func (s *Service) ByCategory(ctx context.Context, category string) ([]ProductView, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Where("is_active = ? AND category = ?", true, category).
		Order("sort_rank").Order("name").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list category %q: %w", category, err)
	}
	return s.withDisplayPrices(products)
}

// Categories returns all categories in display order
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.db.WithContext(ctx).Order("sort_order").Order("name").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// BySKU returns one active product
func (s *Service) BySKU(ctx context.Context, sku string) (*Product, error) {
	var product Product
	err := s.db.WithContext(ctx).Where("sku = ? AND is_active = ?", sku, true).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, sku)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load product %q: %w", sku, err)
	}
	return &product, nil
}

func (s *Service) withDisplayPrices(products []Product) ([]ProductView, error) {
	vatRate := decimal.NewFromFloat(s.config.Tax.VATRate)
	views := make([]ProductView, len(products))
	for i, p := range products {
		amounts, err := pricing.PriceLine(p.PriceExclVAT, 1, vatRate)
		if err != nil {
			return nil, fmt.Errorf("product %q has an unpriceable amount: %w", p.SKU, err)
		}
		views[i] = ProductView{
			Product:      p,
			VATAmount:    amounts.UnitVATAmount,
			PriceInclVAT: amounts.UnitPriceInclVAT,
			Options:      p.VariantOptions(),
		}
	}
	return views, nil
}
