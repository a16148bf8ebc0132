// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status represents the order status
type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
)

// DeliveryType represents how the customer receives the order
type DeliveryType string

const (
	DeliveryTypeDelivery   DeliveryType = "Delivery"
	DeliveryTypeCollection DeliveryType = "Collection"
)

// CustomerDetails holds the customer information captured at checkout.
// Also persisted to the session as the "remembered customer" for pre-fill.
type CustomerDetails struct {
	Name         string       `gorm:"size:255" json:"name" binding:"required"`
	Phone        string       `gorm:"size:20" json:"phone" binding:"required"`
	DeliveryType DeliveryType `gorm:"size:20" json:"delivery_type" binding:"required,oneof=Delivery Collection"`
	Address      string       `gorm:"size:500" json:"address,omitempty"`
}

// Order represents a placed order. Created once at checkout completion and
// immutable thereafter; there is no update path.
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"uniqueIndex;not null;size:20" json:"order_number"`

	Customer CustomerDetails `gorm:"embedded;embeddedPrefix:customer_" json:"customer"`
	Items    []Item          `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`

	SubtotalExclVAT   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"subtotal_excl_vat"`
	TotalVATAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_vat_amount"`
	DeliveryCharge    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"delivery_charge"`
	GrandTotalInclVAT decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"grand_total_incl_vat"`

	PaymentMethod string `gorm:"size:50" json:"payment_method"`
	Note          string `gorm:"type:text" json:"note,omitempty"`

	Status    Status         `gorm:"not null;default:'Pending';size:20" json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Item represents one line of a placed order, frozen at checkout time
type Item struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	OrderID uint   `gorm:"not null;index" json:"-"`
	SKU     string `gorm:"not null;size:100" json:"sku"`
	Name    string `gorm:"not null;size:255" json:"name"`
	Variant string `gorm:"size:100" json:"variant,omitempty"`

	Quantity         int             `gorm:"not null" json:"quantity"`
	UnitPriceExclVAT decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price_excl_vat"`
	UnitVATAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_vat_amount"`
	UnitPriceInclVAT decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price_incl_vat"`
	TotalExclVAT     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_excl_vat"`
	TotalVATAmount   decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_vat_amount"`
	TotalInclVAT     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"total_incl_vat"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }

// DisplayName returns the item name annotated with its variant
func (i Item) DisplayName() string {
	if i.Variant == "" {
		return i.Name
	}
	return i.Name + " (" + i.Variant + ")"
}
