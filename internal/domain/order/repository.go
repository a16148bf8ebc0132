// internal/domain/order/repository.go
package order

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrOrderNotFound indicates no order matches the lookup
var ErrOrderNotFound = errors.New("order not found")

// Repository persists orders
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new order repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a new order with its items
func (r *Repository) Create(ctx context.Context, o *Order) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// OrderNumbers returns every persisted order number. The store has no atomic
// counter, so the sequencer scans this list for the current maximum.
func (r *Repository) OrderNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).Model(&Order{}).Pluck("order_number", &numbers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan order numbers: %w", err)
	}
	return numbers, nil
}

// ByNumber returns one order with its items
func (r *Repository) ByNumber(ctx context.Context, number string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).Preload("Items").Where("order_number = ?", number).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, number)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load order %q: %w", number, err)
	}
	return &o, nil
}

// ByNumberAndPhone returns one order matched on both the number and the
// customer phone, for self-service tracking lookups
func (r *Repository) ByNumberAndPhone(ctx context.Context, number, phone string) (*Order, error) {
	var o Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("order_number = ? AND customer_phone = ?", number, phone).
		First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, number)
	} else if err != nil {
		return nil, fmt.Errorf("failed to load order %q: %w", number, err)
	}
	return &o, nil
}

// List returns all orders, newest first
func (r *Repository) List(ctx context.Context) ([]Order, error) {
	var orders []Order
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}
