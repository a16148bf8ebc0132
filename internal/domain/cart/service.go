// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/freshmo/storefront-backend/internal/config"
)

// Service persists session carts in Redis and applies cart mutations
type Service struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service
func NewService(redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		redisClient: redisClient,
		config:      cfg,
	}
}

// Get retrieves the session cart, returning an empty cart if none exists yet
func (s *Service) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart access")
	}

	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return New(sessionID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return &c, nil
}

// Add prices and adds an item to the session cart, merging lines with the
// same sku and variant
func (s *Service) Add(ctx context.Context, sessionID, sku, name, variant string, unitPriceExclVAT decimal.Decimal, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	vatRate := decimal.NewFromFloat(s.config.Tax.VATRate)
	if err := c.Add(sku, name, variant, unitPriceExclVAT, quantity, vatRate); err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity sets the quantity of a cart line; non-positive removes it
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, sku, variant string, quantity int) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.UpdateQuantity(sku, variant, quantity)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove drops a cart line if present
func (s *Service) Remove(ctx context.Context, sessionID, sku, variant string) (*Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.Remove(sku, variant)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear deletes the session cart
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required for cart access")
	}
	return s.redisClient.Del(ctx, cartKey(sessionID)).Err()
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	return s.redisClient.Set(ctx, cartKey(c.SessionID), data, s.config.Session.CartTTL).Err()
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
