// internal/domain/checkout/session.go
package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/order"
)

// CustomerSessions stores remembered customer details in Redis, keyed by
// session, with an independent lifecycle from the cart
type CustomerSessions struct {
	redisClient *redis.Client
	config      *config.Config
}

// NewCustomerSessions creates the Redis-backed customer memory
func NewCustomerSessions(redisClient *redis.Client, cfg *config.Config) *CustomerSessions {
	return &CustomerSessions{
		redisClient: redisClient,
		config:      cfg,
	}
}

// Remember persists customer details for checkout pre-fill
func (m *CustomerSessions) Remember(ctx context.Context, sessionID string, customer order.CustomerDetails) error {
	data, err := json.Marshal(customer)
	if err != nil {
		return fmt.Errorf("failed to encode customer details: %w", err)
	}
	return m.redisClient.Set(ctx, customerKey(sessionID), data, m.config.Session.CustomerTTL).Err()
}

// Forget removes any remembered customer details
func (m *CustomerSessions) Forget(ctx context.Context, sessionID string) error {
	return m.redisClient.Del(ctx, customerKey(sessionID)).Err()
}

// Recall returns the remembered customer, or nil when none is stored
func (m *CustomerSessions) Recall(ctx context.Context, sessionID string) (*order.CustomerDetails, error) {
	data, err := m.redisClient.Get(ctx, customerKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to recall customer details: %w", err)
	}

	var customer order.CustomerDetails
	if err := json.Unmarshal([]byte(data), &customer); err != nil {
		return nil, fmt.Errorf("failed to decode customer details: %w", err)
	}
	return &customer, nil
}

func customerKey(sessionID string) string {
	return fmt.Sprintf("customer:session:%s", sessionID)
}
