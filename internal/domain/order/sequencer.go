// internal/domain/order/sequencer.go
package order

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
)

// Sequencer produces human-readable order numbers. Behind an interface so the
// scan-based default can be swapped for a transactional counter without
// touching checkout.
type Sequencer interface {
	Next(ctx context.Context) (string, error)
}

// NumberSource supplies the persisted order numbers to scan
type NumberSource interface {
	OrderNumbers(ctx context.Context) ([]string, error)
}

// StoreSequencer assigns the next order number by scanning the store for the
// current maximum. The scan-then-increment is not serialized across requests:
// two concurrent checkouts can, rarely, draw the same number. When the store
// is unreachable it falls back to an in-process counter seeded at zero, which
// is neither durable nor consistent across processes.
type StoreSequencer struct {
	source NumberSource
	logger *logrus.Logger

	mu       sync.Mutex
	fallback int
}

// NewStoreSequencer creates the default sequencer
func NewStoreSequencer(source NumberSource, log *logrus.Logger) *StoreSequencer {
	return &StoreSequencer{
		source: source,
		logger: log,
	}
}

// Next returns the next order number, zero-padded to 4 digits
func (s *StoreSequencer) Next(ctx context.Context) (string, error) {
	numbers, err := s.source.OrderNumbers(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Order number scan failed, using in-process fallback counter")
		return s.nextFallback(), nil
	}

	max := 0
	for _, number := range numbers {
		n, err := strconv.Atoi(number)
		if err != nil {
			// Non-numeric order numbers (e.g. legacy tokens) don't participate
			continue
		}
		if n > max {
			max = n
		}
	}
	return format(max + 1), nil
}

func (s *StoreSequencer) nextFallback() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback++
	return format(s.fallback)
}

func format(n int) string {
	return fmt.Sprintf("%04d", n)
}
