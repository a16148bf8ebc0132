// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/cart"
	"github.com/freshmo/storefront-backend/internal/domain/order"
)

// Checkout errors. Only critical-path failures abort an order; delivery
// pricing and notification degrade without failing the checkout.
var (
	ErrEmptyCart              = errors.New("cart is empty")
	ErrOrderPersistenceFailed = errors.New("order persistence failed")
)

// CartStore is the session cart surface checkout depends on
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

// OrderStore persists completed orders
type OrderStore interface {
	Create(ctx context.Context, o *order.Order) error
}

// DeliveryEstimator prices delivery to a destination, failing open to zero
type DeliveryEstimator interface {
	ChargeOrFree(ctx context.Context, destination string) decimal.Decimal
}

// Notifier sends the best-effort order alert
type Notifier interface {
	OrderPlaced(ctx context.Context, o *order.Order) error
}

// CustomerMemory stores the opted-in "remembered customer" for pre-fill
type CustomerMemory interface {
	Remember(ctx context.Context, sessionID string, customer order.CustomerDetails) error
	Forget(ctx context.Context, sessionID string) error
	Recall(ctx context.Context, sessionID string) (*order.CustomerDetails, error)
}

// Service orchestrates a checkout request
type Service struct {
	carts     CartStore
	orders    OrderStore
	sequencer order.Sequencer
	estimator DeliveryEstimator
	notifier  Notifier
	customers CustomerMemory
	config    *config.Config
	logger    *logrus.Logger
}

// NewService creates a new checkout service
func NewService(
	carts CartStore,
	orders OrderStore,
	sequencer order.Sequencer,
	estimator DeliveryEstimator,
	notifier Notifier,
	customers CustomerMemory,
	cfg *config.Config,
	log *logrus.Logger,
) *Service {
	return &Service{
		carts:     carts,
		orders:    orders,
		sequencer: sequencer,
		estimator: estimator,
		notifier:  notifier,
		customers: customers,
		config:    cfg,
		logger:    log,
	}
}

// Request represents one checkout submission
type Request struct {
	Customer         order.CustomerDetails `json:"customer" binding:"required"`
	PaymentMethod    string                `json:"payment_method" binding:"required"`
	Note             string                `json:"note,omitempty"`
	RememberCustomer bool                  `json:"remember_customer"`
}

// Summary represents the pre-checkout view: cart totals, a delivery quote for
// a remembered delivery customer, and the pre-fill details
type Summary struct {
	Cart              *cart.Cart             `json:"cart"`
	Totals            cart.Totals            `json:"totals"`
	DeliveryCharge    decimal.Decimal        `json:"delivery_charge"`
	GrandTotalInclVAT decimal.Decimal        `json:"grand_total_incl_vat"`
	Customer          *order.CustomerDetails `json:"remembered_customer,omitempty"`
}

// Checkout executes the checkout state machine for one session. On success
// the cart is cleared and the persisted order is returned; on failure the
// cart is untouched.
func (s *Service) Checkout(ctx context.Context, sessionID string, req *Request) (*order.Order, error) {
	// Validate: an empty cart aborts before any side effect
	sessionCart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if sessionCart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// Compute totals; delivery is priced fail-open and only for delivery orders
	totals := sessionCart.Totals()
	deliveryCharge := decimal.Zero
	if req.Customer.DeliveryType == order.DeliveryTypeDelivery {
		deliveryCharge = s.estimator.ChargeOrFree(ctx, req.Customer.Address)
	}
	grandTotal := totals.GrandTotalInclVAT.Add(deliveryCharge)

	// Sequence
	orderNumber, err := s.sequencer.Next(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to assign order number: %w", err)
	}

	o := &order.Order{
		OrderNumber:       orderNumber,
		Customer:          req.Customer,
		Items:             orderItems(sessionCart),
		SubtotalExclVAT:   totals.SubtotalExclVAT,
		TotalVATAmount:    totals.TotalVATAmount,
		DeliveryCharge:    deliveryCharge,
		GrandTotalInclVAT: grandTotal,
		PaymentMethod:     req.PaymentMethod,
		Note:              req.Note,
		Status:            order.StatusPending,
	}

	// Persist: failure aborts and preserves the cart
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOrderPersistenceFailed, err)
	}

	// Notify: fire-and-forget relative to order success
	if err := s.notifier.OrderPlaced(ctx, o); err != nil {
		s.logger.WithError(err).WithField("order_number", o.OrderNumber).
			Warn("Order notification failed")
	}

	// Finalize
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logger.WithError(err).WithField("session_id", sessionID).
			Warn("Failed to clear cart after checkout")
	}
	if req.RememberCustomer {
		if err := s.customers.Remember(ctx, sessionID, req.Customer); err != nil {
			s.logger.WithError(err).Warn("Failed to remember customer details")
		}
	} else {
		if err := s.customers.Forget(ctx, sessionID); err != nil {
			s.logger.WithError(err).Warn("Failed to forget customer details")
		}
	}

	s.logger.WithFields(logrus.Fields{
		"order_number": o.OrderNumber,
		"grand_total":  o.GrandTotalInclVAT.StringFixed(2),
		"items":        len(o.Items),
	}).Info("Order placed")

	return o, nil
}

// Summarize builds the pre-checkout summary, quoting delivery when the
// remembered customer last chose delivery
func (s *Service) Summarize(ctx context.Context, sessionID string) (*Summary, error) {
	sessionCart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	totals := sessionCart.Totals()
	summary := &Summary{
		Cart:              sessionCart,
		Totals:            totals,
		DeliveryCharge:    decimal.Zero,
		GrandTotalInclVAT: totals.GrandTotalInclVAT,
	}

	customer, err := s.customers.Recall(ctx, sessionID)
	if err != nil {
		s.logger.WithError(err).Debug("No remembered customer for session")
		return summary, nil
	}
	summary.Customer = customer

	if customer != nil && customer.DeliveryType == order.DeliveryTypeDelivery {
		summary.DeliveryCharge = s.estimator.ChargeOrFree(ctx, customer.Address)
		summary.GrandTotalInclVAT = totals.GrandTotalInclVAT.Add(summary.DeliveryCharge)
	}
	return summary, nil
}

func orderItems(c *cart.Cart) []order.Item {
	items := make([]order.Item, len(c.Items))
	for i, line := range c.Items {
		items[i] = order.Item{
			SKU:              line.SKU,
			Name:             line.Name,
			Variant:          line.Variant,
			Quantity:         line.Quantity,
			UnitPriceExclVAT: line.UnitPriceExclVAT,
			UnitVATAmount:    line.UnitVATAmount,
			UnitPriceInclVAT: line.UnitPriceInclVAT,
			TotalExclVAT:     line.TotalExclVAT,
			TotalVATAmount:   line.TotalVATAmount,
			TotalInclVAT:     line.TotalInclVAT,
		}
	}
	return items
}
