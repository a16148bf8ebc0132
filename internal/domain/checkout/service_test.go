package checkout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/cart"
	"github.com/freshmo/storefront-backend/internal/domain/checkout"
	"github.com/freshmo/storefront-backend/internal/domain/order"
)

var vat15 = decimal.NewFromFloat(0.15)

type fakeCartStore struct {
	cart    *cart.Cart
	getErr  error
	cleared bool
}

func (f *fakeCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cart, nil
}

func (f *fakeCartStore) Clear(ctx context.Context, sessionID string) error {
	f.cleared = true
	return nil
}

type fakeOrderStore struct {
	created *order.Order
	err     error
}

func (f *fakeOrderStore) Create(ctx context.Context, o *order.Order) error {
	if f.err != nil {
		return f.err
	}
	f.created = o
	return nil
}

type fakeEstimator struct {
	charge decimal.Decimal
	called bool
}

func (f *fakeEstimator) ChargeOrFree(ctx context.Context, destination string) decimal.Decimal {
	f.called = true
	return f.charge
}

type fakeNotifier struct {
	notified bool
	err      error
}

func (f *fakeNotifier) OrderPlaced(ctx context.Context, o *order.Order) error {
	f.notified = true
	return f.err
}

type fakeCustomerMemory struct {
	remembered *order.CustomerDetails
	forgotten  bool
}

func (f *fakeCustomerMemory) Remember(ctx context.Context, sessionID string, c order.CustomerDetails) error {
	f.remembered = &c
	return nil
}

func (f *fakeCustomerMemory) Forget(ctx context.Context, sessionID string) error {
	f.forgotten = true
	return nil
}

func (f *fakeCustomerMemory) Recall(ctx context.Context, sessionID string) (*order.CustomerDetails, error) {
	return f.remembered, nil
}

type fixedSequencer struct{ number string }

func (f fixedSequencer) Next(ctx context.Context) (string, error) { return f.number, nil }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func filledCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New("sess-1")
	require.NoError(t, c.Add("sm-box", "Mouthwash Box of 30", "", decimal.NewFromFloat(150.00), 2, vat15))
	return c
}

type fixture struct {
	carts     *fakeCartStore
	orders    *fakeOrderStore
	estimator *fakeEstimator
	notifier  *fakeNotifier
	customers *fakeCustomerMemory
	service   *checkout.Service
}

func newFixture(t *testing.T, c *cart.Cart) *fixture {
	t.Helper()
	f := &fixture{
		carts:     &fakeCartStore{cart: c},
		orders:    &fakeOrderStore{},
		estimator: &fakeEstimator{charge: decimal.Zero},
		notifier:  &fakeNotifier{},
		customers: &fakeCustomerMemory{},
	}
	f.service = checkout.NewService(
		f.carts, f.orders, fixedSequencer{"0007"}, f.estimator, f.notifier, f.customers,
		&config.Config{Tax: config.TaxConfig{VATRate: 0.15}}, quietLogger(),
	)
	return f
}

func deliveryRequest() *checkout.Request {
	return &checkout.Request{
		Customer: order.CustomerDetails{
			Name:         "Thandi M",
			Phone:        "0821234567",
			DeliveryType: order.DeliveryTypeDelivery,
			Address:      "12 Main Road, Benoni",
		},
		PaymentMethod: "EFT",
	}
}

func TestCheckout_EmptyCartHasNoSideEffects(t *testing.T) {
	f := newFixture(t, cart.New("sess-1"))

	_, err := f.service.Checkout(context.Background(), "sess-1", deliveryRequest())

	assert.ErrorIs(t, err, checkout.ErrEmptyCart)
	assert.Nil(t, f.orders.created)
	assert.False(t, f.notifier.notified)
	assert.False(t, f.carts.cleared)
}

func TestCheckout_DeliveryOrderAddsCharge(t *testing.T) {
	f := newFixture(t, filledCart(t))
	f.estimator.charge = decimal.NewFromFloat(74.07)

	o, err := f.service.Checkout(context.Background(), "sess-1", deliveryRequest())
	require.NoError(t, err)

	assert.Equal(t, "0007", o.OrderNumber)
	assert.Equal(t, order.StatusPending, o.Status)
	assert.Equal(t, "300.00", o.SubtotalExclVAT.StringFixed(2))
	assert.Equal(t, "45.00", o.TotalVATAmount.StringFixed(2))
	assert.Equal(t, "74.07", o.DeliveryCharge.StringFixed(2))
	assert.Equal(t, "419.07", o.GrandTotalInclVAT.StringFixed(2))
	require.Len(t, o.Items, 1)
	assert.Equal(t, "sm-box", o.Items[0].SKU)

	assert.True(t, f.carts.cleared)
	assert.True(t, f.notifier.notified)
}

func TestCheckout_CollectionOrderSkipsDeliveryPricing(t *testing.T) {
	f := newFixture(t, filledCart(t))
	f.estimator.charge = decimal.NewFromFloat(99.99)

	req := deliveryRequest()
	req.Customer.DeliveryType = order.DeliveryTypeCollection
	req.Customer.Address = ""

	o, err := f.service.Checkout(context.Background(), "sess-1", req)
	require.NoError(t, err)

	assert.False(t, f.estimator.called)
	assert.True(t, o.DeliveryCharge.IsZero())
	assert.Equal(t, "345.00", o.GrandTotalInclVAT.StringFixed(2))
}

func TestCheckout_PersistenceFailurePreservesCart(t *testing.T) {
	f := newFixture(t, filledCart(t))
	f.orders.err = errors.New("store down")

	_, err := f.service.Checkout(context.Background(), "sess-1", deliveryRequest())

	assert.ErrorIs(t, err, checkout.ErrOrderPersistenceFailed)
	assert.False(t, f.carts.cleared)
	assert.False(t, f.notifier.notified)
}

func TestCheckout_NotificationFailureDoesNotFailOrder(t *testing.T) {
	f := newFixture(t, filledCart(t))
	f.notifier.err = errors.New("bot unreachable")

	o, err := f.service.Checkout(context.Background(), "sess-1", deliveryRequest())

	require.NoError(t, err)
	assert.NotNil(t, o)
	assert.True(t, f.carts.cleared)
}

func TestCheckout_RemembersCustomerWhenOptedIn(t *testing.T) {
	f := newFixture(t, filledCart(t))

	req := deliveryRequest()
	req.RememberCustomer = true

	_, err := f.service.Checkout(context.Background(), "sess-1", req)
	require.NoError(t, err)

	require.NotNil(t, f.customers.remembered)
	assert.Equal(t, "Thandi M", f.customers.remembered.Name)
	assert.False(t, f.customers.forgotten)
}

func TestCheckout_ForgetsCustomerWhenNotOptedIn(t *testing.T) {
	f := newFixture(t, filledCart(t))

	_, err := f.service.Checkout(context.Background(), "sess-1", deliveryRequest())
	require.NoError(t, err)

	assert.Nil(t, f.customers.remembered)
	assert.True(t, f.customers.forgotten)
}

func TestSummarize_QuotesDeliveryForRememberedDeliveryCustomer(t *testing.T) {
	f := newFixture(t, filledCart(t))
	f.estimator.charge = decimal.NewFromFloat(30.00)
	f.customers.remembered = &order.CustomerDetails{
		Name:         "Thandi M",
		Phone:        "0821234567",
		DeliveryType: order.DeliveryTypeDelivery,
		Address:      "12 Main Road, Benoni",
	}

	summary, err := f.service.Summarize(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "30.00", summary.DeliveryCharge.StringFixed(2))
	assert.Equal(t, "375.00", summary.GrandTotalInclVAT.StringFixed(2))
	require.NotNil(t, summary.Customer)
}

func TestSummarize_NoRememberedCustomer(t *testing.T) {
	f := newFixture(t, filledCart(t))

	summary, err := f.service.Summarize(context.Background(), "sess-1")
	require.NoError(t, err)

	assert.Nil(t, summary.Customer)
	assert.True(t, summary.DeliveryCharge.IsZero())
	assert.Equal(t, "345.00", summary.GrandTotalInclVAT.StringFixed(2))
}
