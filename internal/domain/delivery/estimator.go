// internal/domain/delivery/estimator.go
package delivery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/freshmo/storefront-backend/internal/config"
)

// Estimation errors. None of these reach a customer: ChargeOrFree converts
// every provider failure into a free delivery.
var (
	ErrNotConfigured   = errors.New("distance provider not configured")
	ErrNoDestination   = errors.New("destination address required")
	ErrProviderFailure = errors.New("distance provider failure")
)

const metersPerKm = 1000

// Estimator derives a delivery charge from driving distance between the store
// and the customer address, priced per kilometer.
type Estimator struct {
	config *config.Config
	client *http.Client
	logger *logrus.Logger
}

// NewEstimator creates a new delivery estimator
func NewEstimator(cfg *config.Config, log *logrus.Logger) *Estimator {
	return &Estimator{
		config: cfg,
		client: &http.Client{Timeout: cfg.Delivery.Timeout},
		logger: log,
	}
}

// matrixResponse mirrors the distance-matrix provider's JSON shape
type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int64 `json:"value"` // meters
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// Estimate queries the distance provider once and converts the driving
// distance into a charge, rounded to 2 decimals. An empty origin falls back
// to the configured store address.
func (e *Estimator) Estimate(ctx context.Context, origin, destination string) (decimal.Decimal, error) {
	if destination == "" {
		return decimal.Zero, ErrNoDestination
	}
	if e.config.Delivery.APIKey == "" {
		return decimal.Zero, ErrNotConfigured
	}
	if origin == "" {
		origin = e.config.Delivery.StoreAddress
	}

	query := url.Values{}
	query.Set("origins", origin)
	query.Set("destinations", destination)
	query.Set("mode", "driving")
	query.Set("key", e.config.Delivery.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.config.Delivery.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: provider returned status %d", ErrProviderFailure, resp.StatusCode)
	}

	var matrix matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed response: %v", ErrProviderFailure, err)
	}

	if matrix.Status != "OK" || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return decimal.Zero, fmt.Errorf("%w: status %q: %s", ErrProviderFailure, matrix.Status, matrix.ErrorMessage)
	}
	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return decimal.Zero, fmt.Errorf("%w: element status %q", ErrProviderFailure, element.Status)
	}

	distanceKm := decimal.NewFromInt(element.Distance.Value).Div(decimal.NewFromInt(metersPerKm))
	rate := decimal.NewFromFloat(e.config.Delivery.RatePerKm)
	charge := distanceKm.Mul(rate).Round(2)

	e.logger.WithFields(logrus.Fields{
		"destination": destination,
		"distance_km": distanceKm.StringFixed(2),
		"charge":      charge.StringFixed(2),
	}).Info("Delivery charge calculated")

	return charge, nil
}

// ChargeOrFree is the fail-open pricing policy: a collection order (empty
// destination) and any provider failure both yield a zero charge. A failed
// geocode must never block order placement; the degradation is logged, not
// surfaced.
func (e *Estimator) ChargeOrFree(ctx context.Context, destination string) decimal.Decimal {
	if destination == "" {
		return decimal.Zero
	}

	charge, err := e.Estimate(ctx, "", destination)
	if err != nil {
		e.logger.WithError(err).WithField("destination", destination).
			Warn("Delivery estimation degraded, order ships free")
		return decimal.Zero
	}
	return charge
}
