package delivery_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/delivery"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Delivery: config.DeliveryConfig{
			BaseURL:      baseURL,
			APIKey:       "test-key",
			RatePerKm:    6.0,
			StoreAddress: "27 Parakeet Street, Villa Lisa, Boksburg, 1459",
			Timeout:      2 * time.Second,
		},
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestEstimate_ComputesChargeFromDrivingDistance(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "27 Parakeet Street, Villa Lisa, Boksburg, 1459", r.URL.Query().Get("origins"))
		assert.Equal(t, "12 Main Road, Benoni", r.URL.Query().Get("destinations"))
		assert.Equal(t, "driving", r.URL.Query().Get("mode"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"OK","rows":[{"elements":[{"status":"OK","distance":{"value":12345}}]}]}`))
	}))
	defer server.Close()

	estimator := delivery.NewEstimator(testConfig(server.URL), testLogger())

	charge, err := estimator.Estimate(context.Background(), "", "12 Main Road, Benoni")
	require.NoError(t, err)
	// 12.345 km * R6/km = 74.07
	assert.Equal(t, "74.07", charge.StringFixed(2))
}

func TestEstimate_EmptyDestination(t *testing.T) {
	estimator := delivery.NewEstimator(testConfig("http://unused"), testLogger())

	_, err := estimator.Estimate(context.Background(), "", "")
	assert.ErrorIs(t, err, delivery.ErrNoDestination)
}

func TestEstimate_MissingAPIKey(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.Delivery.APIKey = ""
	estimator := delivery.NewEstimator(cfg, testLogger())

	_, err := estimator.Estimate(context.Background(), "", "12 Main Road, Benoni")
	assert.ErrorIs(t, err, delivery.ErrNotConfigured)
}

func TestEstimate_ProviderRejections(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"non-OK top-level status", `{"status":"REQUEST_DENIED","error_message":"bad key"}`, http.StatusOK},
		{"non-OK element status", `{"status":"OK","rows":[{"elements":[{"status":"NOT_FOUND"}]}]}`, http.StatusOK},
		{"empty rows", `{"status":"OK","rows":[]}`, http.StatusOK},
		{"malformed body", `{"status":`, http.StatusOK},
		{"http error", `{}`, http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				w.Write([]byte(tc.body))
			}))
			defer server.Close()

			estimator := delivery.NewEstimator(testConfig(server.URL), testLogger())
			_, err := estimator.Estimate(context.Background(), "", "12 Main Road, Benoni")
			assert.ErrorIs(t, err, delivery.ErrProviderFailure)
		})
	}
}

func TestChargeOrFree_FailsOpen(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	estimator := delivery.NewEstimator(testConfig(server.URL), testLogger())

	charge := estimator.ChargeOrFree(context.Background(), "12 Main Road, Benoni")
	assert.True(t, charge.IsZero())
}

func TestChargeOrFree_CollectionOrderIsFree(t *testing.T) {
	estimator := delivery.NewEstimator(testConfig("http://unused"), testLogger())

	charge := estimator.ChargeOrFree(context.Background(), "")
	assert.True(t, charge.IsZero())
}

func TestChargeOrFree_UnreachableProviderIsFree(t *testing.T) {
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Delivery.Timeout = 200 * time.Millisecond
	estimator := delivery.NewEstimator(cfg, testLogger())

	charge := estimator.ChargeOrFree(context.Background(), "12 Main Road, Benoni")
	assert.True(t, charge.IsZero())
}
