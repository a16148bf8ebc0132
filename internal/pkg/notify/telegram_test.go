package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/order"
	"github.com/freshmo/storefront-backend/internal/pkg/notify"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Telegram: config.TelegramConfig{
			BaseURL:  baseURL,
			BotToken: "bot-token",
			ChatID:   "chat-42",
			Timeout:  2 * time.Second,
		},
		Company: config.CompanyConfig{CurrencySymbol: "R"},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestSend_PostsMarkdownMessageToChat(t *testing.T) {
	var received struct {
		ChatID    string `json:"chat_id"`
		Text      string `json:"text"`
		ParseMode string `json:"parse_mode"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botbot-token/sendMessage", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	telegram := notify.NewTelegram(testConfig(server.URL), quietLogger())

	err := telegram.Send(context.Background(), "hello operator")
	require.NoError(t, err)

	assert.Equal(t, "chat-42", received.ChatID)
	assert.Equal(t, "hello operator", received.Text)
	assert.Equal(t, "Markdown", received.ParseMode)
}

func TestSend_UnconfiguredBotIsSkipped(t *testing.T) {
	cfg := testConfig("http://unused")
	cfg.Telegram.BotToken = ""

	telegram := notify.NewTelegram(cfg, quietLogger())
	assert.NoError(t, telegram.Send(context.Background(), "ignored"))
}

func TestSend_NonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	telegram := notify.NewTelegram(testConfig(server.URL), quietLogger())
	assert.Error(t, telegram.Send(context.Background(), "hello"))
}

func TestOrderPlaced_IncludesOrderDetails(t *testing.T) {
	var text string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Text string `json:"text"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		text = payload.Text
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	telegram := notify.NewTelegram(testConfig(server.URL), quietLogger())

	o := &order.Order{
		OrderNumber: "0042",
		Customer: order.CustomerDetails{
			Name:         "Thandi M",
			Phone:        "0821234567",
			DeliveryType: order.DeliveryTypeDelivery,
			Address:      "12 Main Road, Benoni",
		},
		Items: []order.Item{{
			SKU:              "toothbrush",
			Name:             "Biodegradable Toothbrush",
			Variant:          "green",
			Quantity:         2,
			UnitPriceExclVAT: decimal.NewFromFloat(35.00),
			UnitVATAmount:    decimal.NewFromFloat(5.25),
			UnitPriceInclVAT: decimal.NewFromFloat(40.25),
			TotalInclVAT:     decimal.NewFromFloat(80.50),
		}},
		SubtotalExclVAT:   decimal.NewFromFloat(70.00),
		TotalVATAmount:    decimal.NewFromFloat(10.50),
		DeliveryCharge:    decimal.NewFromFloat(30.00),
		GrandTotalInclVAT: decimal.NewFromFloat(110.50),
		PaymentMethod:     "EFT",
	}

	require.NoError(t, telegram.OrderPlaced(context.Background(), o))

	assert.Contains(t, text, "`0042`")
	assert.Contains(t, text, "Biodegradable Toothbrush (green) (x2)")
	assert.Contains(t, text, "R110.50")
	assert.Contains(t, text, "Thandi M")
}
