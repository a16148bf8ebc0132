// internal/pkg/notify/telegram.go
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/freshmo/storefront-backend/internal/config"
	"github.com/freshmo/storefront-backend/internal/domain/contact"
	"github.com/freshmo/storefront-backend/internal/domain/order"
	"github.com/freshmo/storefront-backend/internal/domain/review"
)

// Telegram sends operator alerts through the Telegram bot API. All sends are
// best-effort: an unconfigured bot is skipped silently and failures are the
// caller's to log, never to propagate to a customer.
type Telegram struct {
	config *config.Config
	client *http.Client
	logger *logrus.Logger
}

// NewTelegram creates a new Telegram notifier
func NewTelegram(cfg *config.Config, log *logrus.Logger) *Telegram {
	return &Telegram{
		config: cfg,
		client: &http.Client{Timeout: cfg.Telegram.Timeout},
		logger: log,
	}
}

// sendMessageRequest mirrors the bot API payload
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts one Markdown message to the configured chat
func (t *Telegram) Send(ctx context.Context, text string) error {
	if t.config.Telegram.BotToken == "" || t.config.Telegram.ChatID == "" {
		t.logger.Debug("Telegram bot not configured, skipping notification")
		return nil
	}

	payload := sendMessageRequest{
		ChatID:    t.config.Telegram.ChatID,
		Text:      text,
		ParseMode: "Markdown",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", t.config.Telegram.BaseURL, t.config.Telegram.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create Telegram request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("Telegram API returned status %d", resp.StatusCode)
	}

	t.logger.Debug("Telegram notification sent")
	return nil
}

// OrderPlaced sends the new-order alert
func (t *Telegram) OrderPlaced(ctx context.Context, o *order.Order) error {
	return t.Send(ctx, formatOrder(o, t.config.Company.CurrencySymbol))
}

// ReviewReceived sends the new-review alert
func (t *Telegram) ReviewReceived(ctx context.Context, r *review.Review) error {
	return t.Send(ctx, formatReview(r))
}

// ContactReceived sends the new-contact-message alert
func (t *Telegram) ContactReceived(ctx context.Context, m *contact.Message) error {
	return t.Send(ctx, formatContact(m))
}

// TrackingRequested sends the order-tracking follow-up alert
func (t *Telegram) TrackingRequested(ctx context.Context, orderNumber, phone string) error {
	return t.Send(ctx, formatTracking(orderNumber, phone))
}
