// internal/domain/contact/service.go
package contact

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Notifier sends the best-effort contact alert
type Notifier interface {
	ContactReceived(ctx context.Context, m *Message) error
}

// Service handles contact form submissions
type Service struct {
	db       *gorm.DB
	notifier Notifier
	logger   *logrus.Logger
}

// NewService creates a new contact service
func NewService(db *gorm.DB, notifier Notifier, log *logrus.Logger) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
		logger:   log,
	}
}

// SubmitRequest represents a contact form submission
type SubmitRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// Submit persists the message and alerts the operator. Notification failure
// never fails the submission.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*Message, error) {
	m := &Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Message,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if err := s.notifier.ContactReceived(ctx, m); err != nil {
		s.logger.WithError(err).Warn("Contact notification failed")
	}
	return m, nil
}

// List returns all contact messages, newest first
func (s *Service) List(ctx context.Context) ([]Message, error) {
	var messages []Message
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}
