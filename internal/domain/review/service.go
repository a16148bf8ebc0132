// internal/domain/review/service.go
package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrInvalidRating indicates a rating outside 1..5
var ErrInvalidRating = errors.New("rating must be between 1 and 5")

// Notifier sends the best-effort review alert
type Notifier interface {
	ReviewReceived(ctx context.Context, r *Review) error
}

// Service handles review submission
type Service struct {
	db       *gorm.DB
	notifier Notifier
	logger   *logrus.Logger
}

// NewService creates a new review service
func NewService(db *gorm.DB, notifier Notifier, log *logrus.Logger) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
		logger:   log,
	}
}

// SubmitRequest represents a review submission
type SubmitRequest struct {
	Product string `json:"product"`
	Rating  int    `json:"rating" binding:"required"`
	Review  string `json:"review" binding:"required"`
	Name    string `json:"name"`
}

// Submit validates and persists a review, then alerts the operator.
// Notification failure never fails the submission.
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRating, req.Rating)
	}

	r := &Review{
		Product: req.Product,
		Rating:  req.Rating,
		Review:  req.Review,
		Name:    req.Name,
	}
	if err := s.db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	if err := s.notifier.ReviewReceived(ctx, r); err != nil {
		s.logger.WithError(err).Warn("Review notification failed")
	}
	return r, nil
}

// List returns all reviews, newest first
func (s *Service) List(ctx context.Context) ([]Review, error) {
	var reviews []Review
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
