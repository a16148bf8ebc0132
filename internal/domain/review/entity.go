// internal/domain/review/entity.go
package review

import (
	"time"

	"gorm.io/gorm"
)

// Review represents a customer product review
type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Product   string         `gorm:"size:255" json:"product"`
	Rating    int            `gorm:"not null" json:"rating"`
	Review    string         `gorm:"type:text;not null" json:"review"`
	Name      string         `gorm:"size:255" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Review) TableName() string {
	return "reviews"
}

// ReviewerName returns the reviewer display name, defaulting to Anonymous
func (r *Review) ReviewerName() string {
	if r.Name == "" {
		return "Anonymous"
	}
	return r.Name
}
