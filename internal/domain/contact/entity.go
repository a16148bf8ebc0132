// internal/domain/contact/entity.go
package contact

import (
	"time"

	"gorm.io/gorm"
)

// Message represents a contact form submission
type Message struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Email     string         `gorm:"not null;size:255" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone,omitempty"`
	Subject   string         `gorm:"size:255" json:"subject,omitempty"`
	Body      string         `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Message) TableName() string {
	return "contact_messages"
}
