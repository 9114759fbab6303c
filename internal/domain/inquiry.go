package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry represents a contact form submission
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"size:36;uniqueIndex" json:"reference"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Phone     string    `json:"phone"`
	Company   string    `json:"company"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"` // reserved for a future moderation view
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Inquiry
func (Inquiry) TableName() string {
	return "inquiries"
}

// BeforeCreate hook
func (i *Inquiry) BeforeCreate(tx *gorm.DB) error {
	i.CreatedAt = time.Now().UTC()
	if i.Reference == "" {
		i.Reference = uuid.NewString()
	}
	return nil
}
