package models

import (
	"time"
)

// ContactMessage represents a visitor message from the contact form
type ContactMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName  string    `gorm:"type:varchar(50)" json:"last_name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50)" json:"phone,omitempty"`
	Subject   string    `gorm:"type:varchar(200)" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
