package models

import (
	"time"
)

// Feedback represents user feedback submitted from the public site
type Feedback struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Email        string    `gorm:"type:varchar(100)" json:"email"`
	FeedbackType string    `gorm:"type:varchar(50)" json:"feedback_type"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	Status       string    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CategoryRequest represents a user-suggested job category,
// 审核通过后才会生成真正的Category
type CategoryRequest struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Email       string    `gorm:"type:varchar(100)" json:"email"`
	Status      string    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
