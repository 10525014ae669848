package models

import (
	"time"
)

// User represents an end user of the public job site
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"type:varchar(100);not null" json:"full_name"`
	Email      string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password   string    `gorm:"type:varchar(100)" json:"-"`
	IsVerified bool      `gorm:"default:false" json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 列表展示用的聚合字段
	ResumeCount      int64 `gorm:"-" json:"resume_count"`
	CoverLetterCount int64 `gorm:"-" json:"cover_letter_count"`
}

// Resume represents an uploaded resume belonging to a user
type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	FileURL   string    `gorm:"type:varchar(500)" json:"file_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CoverLetter represents a saved cover letter belonging to a user
type CoverLetter struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"type:varchar(200)" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
