package models

import (
	"time"
)

// 安全警示状态
const (
	SafetyAlertStatusDraft     = "draft"
	SafetyAlertStatusPublished = "published"
	SafetyAlertStatusArchived  = "archived"
)

// 安全警示优先级
const (
	SafetyAlertPriorityLow    = "low"
	SafetyAlertPriorityMedium = "medium"
	SafetyAlertPriorityHigh   = "high"
	SafetyAlertPriorityUrgent = "urgent"
)

// SafetyAlert represents a scam/unsafe-posting advisory shown to end users
type SafetyAlert struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Slug        string    `gorm:"type:varchar(200);unique;not null" json:"slug"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Priority    string    `gorm:"type:varchar(20);not null;default:medium" json:"priority"`
	Status      string    `gorm:"type:varchar(20);not null;default:draft;index" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsValidSafetyAlertStatus 检查警示状态值是否合法
func IsValidSafetyAlertStatus(status string) bool {
	switch status {
	case SafetyAlertStatusDraft, SafetyAlertStatusPublished, SafetyAlertStatusArchived:
		return true
	}
	return false
}

// IsValidSafetyAlertPriority 检查警示优先级是否合法
func IsValidSafetyAlertPriority(priority string) bool {
	switch priority {
	case SafetyAlertPriorityLow, SafetyAlertPriorityMedium,
		SafetyAlertPriorityHigh, SafetyAlertPriorityUrgent:
		return true
	}
	return false
}
