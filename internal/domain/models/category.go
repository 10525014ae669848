package models

import (
	"time"
)

// 分类状态
const (
	CategoryStatusActive   = "active"
	CategoryStatusInactive = "inactive"
)

// Category represents a job category
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);unique;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Icon        string    `gorm:"type:varchar(50)" json:"icon"`
	Status      string    `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// 读取时计算的聚合字段，不落库
	JobCount        int64 `gorm:"-" json:"job_count"`
	SubscriberCount int64 `gorm:"-" json:"subscriber_count"`
}
