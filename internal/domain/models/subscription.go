package models

import (
	"time"
)

// Subscription represents a job-alert opt-in for one category.
// 创建发生在前台网站，后台只做查看和删除
type Subscription struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Email      string    `gorm:"type:varchar(100);not null;index" json:"email"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"-"`
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// 列表展示用，由查询联表填充
	CategoryName string `gorm:"-" json:"category_name"`
}
