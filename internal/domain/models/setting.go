package models

import (
	"time"
)

// Setting represents one site-setting key/value pair
// (site_name, contact_email, 颜色等)，分组展示由前端按key列表处理
type Setting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	SettingKey   string    `gorm:"type:varchar(100);unique;not null" json:"setting_key"`
	SettingValue string    `gorm:"type:text" json:"setting_value"`
	UpdatedAt    time.Time `json:"updated_at"`
}
