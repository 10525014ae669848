package models

import (
	"time"
)

// 管理员角色
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin represents a dashboard operator account
type Admin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Email     string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	Role      string    `gorm:"type:varchar(20);not null;default:admin" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsSuperAdmin 是否为超级管理员
func (a *Admin) IsSuperAdmin() bool {
	return a.Role == RoleSuperAdmin
}

// IsValidAdminRole 检查角色值是否合法
func IsValidAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
