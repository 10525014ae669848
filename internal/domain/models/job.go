package models

import (
	"time"
)

// 职位状态
const (
	JobStatusPending = "pending"
	JobStatusActive  = "active"
	JobStatusClosed  = "closed"
)

// 职位优先级，高优先级职位在列表页置顶
const (
	JobPriorityHigh   = "high"
	JobPriorityMedium = "medium"
	JobPriorityNormal = "normal"
	JobPriorityLow    = "low"
)

// 职位类型
const (
	JobTypeFullTime   = "full-time"
	JobTypeContract   = "contract"
	JobTypeRemote     = "remote"
	JobTypeInternship = "internship"
)

// Job represents a job listing managed through the dashboard
type Job struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Slug         string    `gorm:"type:varchar(200);unique;not null" json:"slug"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	CompanyName  string    `gorm:"type:varchar(200)" json:"company_name"`
	Location     string    `gorm:"type:varchar(100)" json:"location"`
	JobType      string    `gorm:"type:varchar(20);default:full-time" json:"job_type"`
	SalaryRange  string    `gorm:"type:varchar(100)" json:"salary_range"`
	Status       string    `gorm:"type:varchar(20);not null;default:pending;index" json:"status"`
	Priority     string    `gorm:"type:varchar(20);not null;default:normal" json:"priority"`
	CategoryID   *uint     `gorm:"index" json:"category_id"`
	Category     *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Description  string    `gorm:"type:text" json:"description"`
	ContactEmail string    `gorm:"type:varchar(100)" json:"contact_email"`
	Whatsapp     string    `gorm:"type:varchar(50)" json:"whatsapp"`
	ApplyLink    string    `gorm:"type:varchar(500)" json:"apply_link"`
	Views        int       `gorm:"default:0" json:"views"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsValidJobStatus 检查职位状态值是否合法
func IsValidJobStatus(status string) bool {
	switch status {
	case JobStatusPending, JobStatusActive, JobStatusClosed:
		return true
	}
	return false
}

// IsValidJobPriority 检查职位优先级是否合法
func IsValidJobPriority(priority string) bool {
	switch priority {
	case JobPriorityHigh, JobPriorityMedium, JobPriorityNormal, JobPriorityLow:
		return true
	}
	return false
}

// IsValidJobType 检查职位类型是否合法
func IsValidJobType(jobType string) bool {
	switch jobType {
	case JobTypeFullTime, JobTypeContract, JobTypeRemote, JobTypeInternship:
		return true
	}
	return false
}
