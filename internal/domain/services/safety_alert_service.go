package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/pkg/logger"
	"github.com/Zohaib521321/job-potal-admin/utils"

	"gorm.io/gorm"
)

// 安全警示相关的错误
var (
	ErrSafetyAlertNotFound      = errors.New("safety alert not found")
	ErrSafetyAlertInvalidStatus = errors.New("invalid safety alert status")
)

// SafetyAlertInput 创建/更新安全警示的入参
type SafetyAlertInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// SafetyAlertStats 安全警示统计
type SafetyAlertStats struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Draft     int64 `json:"draft"`
	Archived  int64 `json:"archived"`
}

// InterfaceSafetyAlertService 安全警示服务接口
type InterfaceSafetyAlertService interface {
	GetAllAlerts(page, limit int, status string) ([]models.SafetyAlert, int64, error)
	GetAlertByID(id uint) (*models.SafetyAlert, error)
	GetAlertStats() (*SafetyAlertStats, error)
	CreateAlert(input *SafetyAlertInput) (*models.SafetyAlert, error)
	UpdateAlert(id uint, input *SafetyAlertInput) (*models.SafetyAlert, error)
	UpdateAlertStatus(id uint, status string) (*models.SafetyAlert, error)
	DeleteAlert(id uint) error
}

// SafetyAlertService 提供安全警示相关的服务
type SafetyAlertService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSafetyAlertService 创建一个新的安全警示服务
func NewSafetyAlertService(db *gorm.DB, cfg *config.Config) InterfaceSafetyAlertService {
	return &SafetyAlertService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllAlerts 获取安全警示列表，按优先级和创建时间排序
func (s *SafetyAlertService) GetAllAlerts(page, limit int, status string) ([]models.SafetyAlert, int64, error) {
	var alerts []models.SafetyAlert
	var total int64

	query := s.DB.Model(&models.SafetyAlert{})
	if status != "" {
		if !models.IsValidSafetyAlertStatus(status) {
			return nil, 0, ErrSafetyAlertInvalidStatus
		}
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Order("FIELD(priority, 'urgent', 'high', 'medium', 'low'), created_at DESC").
		Offset(offset).Limit(limit).
		Find(&alerts).Error
	if err != nil {
		return nil, 0, err
	}

	return alerts, total, nil
}

// 2 GetAlertByID 根据 ID 获取安全警示
func (s *SafetyAlertService) GetAlertByID(id uint) (*models.SafetyAlert, error) {
	var alert models.SafetyAlert
	if err := s.DB.First(&alert, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSafetyAlertNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// 3 GetAlertStats 获取各状态下的安全警示数量
func (s *SafetyAlertService) GetAlertStats() (*SafetyAlertStats, error) {
	stats := &SafetyAlertStats{}

	if err := s.DB.Model(&models.SafetyAlert{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	err := s.DB.Model(&models.SafetyAlert{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	for _, c := range counts {
		switch c.Status {
		case models.SafetyAlertStatusPublished:
			stats.Published = c.Count
		case models.SafetyAlertStatusDraft:
			stats.Draft = c.Count
		case models.SafetyAlertStatusArchived:
			stats.Archived = c.Count
		}
	}

	return stats, nil
}

// 4 CreateAlert 创建安全警示，默认为草稿状态
func (s *SafetyAlertService) CreateAlert(input *SafetyAlertInput) (*models.SafetyAlert, error) {
	utils.SanitizeFields(&input.Title, &input.Description)

	if input.Priority == "" {
		input.Priority = models.SafetyAlertPriorityMedium
	}
	if input.Status == "" {
		input.Status = models.SafetyAlertStatusDraft
	}
	if !models.IsValidSafetyAlertStatus(input.Status) || !models.IsValidSafetyAlertPriority(input.Priority) {
		return nil, ErrSafetyAlertInvalidStatus
	}

	alert := &models.SafetyAlert{
		Title:       input.Title,
		Slug:        s.resolveSlug(input.Title),
		Description: input.Description,
		Priority:    input.Priority,
		Status:      input.Status,
	}
	if err := s.DB.Create(alert).Error; err != nil {
		return nil, err
	}

	s.logIfPublished(alert, false)
	return alert, nil
}

// 5 UpdateAlert 更新安全警示，标题不参与 slug 重算以保持链接稳定
func (s *SafetyAlertService) UpdateAlert(id uint, input *SafetyAlertInput) (*models.SafetyAlert, error) {
	alert, err := s.GetAlertByID(id)
	if err != nil {
		return nil, err
	}

	utils.SanitizeFields(&input.Title, &input.Description)

	if input.Priority == "" {
		input.Priority = alert.Priority
	}
	if input.Status == "" {
		input.Status = alert.Status
	}
	if !models.IsValidSafetyAlertStatus(input.Status) || !models.IsValidSafetyAlertPriority(input.Priority) {
		return nil, ErrSafetyAlertInvalidStatus
	}

	wasPublished := alert.Status == models.SafetyAlertStatusPublished

	alert.Title = input.Title
	alert.Description = input.Description
	alert.Priority = input.Priority
	alert.Status = input.Status

	if err := s.DB.Save(alert).Error; err != nil {
		return nil, err
	}

	s.logIfPublished(alert, wasPublished)
	return alert, nil
}

// 6 UpdateAlertStatus 单独更新警示状态（发布/下线/归档）
func (s *SafetyAlertService) UpdateAlertStatus(id uint, status string) (*models.SafetyAlert, error) {
	if !models.IsValidSafetyAlertStatus(status) {
		return nil, ErrSafetyAlertInvalidStatus
	}

	alert, err := s.GetAlertByID(id)
	if err != nil {
		return nil, err
	}

	wasPublished := alert.Status == models.SafetyAlertStatusPublished
	if err := s.DB.Model(alert).Update("status", status).Error; err != nil {
		return nil, err
	}
	alert.Status = status

	s.logIfPublished(alert, wasPublished)
	return alert, nil
}

// 7 DeleteAlert 删除安全警示
func (s *SafetyAlertService) DeleteAlert(id uint) error {
	if _, err := s.GetAlertByID(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.SafetyAlert{}, id).Error
}

// resolveSlug 由标题生成 slug，冲突时追加随机后缀
func (s *SafetyAlertService) resolveSlug(title string) string {
	slug := utils.Slugify(title)
	var count int64
	s.DB.Model(&models.SafetyAlert{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		return utils.UniqueSlug(slug)
	}
	return slug
}

// logIfPublished 警示进入已发布状态时记录一条日志，
// 实际的站内通知推送由平台侧消费
func (s *SafetyAlertService) logIfPublished(alert *models.SafetyAlert, wasPublished bool) {
	if !wasPublished && alert.Status == models.SafetyAlertStatusPublished {
		logger.Info("安全警示已发布: id=%d slug=%s", alert.ID, alert.Slug)
	}
}
