package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"gorm.io/gorm"
)

// 联系留言服务的业务错误
var (
	ErrContactNotFound = errors.New("contact message not found")
	ErrContactSettled  = errors.New("contact message already processed")
)

// InterfaceContactService 联系留言服务接口
type InterfaceContactService interface {
	GetAllMessages(page, limit int, status string) ([]models.ContactMessage, int64, error)
	ApproveMessage(id uint) (*models.ContactMessage, error)
	RejectMessage(id uint) (*models.ContactMessage, error)
	DeleteMessage(id uint) error
}

// ContactService 提供联系留言相关的服务
type ContactService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContactService 创建一个新的联系留言服务
func NewContactService(db *gorm.DB, cfg *config.Config) InterfaceContactService {
	return &ContactService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllMessages 获取联系留言列表
func (s *ContactService) GetAllMessages(page, limit int, status string) ([]models.ContactMessage, int64, error) {
	var messages []models.ContactMessage
	var total int64

	query := s.DB.Model(&models.ContactMessage{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&messages).Error; err != nil {
		return nil, 0, err
	}

	return messages, total, nil
}

// 2 ApproveMessage 通过留言，只允许从pending状态推进
func (s *ContactService) ApproveMessage(id uint) (*models.ContactMessage, error) {
	return s.settleMessage(id, models.ReviewStatusApproved)
}

// 3 RejectMessage 拒绝留言，拒绝为终态
func (s *ContactService) RejectMessage(id uint) (*models.ContactMessage, error) {
	return s.settleMessage(id, models.ReviewStatusRejected)
}

// 4 DeleteMessage 删除留言
func (s *ContactService) DeleteMessage(id uint) error {
	var message models.ContactMessage
	if err := s.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrContactNotFound
		}
		return err
	}
	return s.DB.Delete(&models.ContactMessage{}, id).Error
}

// settleMessage 推进审核状态机: pending -> approved|rejected
func (s *ContactService) settleMessage(id uint, status string) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.DB.First(&message, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}

	if models.IsReviewSettled(message.Status) {
		return nil, ErrContactSettled
	}

	if err := s.DB.Model(&message).Update("status", status).Error; err != nil {
		return nil, err
	}

	message.Status = status
	return &message, nil
}
