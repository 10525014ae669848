package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrSubscriptionNotFound 订阅不存在
var ErrSubscriptionNotFound = errors.New("subscription not found")

// InterfaceSubscriptionService 职位提醒订阅服务接口。
// 订阅在前台网站创建，后台只提供查看和删除
type InterfaceSubscriptionService interface {
	GetAllSubscriptions(page, limit int, categoryID uint, search string) ([]models.Subscription, int64, error)
	DeleteSubscription(id uint) error
}

// SubscriptionService 提供订阅相关的服务
type SubscriptionService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSubscriptionService 创建一个新的订阅服务
func NewSubscriptionService(db *gorm.DB, cfg *config.Config) InterfaceSubscriptionService {
	return &SubscriptionService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllSubscriptions 获取订阅列表，联表带出分类名称
func (s *SubscriptionService) GetAllSubscriptions(page, limit int, categoryID uint, search string) ([]models.Subscription, int64, error) {
	var subscriptions []models.Subscription
	var total int64

	query := s.DB.Model(&models.Subscription{})
	if categoryID > 0 {
		query = query.Where("subscriptions.category_id = ?", categoryID)
	}
	if search != "" {
		query = query.Where("subscriptions.email LIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := query.
		Select("subscriptions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = subscriptions.category_id").
		Order("subscriptions.created_at DESC").
		Offset(offset).Limit(limit).
		Scan(&subscriptions).Error
	if err != nil {
		return nil, 0, err
	}

	return subscriptions, total, nil
}

// 2 DeleteSubscription 删除订阅
func (s *SubscriptionService) DeleteSubscription(id uint) error {
	var subscription models.Subscription
	if err := s.DB.First(&subscription, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSubscriptionNotFound
		}
		return err
	}
	return s.DB.Delete(&models.Subscription{}, id).Error
}
