package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"gorm.io/gorm"
)

// 反馈与分类申请服务的业务错误
var (
	ErrFeedbackNotFound        = errors.New("feedback not found")
	ErrFeedbackSettled         = errors.New("feedback already processed")
	ErrCategoryRequestNotFound = errors.New("category request not found")
	ErrCategoryRequestSettled  = errors.New("category request already processed")
)

// InterfaceFeedbackService 反馈服务接口，同时管理分类申请
type InterfaceFeedbackService interface {
	GetAllFeedback(page, limit int, status, feedbackType string) ([]models.Feedback, int64, error)
	ApproveFeedback(id uint) (*models.Feedback, error)
	RejectFeedback(id uint) (*models.Feedback, error)
	DeleteFeedback(id uint) error

	GetAllCategoryRequests(page, limit int, status string) ([]models.CategoryRequest, int64, error)
	ApproveCategoryRequest(id uint) (*models.CategoryRequest, error)
	RejectCategoryRequest(id uint) (*models.CategoryRequest, error)
	DeleteCategoryRequest(id uint) error
}

// FeedbackService 提供反馈和分类申请相关的服务
type FeedbackService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewFeedbackService 创建一个新的反馈服务
func NewFeedbackService(db *gorm.DB, cfg *config.Config) InterfaceFeedbackService {
	return &FeedbackService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllFeedback 获取反馈列表
func (s *FeedbackService) GetAllFeedback(page, limit int, status, feedbackType string) ([]models.Feedback, int64, error) {
	var items []models.Feedback
	var total int64

	query := s.DB.Model(&models.Feedback{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}
	if feedbackType != "" && feedbackType != "all" {
		query = query.Where("feedback_type = ?", feedbackType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// 2 ApproveFeedback 通过反馈
func (s *FeedbackService) ApproveFeedback(id uint) (*models.Feedback, error) {
	return s.settleFeedback(id, models.ReviewStatusApproved)
}

// 3 RejectFeedback 拒绝反馈，拒绝为终态
func (s *FeedbackService) RejectFeedback(id uint) (*models.Feedback, error) {
	return s.settleFeedback(id, models.ReviewStatusRejected)
}

// 4 DeleteFeedback 删除反馈
func (s *FeedbackService) DeleteFeedback(id uint) error {
	var item models.Feedback
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return s.DB.Delete(&models.Feedback{}, id).Error
}

// 5 GetAllCategoryRequests 获取分类申请列表
func (s *FeedbackService) GetAllCategoryRequests(page, limit int, status string) ([]models.CategoryRequest, int64, error) {
	var requests []models.CategoryRequest
	var total int64

	query := s.DB.Model(&models.CategoryRequest{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

// 6 ApproveCategoryRequest 通过分类申请并创建对应的正式分类，两步在同一事务中完成
func (s *FeedbackService) ApproveCategoryRequest(id uint) (*models.CategoryRequest, error) {
	var request models.CategoryRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryRequestNotFound
		}
		return nil, err
	}

	if models.IsReviewSettled(request.Status) {
		return nil, ErrCategoryRequestSettled
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 同名分类已存在时不重复创建，申请直接标记通过
		var count int64
		if err := tx.Model(&models.Category{}).Where("name = ?", request.Name).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			category := models.Category{
				Name:        request.Name,
				Description: request.Description,
				Status:      models.CategoryStatusActive,
			}
			if err := tx.Create(&category).Error; err != nil {
				return err
			}
		}

		return tx.Model(&request).Update("status", models.ReviewStatusApproved).Error
	})
	if err != nil {
		return nil, err
	}

	request.Status = models.ReviewStatusApproved
	return &request, nil
}

// 7 RejectCategoryRequest 拒绝分类申请
func (s *FeedbackService) RejectCategoryRequest(id uint) (*models.CategoryRequest, error) {
	var request models.CategoryRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryRequestNotFound
		}
		return nil, err
	}

	if models.IsReviewSettled(request.Status) {
		return nil, ErrCategoryRequestSettled
	}

	if err := s.DB.Model(&request).Update("status", models.ReviewStatusRejected).Error; err != nil {
		return nil, err
	}

	request.Status = models.ReviewStatusRejected
	return &request, nil
}

// 8 DeleteCategoryRequest 删除分类申请
func (s *FeedbackService) DeleteCategoryRequest(id uint) error {
	var request models.CategoryRequest
	if err := s.DB.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCategoryRequestNotFound
		}
		return err
	}
	return s.DB.Delete(&models.CategoryRequest{}, id).Error
}

// settleFeedback 推进反馈审核状态机
func (s *FeedbackService) settleFeedback(id uint, status string) (*models.Feedback, error) {
	var item models.Feedback
	if err := s.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	if models.IsReviewSettled(item.Status) {
		return nil, ErrFeedbackSettled
	}

	if err := s.DB.Model(&item).Update("status", status).Error; err != nil {
		return nil, err
	}

	item.Status = status
	return &item, nil
}
