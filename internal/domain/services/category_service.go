package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/utils"

	"gorm.io/gorm"
)

// 分类服务的业务错误
var (
	ErrCategoryNotFound       = errors.New("category not found")
	ErrCategoryAlreadyExist   = errors.New("category already exists")
	ErrCategoryHasSubscribers = errors.New("category has active subscribers")
)

// CategoryInput 创建/更新分类的输入
type CategoryInput struct {
	Name        string
	Description string
	Icon        string
	Status      string
}

// InterfaceCategoryService 分类服务接口
type InterfaceCategoryService interface {
	GetAllCategories(status string) ([]models.Category, error)
	GetCategoryByID(id uint) (*models.Category, error)
	CreateCategory(input CategoryInput) (*models.Category, error)
	UpdateCategory(id uint, input CategoryInput) (*models.Category, error)
	DeleteCategory(id uint) error
	GetSubscribers(id uint) ([]models.Subscription, error)
}

// CategoryService 提供分类相关的服务
type CategoryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCategoryService 创建一个新的分类服务
func NewCategoryService(db *gorm.DB, cfg *config.Config) InterfaceCategoryService {
	return &CategoryService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllCategories 获取分类列表，职位数和订阅数为读取时计算的聚合值
func (s *CategoryService) GetAllCategories(status string) ([]models.Category, error) {
	var categories []models.Category

	query := s.DB.Model(&models.Category{})
	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	if err := query.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return categories, nil
	}

	// 单次分组查询填充聚合字段，避免N+1
	type idCount struct {
		CategoryID uint
		Count      int64
	}

	var jobCounts []idCount
	if err := s.DB.Model(&models.Job{}).
		Select("category_id, COUNT(*) as count").
		Where("category_id IS NOT NULL").
		Group("category_id").
		Scan(&jobCounts).Error; err != nil {
		return nil, err
	}

	var subCounts []idCount
	if err := s.DB.Model(&models.Subscription{}).
		Select("category_id, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("category_id").
		Scan(&subCounts).Error; err != nil {
		return nil, err
	}

	jobByID := make(map[uint]int64, len(jobCounts))
	for _, c := range jobCounts {
		jobByID[c.CategoryID] = c.Count
	}
	subByID := make(map[uint]int64, len(subCounts))
	for _, c := range subCounts {
		subByID[c.CategoryID] = c.Count
	}

	for i := range categories {
		categories[i].JobCount = jobByID[categories[i].ID]
		categories[i].SubscriberCount = subByID[categories[i].ID]
	}

	return categories, nil
}

// 2 GetCategoryByID 根据ID获取分类
func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

// 3 CreateCategory 创建分类
func (s *CategoryService) CreateCategory(input CategoryInput) (*models.Category, error) {
	utils.SanitizeFields(&input.Name, &input.Description, &input.Icon)

	var count int64
	if err := s.DB.Model(&models.Category{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryAlreadyExist
	}

	status := input.Status
	if status == "" {
		status = models.CategoryStatusActive
	}

	category := models.Category{
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		Status:      status,
	}

	if err := s.DB.Create(&category).Error; err != nil {
		return nil, err
	}

	return &category, nil
}

// 4 UpdateCategory 更新分类
func (s *CategoryService) UpdateCategory(id uint, input CategoryInput) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	utils.SanitizeFields(&input.Name, &input.Description, &input.Icon)

	var count int64
	if err := s.DB.Model(&models.Category{}).
		Where("name = ? AND id != ?", input.Name, category.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrCategoryAlreadyExist
	}

	updates := map[string]interface{}{
		"name":        input.Name,
		"description": input.Description,
		"icon":        input.Icon,
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}

	if err := s.DB.Model(category).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetCategoryByID(id)
}

// 5 DeleteCategory 删除分类，仍有活跃订阅者的分类不允许删除
func (s *CategoryService) DeleteCategory(id uint) error {
	if _, err := s.GetCategoryByID(id); err != nil {
		return err
	}

	var subscriberCount int64
	if err := s.DB.Model(&models.Subscription{}).
		Where("category_id = ? AND is_active = ?", id, true).
		Count(&subscriberCount).Error; err != nil {
		return err
	}
	if subscriberCount > 0 {
		return ErrCategoryHasSubscribers
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		// 该分类下的职位保留，只解除关联
		if err := tx.Model(&models.Job{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, id).Error
	})
}

// 6 GetSubscribers 获取某分类的订阅者列表
func (s *CategoryService) GetSubscribers(id uint) ([]models.Subscription, error) {
	if _, err := s.GetCategoryByID(id); err != nil {
		return nil, err
	}

	var subscriptions []models.Subscription
	if err := s.DB.Where("category_id = ?", id).
		Order("created_at DESC").
		Find(&subscriptions).Error; err != nil {
		return nil, err
	}

	return subscriptions, nil
}
