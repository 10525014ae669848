package services

import (
	"errors"
	"fmt"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/utils"

	"gorm.io/gorm"
)

// 管理员服务的业务错误
var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAdminAlreadyExist = errors.New("admin already exists")
	ErrLastSuperAdmin    = errors.New("cannot delete the last super admin")
)

// InterfaceAdminService Admin服务接口
type InterfaceAdminService interface {
	GetAllAdmins(page, limit int, search string) ([]models.Admin, int64, error)
	GetAdminByID(id uint) (*models.Admin, error)
	CreateAdmin(username, email, password, role string) (*models.Admin, error)
	UpdateAdmin(id uint, username, email, password, role string) (*models.Admin, error)
	DeleteAdmin(id uint) error
}

// AdminService 提供管理员账户相关的服务
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService 创建一个新的管理员服务
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllAdmins 获取所有管理员，支持分页和搜索
func (s *AdminService) GetAllAdmins(page, limit int, search string) ([]models.Admin, int64, error) {
	var admins []models.Admin
	var total int64

	query := s.DB.Model(&models.Admin{})

	if search != "" {
		query = query.Where("username LIKE ? OR email LIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&admins).Error; err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// 2 GetAdminByID 根据ID获取管理员
func (s *AdminService) GetAdminByID(id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := s.DB.First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// 3 CreateAdmin 创建新管理员
func (s *AdminService) CreateAdmin(username, email, password, role string) (*models.Admin, error) {
	// 验证用户名和邮箱唯一性
	var count int64
	if err := s.DB.Model(&models.Admin{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminAlreadyExist
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("密码加密失败: %v", err)
	}

	admin := models.Admin{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}

	if err := s.DB.Create(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

// 4 UpdateAdmin 更新管理员信息。password为空串表示不修改密码
func (s *AdminService) UpdateAdmin(id uint, username, email, password, role string) (*models.Admin, error) {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	// 如果更新用户名或邮箱，需要检查唯一性
	var count int64
	if err := s.DB.Model(&models.Admin{}).
		Where("(username = ? OR email = ?) AND id != ?", username, email, admin.ID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminAlreadyExist
	}

	updates := map[string]interface{}{
		"username": username,
		"email":    email,
		"role":     role,
	}

	// 编辑时留空密码字段表示保持原密码不变
	if password != "" {
		hashedPassword, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("密码加密失败: %v", err)
		}
		updates["password"] = hashedPassword
	}

	if err := s.DB.Model(admin).Updates(updates).Error; err != nil {
		return nil, err
	}

	return s.GetAdminByID(id)
}

// 5 DeleteAdmin 删除管理员，系统中最后一个超级管理员不允许删除
func (s *AdminService) DeleteAdmin(id uint) error {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return err
	}

	if admin.IsSuperAdmin() {
		var superCount int64
		if err := s.DB.Model(&models.Admin{}).
			Where("role = ?", models.RoleSuperAdmin).
			Count(&superCount).Error; err != nil {
			return err
		}
		if superCount <= 1 {
			return ErrLastSuperAdmin
		}
	}

	return s.DB.Delete(&models.Admin{}, id).Error
}
