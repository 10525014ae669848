package services

import (
	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InterfaceSettingsService 平台配置服务接口，键值对存储
type InterfaceSettingsService interface {
	GetAllSettings() (map[string]string, error)
	GetAllSettingRows() ([]models.Setting, error)
	UpdateSettings(values map[string]string) (map[string]string, error)
}

// SettingsService 提供平台配置相关的服务
type SettingsService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSettingsService 创建一个新的平台配置服务
func NewSettingsService(db *gorm.DB, cfg *config.Config) InterfaceSettingsService {
	return &SettingsService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllSettings 获取全部配置项
func (s *SettingsService) GetAllSettings() (map[string]string, error) {
	var settings []models.Setting
	if err := s.DB.Find(&settings).Error; err != nil {
		return nil, err
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.SettingKey] = setting.SettingValue
	}
	return result, nil
}

// 2 GetAllSettingRows 获取全部配置项原始记录，带更新时间
func (s *SettingsService) GetAllSettingRows() ([]models.Setting, error) {
	var settings []models.Setting
	if err := s.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// 3 UpdateSettings 批量更新配置项，不存在的键自动创建
func (s *SettingsService) UpdateSettings(values map[string]string) (map[string]string, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		for key, value := range values {
			setting := models.Setting{SettingKey: key, SettingValue: value}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "setting_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"setting_value"}),
			}).Create(&setting).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetAllSettings()
}
