package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrUserNotFound 用户不存在
var ErrUserNotFound = errors.New("user not found")

// UserDetail 用户详情，包含简历和求职信
type UserDetail struct {
	User         models.User          `json:"user"`
	Resumes      []models.Resume      `json:"resumes"`
	CoverLetters []models.CoverLetter `json:"coverLetters"`
}

// InterfaceUserService 注册用户服务接口。
// 用户在前台网站注册，后台负责审查其上传的简历内容
type InterfaceUserService interface {
	GetAllUsers(page, limit int, search string) ([]models.User, int64, error)
	GetUserDetail(id uint) (*UserDetail, error)
	DeleteUser(id uint) error
}

// UserService 提供注册用户相关的服务
type UserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewUserService 创建一个新的用户服务
func NewUserService(db *gorm.DB, cfg *config.Config) InterfaceUserService {
	return &UserService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllUsers 获取用户列表，附带简历和求职信数量
func (s *UserService) GetAllUsers(page, limit int, search string) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	query := s.DB.Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR full_name LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	if len(users) == 0 {
		return users, total, nil
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	type userCount struct {
		UserID uint
		Count  int64
	}

	var resumeCounts []userCount
	err := s.DB.Model(&models.Resume{}).
		Select("user_id, COUNT(*) AS count").
		Where("user_id IN ?", ids).
		Group("user_id").
		Scan(&resumeCounts).Error
	if err != nil {
		return nil, 0, err
	}

	var coverLetterCounts []userCount
	err = s.DB.Model(&models.CoverLetter{}).
		Select("user_id, COUNT(*) AS count").
		Where("user_id IN ?", ids).
		Group("user_id").
		Scan(&coverLetterCounts).Error
	if err != nil {
		return nil, 0, err
	}

	resumeMap := make(map[uint]int64, len(resumeCounts))
	for _, c := range resumeCounts {
		resumeMap[c.UserID] = c.Count
	}
	coverLetterMap := make(map[uint]int64, len(coverLetterCounts))
	for _, c := range coverLetterCounts {
		coverLetterMap[c.UserID] = c.Count
	}

	for i := range users {
		users[i].ResumeCount = resumeMap[users[i].ID]
		users[i].CoverLetterCount = coverLetterMap[users[i].ID]
	}

	return users, total, nil
}

// 2 GetUserDetail 获取用户详情以及其全部简历和求职信
func (s *UserService) GetUserDetail(id uint) (*UserDetail, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	detail := &UserDetail{User: user}

	err := s.DB.Where("user_id = ?", id).
		Order("created_at DESC").
		Find(&detail.Resumes).Error
	if err != nil {
		return nil, err
	}

	err = s.DB.Where("user_id = ?", id).
		Order("created_at DESC").
		Find(&detail.CoverLetters).Error
	if err != nil {
		return nil, err
	}

	detail.User.ResumeCount = int64(len(detail.Resumes))
	detail.User.CoverLetterCount = int64(len(detail.CoverLetters))

	return detail, nil
}

// 3 DeleteUser 删除用户及其名下的简历和求职信
func (s *UserService) DeleteUser(id uint) error {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Resume{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.CoverLetter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
