package services

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/utils"

	"gorm.io/gorm"
)

// 职位服务的业务错误
var (
	ErrJobNotFound      = errors.New("job not found")
	ErrJobInvalidStatus = errors.New("invalid job status")
)

// JobListFilter 职位列表的筛选条件
type JobListFilter struct {
	Page     int
	Limit    int
	Status   string // pending/active/closed，"all"或空表示不过滤
	Category uint   // 分类ID，0表示不过滤
	Search   string // 标题、公司名、地点模糊匹配
}

// JobInput 创建职位的输入
type JobInput struct {
	Title        string
	CompanyName  string
	Location     string
	JobType      string
	SalaryRange  string
	Status       string
	Priority     string
	CategoryID   *uint
	Description  string
	ContactEmail string
	Whatsapp     string
	ApplyLink    string
}

// JobStats 按状态统计的职位数量
type JobStats struct {
	Total   int64 `json:"total"`
	Pending int64 `json:"pending"`
	Active  int64 `json:"active"`
	Closed  int64 `json:"closed"`
}

// InterfaceJobService 职位服务接口
type InterfaceJobService interface {
	GetAllJobs(filter JobListFilter) ([]models.Job, int64, error)
	GetJobByID(id uint) (*models.Job, error)
	GetJobStats() (*JobStats, error)
	CreateJob(input JobInput) (*models.Job, error)
	UpdateJob(id uint, updates map[string]interface{}) (*models.Job, error)
	DeleteJob(id uint) error
}

// JobService 提供职位相关的服务
type JobService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewJobService 创建一个新的职位服务
func NewJobService(db *gorm.DB, cfg *config.Config) InterfaceJobService {
	return &JobService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetAllJobs 获取职位列表，高优先级职位排在前面
func (s *JobService) GetAllJobs(filter JobListFilter) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	query := s.DB.Model(&models.Job{})

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Category > 0 {
		query = query.Where("category_id = ?", filter.Category)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR company_name LIKE ? OR location LIKE ?", like, like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Preload("Category").
		Order("FIELD(priority, 'high', 'medium', 'normal', 'low'), created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// 2 GetJobByID 根据ID获取职位
func (s *JobService) GetJobByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("Category").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// 3 GetJobStats 按状态统计职位数量
func (s *JobService) GetJobStats() (*JobStats, error) {
	stats := &JobStats{}

	if err := s.DB.Model(&models.Job{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	type statusCount struct {
		Status string
		Count  int64
	}
	var counts []statusCount
	if err := s.DB.Model(&models.Job{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}

	for _, c := range counts {
		switch c.Status {
		case models.JobStatusPending:
			stats.Pending = c.Count
		case models.JobStatusActive:
			stats.Active = c.Count
		case models.JobStatusClosed:
			stats.Closed = c.Count
		}
	}

	return stats, nil
}

// 4 CreateJob 创建职位，slug由标题生成，冲突时附加随机后缀
func (s *JobService) CreateJob(input JobInput) (*models.Job, error) {
	// 入库前剥离HTML标签
	utils.SanitizeFields(&input.Title, &input.CompanyName, &input.Location,
		&input.SalaryRange, &input.Description, &input.ContactEmail,
		&input.Whatsapp, &input.ApplyLink)

	if input.Status == "" {
		input.Status = models.JobStatusPending
	}
	if input.Priority == "" {
		input.Priority = models.JobPriorityNormal
	}
	if input.JobType == "" {
		input.JobType = models.JobTypeFullTime
	}
	if !models.IsValidJobStatus(input.Status) || !models.IsValidJobPriority(input.Priority) ||
		!models.IsValidJobType(input.JobType) {
		return nil, ErrJobInvalidStatus
	}

	slug, err := s.resolveSlug(utils.Slugify(input.Title))
	if err != nil {
		return nil, err
	}

	job := models.Job{
		Slug:         slug,
		Title:        input.Title,
		CompanyName:  input.CompanyName,
		Location:     input.Location,
		JobType:      input.JobType,
		SalaryRange:  input.SalaryRange,
		Status:       input.Status,
		Priority:     input.Priority,
		CategoryID:   input.CategoryID,
		Description:  input.Description,
		ContactEmail: input.ContactEmail,
		Whatsapp:     input.Whatsapp,
		ApplyLink:    input.ApplyLink,
	}

	if err := s.DB.Create(&job).Error; err != nil {
		return nil, err
	}

	return s.GetJobByID(job.ID)
}

// jobEditableColumns 部分更新允许写入的列，
// slug、views、时间戳由服务端维护，不接受外部写入
var jobEditableColumns = map[string]bool{
	"title":         true,
	"company_name":  true,
	"location":      true,
	"job_type":      true,
	"salary_range":  true,
	"status":        true,
	"priority":      true,
	"category_id":   true,
	"description":   true,
	"contact_email": true,
	"whatsapp":      true,
	"apply_link":    true,
}

// 5 UpdateJob 部分更新职位：只写入调用方提供的可编辑字段，
// 行内状态切换只传 {"status": ...} 时不会影响其他字段
func (s *JobService) UpdateJob(id uint, updates map[string]interface{}) (*models.Job, error) {
	job, err := s.GetJobByID(id)
	if err != nil {
		return nil, err
	}

	filtered := make(map[string]interface{}, len(updates))
	for key, value := range updates {
		if jobEditableColumns[key] {
			filtered[key] = value
		}
	}
	updates = filtered

	if status, ok := updates["status"].(string); ok && !models.IsValidJobStatus(status) {
		return nil, ErrJobInvalidStatus
	}
	if priority, ok := updates["priority"].(string); ok && !models.IsValidJobPriority(priority) {
		return nil, ErrJobInvalidStatus
	}
	if jobType, ok := updates["job_type"].(string); ok && !models.IsValidJobType(jobType) {
		return nil, ErrJobInvalidStatus
	}

	// 字符串字段同样剥离HTML
	for key, value := range updates {
		if str, ok := value.(string); ok && key != "status" && key != "priority" && key != "job_type" {
			updates[key] = utils.StripHTML(str)
		}
	}

	if len(updates) > 0 {
		if err := s.DB.Model(job).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetJobByID(id)
}

// 6 DeleteJob 删除职位
func (s *JobService) DeleteJob(id uint) error {
	if _, err := s.GetJobByID(id); err != nil {
		return err
	}
	return s.DB.Delete(&models.Job{}, id).Error
}

// resolveSlug 保证slug唯一
func (s *JobService) resolveSlug(slug string) (string, error) {
	var count int64
	if err := s.DB.Model(&models.Job{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return utils.UniqueSlug(slug), nil
	}
	return slug, nil
}
