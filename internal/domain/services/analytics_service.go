package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/pkg/logger"

	"gorm.io/gorm"
)

// 仪表盘总览缓存键和有效期
const (
	analyticsOverviewCacheKey = "analytics:overview"
	analyticsOverviewCacheTTL = 5 * time.Minute
)

// AnalyticsOverview 仪表盘总览数据
type AnalyticsOverview struct {
	TotalJobs               int64 `json:"total_jobs"`
	ActiveJobs              int64 `json:"active_jobs"`
	PendingJobs             int64 `json:"pending_jobs"`
	TotalCategories         int64 `json:"total_categories"`
	TotalSubscriptions      int64 `json:"total_subscriptions"`
	TotalUsers              int64 `json:"total_users"`
	PendingFeedback         int64 `json:"pending_feedback"`
	PendingContacts         int64 `json:"pending_contacts"`
	PendingCategoryRequests int64 `json:"pending_category_requests"`
	TotalViews              int64 `json:"total_views"`

	// 最近7天新增
	JobsThisWeek          int64 `json:"jobs_this_week"`
	SubscriptionsThisWeek int64 `json:"subscriptions_this_week"`
	FeedbackThisWeek      int64 `json:"feedback_this_week"`
}

// DailyCount 某一天的数量统计
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// CategoryJobCount 某分类下的职位数量
type CategoryJobCount struct {
	CategoryName string `json:"category_name"`
	Count        int64  `json:"count"`
}

// JobAnalytics 职位维度的分析数据
type JobAnalytics struct {
	ByStatus   map[string]int64   `json:"by_status"`
	ByType     map[string]int64   `json:"by_type"`
	ByCategory []CategoryJobCount `json:"by_category"`
	Trend      []DailyCount       `json:"trend"`
	TopViewed  []models.Job       `json:"top_viewed"`
}

// FeedbackAnalytics 反馈维度的分析数据
type FeedbackAnalytics struct {
	ByStatus map[string]int64 `json:"by_status"`
	ByType   map[string]int64 `json:"by_type"`
	Trend    []DailyCount     `json:"trend"`
}

// InterfaceAnalyticsService 数据分析服务接口
type InterfaceAnalyticsService interface {
	GetOverview(ctx context.Context) (*AnalyticsOverview, error)
	GetJobAnalytics() (*JobAnalytics, error)
	GetFeedbackAnalytics() (*FeedbackAnalytics, error)
}

// AnalyticsService 提供数据分析相关的服务
type AnalyticsService struct {
	DB     *gorm.DB
	Redis  InterfaceRedisService
	Config *config.Config
}

// NewAnalyticsService 创建一个新的数据分析服务
func NewAnalyticsService(db *gorm.DB, redisService InterfaceRedisService, cfg *config.Config) InterfaceAnalyticsService {
	return &AnalyticsService{
		DB:     db,
		Redis:  redisService,
		Config: cfg,
	}
}

// 1 GetOverview 获取仪表盘总览，优先读缓存
func (s *AnalyticsService) GetOverview(ctx context.Context) (*AnalyticsOverview, error) {
	overview := &AnalyticsOverview{}

	if s.Redis != nil {
		hit, err := s.Redis.Get(ctx, analyticsOverviewCacheKey, overview)
		if err != nil {
			logger.Warning("读取总览缓存失败: %v", err)
		} else if hit {
			return overview, nil
		}
	}

	if err := s.DB.Model(&models.Job{}).Count(&overview.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive).Count(&overview.ActiveJobs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusPending).Count(&overview.PendingJobs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Category{}).Count(&overview.TotalCategories).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Subscription{}).Where("is_active = ?", true).Count(&overview.TotalSubscriptions).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.User{}).Count(&overview.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Feedback{}).Where("status = ?", models.ReviewStatusPending).Count(&overview.PendingFeedback).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.ContactMessage{}).Where("status = ?", models.ReviewStatusPending).Count(&overview.PendingContacts).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Model(&models.CategoryRequest{}).Where("status = ?", models.ReviewStatusPending).Count(&overview.PendingCategoryRequests).Error; err != nil {
		return nil, err
	}

	var totalViews *int64
	if err := s.DB.Model(&models.Job{}).Select("SUM(views)").Scan(&totalViews).Error; err != nil {
		return nil, err
	}
	if totalViews != nil {
		overview.TotalViews = *totalViews
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	if err := s.DB.Model(&models.Job{}).Where("created_at >= ?", weekAgo).Count(&overview.JobsThisWeek).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Subscription{}).Where("created_at >= ?", weekAgo).Count(&overview.SubscriptionsThisWeek).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Feedback{}).Where("created_at >= ?", weekAgo).Count(&overview.FeedbackThisWeek).Error; err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if err := s.Redis.Set(ctx, analyticsOverviewCacheKey, overview, analyticsOverviewCacheTTL); err != nil {
			logger.Warning("写入总览缓存失败: %v", err)
		}
	}

	return overview, nil
}

// 2 GetJobAnalytics 获取职位分析数据，趋势取最近14天
func (s *AnalyticsService) GetJobAnalytics() (*JobAnalytics, error) {
	analytics := &JobAnalytics{}

	var err error
	analytics.ByStatus, err = s.groupCount(&models.Job{}, "status")
	if err != nil {
		return nil, err
	}
	analytics.ByType, err = s.groupCount(&models.Job{}, "job_type")
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Job{}).
		Select("COALESCE(categories.name, 'Uncategorized') AS category_name, COUNT(*) AS count").
		Joins("LEFT JOIN categories ON categories.id = jobs.category_id").
		Group("categories.name").
		Order("count DESC").
		Scan(&analytics.ByCategory).Error
	if err != nil {
		return nil, err
	}

	analytics.Trend, err = s.dailyTrend(&models.Job{}, 14)
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&models.Job{}).
		Order("views DESC").
		Limit(10).
		Find(&analytics.TopViewed).Error
	if err != nil {
		return nil, err
	}

	return analytics, nil
}

// 3 GetFeedbackAnalytics 获取反馈分析数据，趋势取最近14天
func (s *AnalyticsService) GetFeedbackAnalytics() (*FeedbackAnalytics, error) {
	analytics := &FeedbackAnalytics{}

	var err error
	analytics.ByStatus, err = s.groupCount(&models.Feedback{}, "status")
	if err != nil {
		return nil, err
	}
	analytics.ByType, err = s.groupCount(&models.Feedback{}, "feedback_type")
	if err != nil {
		return nil, err
	}

	analytics.Trend, err = s.dailyTrend(&models.Feedback{}, 14)
	if err != nil {
		return nil, err
	}

	return analytics, nil
}

// groupCount 按某一列分组计数
func (s *AnalyticsService) groupCount(model interface{}, column string) (map[string]int64, error) {
	type row struct {
		Value string
		Count int64
	}
	var rows []row
	err := s.DB.Model(model).
		Select(fmt.Sprintf("%s AS value, COUNT(*) AS count", column)).
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, r := range rows {
		result[r.Value] = r.Count
	}
	return result, nil
}

// dailyTrend 统计最近 days 天每天的新增数量，缺失的日期补零
func (s *AnalyticsService) dailyTrend(model interface{}, days int) ([]DailyCount, error) {
	since := time.Now().AddDate(0, 0, -(days - 1)).Truncate(24 * time.Hour)

	var rows []DailyCount
	err := s.DB.Model(model).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Date] = r.Count
	}

	trend := make([]DailyCount, 0, days)
	for i := 0; i < days; i++ {
		date := since.AddDate(0, 0, i).Format("2006-01-02")
		trend = append(trend, DailyCount{Date: date, Count: counts[date]})
	}
	return trend, nil
}
