package container

import (
	"sync"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ServiceContainer 管理所有服务的依赖注入
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	// 基础服务
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// 业务服务
	adminService        services.InterfaceAdminService
	jobService          services.InterfaceJobService
	categoryService     services.InterfaceCategoryService
	contactService      services.InterfaceContactService
	feedbackService     services.InterfaceFeedbackService
	subscriptionService services.InterfaceSubscriptionService
	safetyAlertService  services.InterfaceSafetyAlertService
	userService         services.InterfaceUserService
	settingsService     services.InterfaceSettingsService

	// 分析与 AI 服务
	analyticsService services.InterfaceAnalyticsService
	aiService        services.InterfaceAIService

	mu sync.RWMutex
}

// NewServiceContainer 创建新的服务容器
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("数据库连接为空")
	}
	if cfg == nil {
		panic("配置为空")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices 初始化所有服务
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	// 初始化基础服务
	c.jwtService = services.NewJWTService(c.config, c.db)
	c.redisService = services.NewRedisService(c.config)

	// 初始化业务服务
	c.adminService = services.NewAdminService(c.db, c.config)
	c.jobService = services.NewJobService(c.db, c.config)
	c.categoryService = services.NewCategoryService(c.db, c.config)
	c.contactService = services.NewContactService(c.db, c.config)
	c.feedbackService = services.NewFeedbackService(c.db, c.config)
	c.subscriptionService = services.NewSubscriptionService(c.db, c.config)
	c.safetyAlertService = services.NewSafetyAlertService(c.db, c.config)
	c.userService = services.NewUserService(c.db, c.config)
	c.settingsService = services.NewSettingsService(c.db, c.config)

	// 初始化分析与AI服务
	c.analyticsService = services.NewAnalyticsService(c.db, c.redisService, c.config)
	c.aiService = services.NewAIService(c.db, c.config)
}

// GetService 获取指定名称的服务
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "admin":
		return c.adminService
	case "job":
		return c.jobService
	case "category":
		return c.categoryService
	case "contact":
		return c.contactService
	case "feedback":
		return c.feedbackService
	case "subscription":
		return c.subscriptionService
	case "safety_alert":
		return c.safetyAlertService
	case "user":
		return c.userService
	case "settings":
		return c.settingsService
	case "analytics":
		return c.analyticsService
	case "ai":
		return c.aiService
	default:
		return nil
	}
}

// GetDB 获取数据库连接
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}
