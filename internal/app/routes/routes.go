package routes

import (
	"time"

	_ "github.com/Zohaib521321/job-potal-admin/docs"
	"github.com/Zohaib521321/job-potal-admin/internal/app/controllers"
	"github.com/Zohaib521321/job-potal-admin/internal/app/middleware"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 初始化并返回配置好的路由
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// 初始化 Gin
	r := gin.Default()

	// 添加 CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, Accept, Origin, Cache-Control, X-Requested-With, x-api-key")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})
	// 设置正确的Content-Type，确保UTF-8编码
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json; charset=utf-8")
		c.Next()
	})
	// 创建服务容器
	serviceContainer := container.NewServiceContainer(db, cfg)
	// 初始化中间件
	middleware.InitAuthMiddleware(cfg, db)
	// 添加 Swagger 文档路由
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册路由
	registerRoutes(r, serviceContainer, cfg)
	return r
}

// registerRoutes 配置所有API路由
func registerRoutes(
	r *gin.Engine,
	container *container.ServiceContainer,
	cfg *config.Config,
) {
	// API 路由根路径，所有请求先校验部署标识
	api := r.Group("/api")
	api.Use(middleware.APIKeyAuth(cfg))

	// 注册公共路由
	registerPublicRoutes(api, container)
	// 注册需要认证的路由
	registerAuthenticatedRoutes(api, container)
	// 注册超级管理员路由
	registerSuperAdminRoutes(api, container)
}

// registerPublicRoutes 注册公共路由
func registerPublicRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	// 健康检查路由
	api.GET("/ping", controllers.HandleHealthFunc(container, "ping"))
	api.GET("/health", controllers.HandleHealthFunc(container, "ping")) // 兼容Docker健康检查
	api.GET("/health/status", controllers.HandleHealthFunc(container, "status"))

	// 登录接口按 IP+路径 组合限流，防止暴力破解
	api.POST("/auth/login",
		middleware.CombinedRateLimiter(1, 5),
		controllers.HandleAuthFunc(container, "login"))
}

// registerAuthenticatedRoutes 注册需要登录的路由
func registerAuthenticatedRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	authenticated := api.Group("")
	authenticated.Use(middleware.IPRateLimiter(10, 20))
	authenticated.Use(middleware.AuthenticateAdmin())

	// 认证
	authenticated.GET("/auth/verify", controllers.HandleAuthFunc(container, "verify"))

	// 职位
	jobGroup := authenticated.Group("/jobs")
	jobGroup.GET("", middleware.Cache(), controllers.HandleJobFunc(container, "getJobs"))
	jobGroup.GET("/stats/summary", controllers.HandleJobFunc(container, "getJobStats"))
	jobGroup.GET("/:id", controllers.HandleJobFunc(container, "getJob"))
	jobGroup.POST("", controllers.HandleJobFunc(container, "createJob"))
	jobGroup.POST("/ai-intake", controllers.HandleJobFunc(container, "aiIntake"))
	jobGroup.PUT("/:id", controllers.HandleJobFunc(container, "updateJob"))
	jobGroup.DELETE("/:id", controllers.HandleJobFunc(container, "deleteJob"))

	// 分类
	categoryGroup := authenticated.Group("/categories")
	categoryGroup.GET("", middleware.Cache(), controllers.HandleCategoryFunc(container, "getCategories"))
	categoryGroup.GET("/:id", controllers.HandleCategoryFunc(container, "getCategory"))
	categoryGroup.GET("/:id/subscribers", controllers.HandleCategoryFunc(container, "getSubscribers"))
	categoryGroup.POST("", controllers.HandleCategoryFunc(container, "createCategory"))
	categoryGroup.PUT("/:id", controllers.HandleCategoryFunc(container, "updateCategory"))
	categoryGroup.DELETE("/:id", controllers.HandleCategoryFunc(container, "deleteCategory"))

	// 联系留言
	contactGroup := authenticated.Group("/contact")
	contactGroup.GET("", controllers.HandleContactFunc(container, "getMessages"))
	contactGroup.PUT("/:id/approve", controllers.HandleContactFunc(container, "approveMessage"))
	contactGroup.PUT("/:id/reject", controllers.HandleContactFunc(container, "rejectMessage"))
	contactGroup.DELETE("/:id", controllers.HandleContactFunc(container, "deleteMessage"))

	// 用户反馈
	feedbackGroup := authenticated.Group("/feedback")
	feedbackGroup.GET("", controllers.HandleFeedbackFunc(container, "getFeedback"))
	feedbackGroup.PUT("/:id/approve", controllers.HandleFeedbackFunc(container, "approveFeedback"))
	feedbackGroup.PUT("/:id/reject", controllers.HandleFeedbackFunc(container, "rejectFeedback"))
	feedbackGroup.DELETE("/:id", controllers.HandleFeedbackFunc(container, "deleteFeedback"))

	// 分类申请
	categoryRequestGroup := authenticated.Group("/category-requests")
	categoryRequestGroup.GET("", controllers.HandleFeedbackFunc(container, "getCategoryRequests"))
	categoryRequestGroup.PUT("/:id/approve", controllers.HandleFeedbackFunc(container, "approveCategoryRequest"))
	categoryRequestGroup.PUT("/:id/reject", controllers.HandleFeedbackFunc(container, "rejectCategoryRequest"))
	categoryRequestGroup.DELETE("/:id", controllers.HandleFeedbackFunc(container, "deleteCategoryRequest"))

	// 职位提醒订阅
	subscriptionGroup := authenticated.Group("/job-alerts/subscriptions")
	subscriptionGroup.GET("", controllers.HandleSubscriptionFunc(container, "getSubscriptions"))
	subscriptionGroup.DELETE("/:id", controllers.HandleSubscriptionFunc(container, "deleteSubscription"))

	// 安全警示
	safetyGroup := authenticated.Group("/safety-alerts")
	safetyGroup.GET("", middleware.Cache(), controllers.HandleSafetyAlertFunc(container, "getAlerts"))
	safetyGroup.GET("/stats/summary", controllers.HandleSafetyAlertFunc(container, "getAlertStats"))
	safetyGroup.GET("/:id", controllers.HandleSafetyAlertFunc(container, "getAlert"))
	safetyGroup.POST("", controllers.HandleSafetyAlertFunc(container, "createAlert"))
	safetyGroup.PUT("/:id", controllers.HandleSafetyAlertFunc(container, "updateAlert"))
	safetyGroup.PUT("/:id/publish", controllers.HandleSafetyAlertFunc(container, "publishAlert"))
	safetyGroup.DELETE("/:id", controllers.HandleSafetyAlertFunc(container, "deleteAlert"))

	// 数据分析
	analyticsGroup := authenticated.Group("/analytics")
	analyticsGroup.GET("/overview", controllers.HandleAnalyticsFunc(container, "getOverview"))
	analyticsGroup.GET("/jobs", middleware.Cache(middleware.CacheConfig{Expiration: 2 * time.Minute}), controllers.HandleAnalyticsFunc(container, "getJobAnalytics"))
	analyticsGroup.GET("/feedback", middleware.Cache(middleware.CacheConfig{Expiration: 2 * time.Minute}), controllers.HandleAnalyticsFunc(container, "getFeedbackAnalytics"))

	// AI 文本生成接口单独限流，上游配额有限
	aiGroup := authenticated.Group("/ai")
	aiGroup.Use(middleware.CombinedRateLimiter(1, 3))
	aiGroup.POST("/generateContent", controllers.HandleAIFunc(container, "generateContent"))
}

// registerSuperAdminRoutes 注册仅超级管理员可访问的路由
func registerSuperAdminRoutes(
	api *gin.RouterGroup,
	container *container.ServiceContainer,
) {
	superAdmin := api.Group("")
	superAdmin.Use(middleware.IPRateLimiter(10, 20))
	superAdmin.Use(middleware.AuthenticateSuperAdmin())

	// 管理员账户
	adminGroup := superAdmin.Group("/admins")
	adminGroup.GET("", controllers.HandleAdminFunc(container, "getAdmins"))
	adminGroup.GET("/:id", controllers.HandleAdminFunc(container, "getAdmin"))
	adminGroup.POST("", controllers.HandleAdminFunc(container, "createAdmin"))
	adminGroup.PUT("/:id", controllers.HandleAdminFunc(container, "updateAdmin"))
	adminGroup.DELETE("/:id", controllers.HandleAdminFunc(container, "deleteAdmin"))

	// 注册用户
	userGroup := superAdmin.Group("/users")
	userGroup.GET("", controllers.HandleUserFunc(container, "getUsers"))
	userGroup.GET("/:id", controllers.HandleUserFunc(container, "getUser"))
	userGroup.DELETE("/:id", controllers.HandleUserFunc(container, "deleteUser"))

	// 平台配置
	settingsGroup := superAdmin.Group("/settings")
	settingsGroup.GET("", controllers.HandleSettingsFunc(container, "getSettings"))
	settingsGroup.GET("/detailed", controllers.HandleSettingsFunc(container, "getSettingsDetailed"))
	settingsGroup.PUT("", controllers.HandleSettingsFunc(container, "updateSettings"))
}
