package controllers

import (
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAnalyticsController 定义数据分析控制器接口
type InterfaceAnalyticsController interface {
	GetOverview()
	GetJobAnalytics()
	GetFeedbackAnalytics()
}

// AnalyticsController 数据分析控制器
type AnalyticsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAnalyticsController 创建一个新的数据分析控制器
func NewAnalyticsController(ctx *gin.Context, container *container.ServiceContainer) *AnalyticsController {
	return &AnalyticsController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleAnalyticsFunc 返回一个处理数据分析请求的Gin处理函数
func HandleAnalyticsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAnalyticsController(ctx, container)

		switch method {
		case "getOverview":
			controller.GetOverview()
		case "getJobAnalytics":
			controller.GetJobAnalytics()
		case "getFeedbackAnalytics":
			controller.GetFeedbackAnalytics()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetOverview 获取仪表盘总览
// @Summary      获取仪表盘总览
// @Description  获取职位、分类、反馈等核心计数和最近7天新增
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /analytics/overview [get]
// @Security     BearerAuth
func (c *AnalyticsController) GetOverview() {
	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)
	overview, err := analyticsService.GetOverview(c.Ctx.Request.Context())
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, overview)
}

// 2. GetJobAnalytics 获取职位分析
// @Summary      获取职位分析
// @Description  按状态、类型、分类统计职位，含最近14天趋势和浏览量排行
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /analytics/jobs [get]
// @Security     BearerAuth
func (c *AnalyticsController) GetJobAnalytics() {
	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)
	analytics, err := analyticsService.GetJobAnalytics()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, analytics)
}

// 3. GetFeedbackAnalytics 获取反馈分析
// @Summary      获取反馈分析
// @Description  按状态和类型统计反馈，含最近14天趋势
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /analytics/feedback [get]
// @Security     BearerAuth
func (c *AnalyticsController) GetFeedbackAnalytics() {
	analyticsService := c.Container.GetService("analytics").(services.InterfaceAnalyticsService)
	analytics, err := analyticsService.GetFeedbackAnalytics()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, analytics)
}
