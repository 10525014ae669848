package controllers

import (
	"errors"
	"strconv"

	"github.com/Zohaib521321/job-potal-admin/internal/app/middleware"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceSafetyAlertController 定义安全警示控制器接口
type InterfaceSafetyAlertController interface {
	GetAlerts()
	GetAlert()
	GetAlertStats()
	CreateAlert()
	UpdateAlert()
	PublishAlert()
	DeleteAlert()
}

// SafetyAlertController 求职安全警示控制器
type SafetyAlertController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSafetyAlertController 创建一个新的安全警示控制器
func NewSafetyAlertController(ctx *gin.Context, container *container.ServiceContainer) *SafetyAlertController {
	return &SafetyAlertController{
		Ctx:       ctx,
		Container: container,
	}
}

// SafetyAlertRequest 创建/更新安全警示请求
type SafetyAlertRequest struct {
	Title       string `json:"title" binding:"required" example:"Fake recruiter asking for fees"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" example:"high"`
	Status      string `json:"status" example:"draft"`
}

// PublishAlertRequest 警示状态变更请求
type PublishAlertRequest struct {
	Status string `json:"status" binding:"required" example:"published"`
}

// HandleSafetyAlertFunc 返回一个处理安全警示请求的Gin处理函数
func HandleSafetyAlertFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSafetyAlertController(ctx, container)

		switch method {
		case "getAlerts":
			controller.GetAlerts()
		case "getAlert":
			controller.GetAlert()
		case "getAlertStats":
			controller.GetAlertStats()
		case "createAlert":
			controller.CreateAlert()
		case "updateAlert":
			controller.UpdateAlert()
		case "publishAlert":
			controller.PublishAlert()
		case "deleteAlert":
			controller.DeleteAlert()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAlerts 获取安全警示列表
// @Summary      获取安全警示列表
// @Description  分页获取安全警示，按优先级和创建时间排序
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        status query string false "状态筛选: draft/published/archived"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /safety-alerts [get]
// @Security     BearerAuth
func (c *SafetyAlertController) GetAlerts() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	alerts, total, err := c.alertService().GetAllAlerts(page, limit, c.Ctx.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrSafetyAlertInvalidStatus) {
			response.Fail(c.Ctx, code.ErrSafetyAlertStatusInvalid, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, alerts, models.NewPagination(page, limit, total))
}

// 2. GetAlert 获取安全警示详情
// @Summary      获取安全警示详情
// @Description  根据ID获取安全警示
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Param        id path int true "警示ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /safety-alerts/{id} [get]
// @Security     BearerAuth
func (c *SafetyAlertController) GetAlert() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	alert, err := c.alertService().GetAlertByID(id)
	if err != nil {
		c.failAlert(err)
		return
	}

	response.Success(c.Ctx, alert)
}

// 3. GetAlertStats 获取安全警示统计
// @Summary      获取安全警示统计
// @Description  获取各状态下的警示数量汇总
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /safety-alerts/stats/summary [get]
// @Security     BearerAuth
func (c *SafetyAlertController) GetAlertStats() {
	stats, err := c.alertService().GetAlertStats()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, stats)
}

// 4. CreateAlert 创建安全警示
// @Summary      创建安全警示
// @Description  创建安全警示，默认为草稿状态
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Param        request body SafetyAlertRequest true "警示内容"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /safety-alerts [post]
// @Security     BearerAuth
func (c *SafetyAlertController) CreateAlert() {
	var req SafetyAlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Title and description are required")
		return
	}

	alert, err := c.alertService().CreateAlert(&services.SafetyAlertInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		c.failAlert(err)
		return
	}

	middleware.PurgeCacheByPrefix("/api/safety-alerts")
	response.Success(c.Ctx, alert)
}

// 5. UpdateAlert 更新安全警示
// @Summary      更新安全警示
// @Description  更新警示内容和优先级
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Param        id path int true "警示ID"
// @Param        request body SafetyAlertRequest true "更新的警示内容"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /safety-alerts/{id} [put]
// @Security     BearerAuth
func (c *SafetyAlertController) UpdateAlert() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req SafetyAlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Title and description are required")
		return
	}

	alert, err := c.alertService().UpdateAlert(id, &services.SafetyAlertInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Status:      req.Status,
	})
	if err != nil {
		c.failAlert(err)
		return
	}

	middleware.PurgeCacheByPrefix("/api/safety-alerts")
	response.Success(c.Ctx, alert)
}

// 6. PublishAlert 变更警示状态
// @Summary      变更警示状态
// @Description  发布、下线或归档警示，仅变更状态字段
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Param        id path int true "警示ID"
// @Param        request body PublishAlertRequest true "目标状态"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /safety-alerts/{id}/publish [put]
// @Security     BearerAuth
func (c *SafetyAlertController) PublishAlert() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req PublishAlertRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Target status is required")
		return
	}

	alert, err := c.alertService().UpdateAlertStatus(id, req.Status)
	if err != nil {
		c.failAlert(err)
		return
	}

	middleware.PurgeCacheByPrefix("/api/safety-alerts")
	response.Success(c.Ctx, alert)
}

// 7. DeleteAlert 删除安全警示
// @Summary      删除安全警示
// @Description  根据ID删除安全警示
// @Tags         SafetyAlert
// @Accept       json
// @Produce      json
// @Param        id path int true "警示ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /safety-alerts/{id} [delete]
// @Security     BearerAuth
func (c *SafetyAlertController) DeleteAlert() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	if err := c.alertService().DeleteAlert(id); err != nil {
		c.failAlert(err)
		return
	}

	middleware.PurgeCacheByPrefix("/api/safety-alerts")
	response.Success(c.Ctx, gin.H{"deleted": true})
}

// failAlert 把服务层错误映射为响应
func (c *SafetyAlertController) failAlert(err error) {
	switch {
	case errors.Is(err, services.ErrSafetyAlertNotFound):
		response.Fail(c.Ctx, code.ErrSafetyAlertNotFound, nil)
	case errors.Is(err, services.ErrSafetyAlertInvalidStatus):
		response.Fail(c.Ctx, code.ErrSafetyAlertStatusInvalid, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

func (c *SafetyAlertController) alertService() services.InterfaceSafetyAlertService {
	return c.Container.GetService("safety_alert").(services.InterfaceSafetyAlertService)
}
