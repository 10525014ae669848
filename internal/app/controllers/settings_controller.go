package controllers

import (
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceSettingsController 定义平台配置控制器接口
type InterfaceSettingsController interface {
	GetSettings()
	GetSettingsDetailed()
	UpdateSettings()
}

// SettingsController 平台配置控制器，仅超级管理员可访问
type SettingsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingsController 创建一个新的平台配置控制器
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateSettingsRequest 批量更新配置请求
type UpdateSettingsRequest struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// HandleSettingsFunc 返回一个处理平台配置请求的Gin处理函数
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "getSettings":
			controller.GetSettings()
		case "getSettingsDetailed":
			controller.GetSettingsDetailed()
		case "updateSettings":
			controller.UpdateSettings()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetSettings 获取全部配置
// @Summary      获取全部配置
// @Description  获取平台配置键值对，分组展示由前端处理
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /settings [get]
// @Security     BearerAuth
func (c *SettingsController) GetSettings() {
	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.GetAllSettings()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"settings": settings})
}

// 2. GetSettingsDetailed 获取配置项明细
// @Summary      获取配置项明细
// @Description  获取配置项原始记录，包含更新时间
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /settings/detailed [get]
// @Security     BearerAuth
func (c *SettingsController) GetSettingsDetailed() {
	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.GetAllSettingRows()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, settings)
}

// 3. UpdateSettings 批量更新配置
// @Summary      批量更新配置
// @Description  批量写入配置键值对，不存在的键自动创建
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateSettingsRequest true "配置键值对"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /settings [put]
// @Security     BearerAuth
func (c *SettingsController) UpdateSettings() {
	var req UpdateSettingsRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil || len(req.Settings) == 0 {
		response.ParamError(c.Ctx, "Settings map is required")
		return
	}

	settingsService := c.Container.GetService("settings").(services.InterfaceSettingsService)
	settings, err := settingsService.UpdateSettings(req.Settings)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"settings": settings})
}
