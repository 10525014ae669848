package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"
)

// HealthCheckController 健康检查控制器
type HealthCheckController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHealthCheckController 创建健康检查控制器实例
func NewHealthCheckController(ctx *gin.Context, container *container.ServiceContainer) *HealthCheckController {
	return &HealthCheckController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleHealthFunc 返回一个处理健康检查请求的Gin处理函数
func HandleHealthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHealthCheckController(ctx, container)

		switch method {
		case "ping":
			controller.Ping()
		case "status":
			controller.Status()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. Ping 健康检查端点
func (c *HealthCheckController) Ping() {
	response.Success(c.Ctx, gin.H{
		"status":  "healthy",
		"message": "pong",
	})
}

// 2. Status 返回数据库和缓存连接状态
func (c *HealthCheckController) Status() {
	dbStatus := "up"
	if sqlDB, err := c.Container.GetDB().DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	redisStatus := "up"
	redisService := c.Container.GetService("redis").(services.InterfaceRedisService)
	if err := redisService.Ping(c.Ctx.Request.Context()); err != nil {
		redisStatus = "down"
	}

	response.Success(c.Ctx, gin.H{
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
