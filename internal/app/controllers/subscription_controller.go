package controllers

import (
	"errors"
	"strconv"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceSubscriptionController 定义订阅控制器接口
type InterfaceSubscriptionController interface {
	GetSubscriptions()
	DeleteSubscription()
}

// SubscriptionController 职位提醒订阅控制器
type SubscriptionController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSubscriptionController 创建一个新的订阅控制器
func NewSubscriptionController(ctx *gin.Context, container *container.ServiceContainer) *SubscriptionController {
	return &SubscriptionController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleSubscriptionFunc 返回一个处理订阅请求的Gin处理函数
func HandleSubscriptionFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSubscriptionController(ctx, container)

		switch method {
		case "getSubscriptions":
			controller.GetSubscriptions()
		case "deleteSubscription":
			controller.DeleteSubscription()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetSubscriptions 获取订阅列表
// @Summary      获取订阅列表
// @Description  分页获取职位提醒订阅，支持分类和邮箱筛选
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        category query int false "分类ID"
// @Param        search query string false "邮箱关键词"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /job-alerts/subscriptions [get]
// @Security     BearerAuth
func (c *SubscriptionController) GetSubscriptions() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	categoryID, _ := strconv.ParseUint(c.Ctx.Query("category"), 10, 32)

	subscriptionService := c.Container.GetService("subscription").(services.InterfaceSubscriptionService)
	subscriptions, total, err := subscriptionService.GetAllSubscriptions(page, limit, uint(categoryID), c.Ctx.Query("search"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, subscriptions, models.NewPagination(page, limit, total))
}

// 2. DeleteSubscription 删除订阅
// @Summary      删除订阅
// @Description  删除职位提醒订阅
// @Tags         Subscription
// @Accept       json
// @Produce      json
// @Param        id path int true "订阅ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-alerts/subscriptions/{id} [delete]
// @Security     BearerAuth
func (c *SubscriptionController) DeleteSubscription() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	subscriptionService := c.Container.GetService("subscription").(services.InterfaceSubscriptionService)
	if err := subscriptionService.DeleteSubscription(id); err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			response.Fail(c.Ctx, code.ErrSubscriptionNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}
