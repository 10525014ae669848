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

// InterfaceFeedbackController 定义反馈控制器接口
type InterfaceFeedbackController interface {
	GetFeedback()
	ApproveFeedback()
	RejectFeedback()
	DeleteFeedback()
	GetCategoryRequests()
	ApproveCategoryRequest()
	RejectCategoryRequest()
	DeleteCategoryRequest()
}

// FeedbackController 用户反馈与分类申请控制器
type FeedbackController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewFeedbackController 创建一个新的反馈控制器
func NewFeedbackController(ctx *gin.Context, container *container.ServiceContainer) *FeedbackController {
	return &FeedbackController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleFeedbackFunc 返回一个处理反馈请求的Gin处理函数
func HandleFeedbackFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewFeedbackController(ctx, container)

		switch method {
		case "getFeedback":
			controller.GetFeedback()
		case "approveFeedback":
			controller.ApproveFeedback()
		case "rejectFeedback":
			controller.RejectFeedback()
		case "deleteFeedback":
			controller.DeleteFeedback()
		case "getCategoryRequests":
			controller.GetCategoryRequests()
		case "approveCategoryRequest":
			controller.ApproveCategoryRequest()
		case "rejectCategoryRequest":
			controller.RejectCategoryRequest()
		case "deleteCategoryRequest":
			controller.DeleteCategoryRequest()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetFeedback 获取反馈列表
// @Summary      获取反馈列表
// @Description  分页获取用户反馈，支持状态和类型筛选
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        status query string false "状态筛选: pending/approved/rejected"
// @Param        type query string false "反馈类型"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /feedback [get]
// @Security     BearerAuth
func (c *FeedbackController) GetFeedback() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	feedback, total, err := c.feedbackService().GetAllFeedback(page, limit, c.Ctx.Query("status"), c.Ctx.Query("type"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, feedback, models.NewPagination(page, limit, total))
}

// 2. ApproveFeedback 批准反馈
// @Summary      批准反馈
// @Description  将待处理的反馈标记为已批准，仅pending状态可操作
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        id path int true "反馈ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /feedback/{id}/approve [put]
// @Security     BearerAuth
func (c *FeedbackController) ApproveFeedback() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	feedback, err := c.feedbackService().ApproveFeedback(id)
	if err != nil {
		c.failFeedback(err)
		return
	}

	response.Success(c.Ctx, feedback)
}

// 3. RejectFeedback 驳回反馈
// @Summary      驳回反馈
// @Description  将待处理的反馈标记为已驳回，驳回为终态
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        id path int true "反馈ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /feedback/{id}/reject [put]
// @Security     BearerAuth
func (c *FeedbackController) RejectFeedback() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	feedback, err := c.feedbackService().RejectFeedback(id)
	if err != nil {
		c.failFeedback(err)
		return
	}

	response.Success(c.Ctx, feedback)
}

// 4. DeleteFeedback 删除反馈
// @Summary      删除反馈
// @Description  删除用户反馈
// @Tags         Feedback
// @Accept       json
// @Produce      json
// @Param        id path int true "反馈ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /feedback/{id} [delete]
// @Security     BearerAuth
func (c *FeedbackController) DeleteFeedback() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	if err := c.feedbackService().DeleteFeedback(id); err != nil {
		c.failFeedback(err)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

// 5. GetCategoryRequests 获取分类申请列表
// @Summary      获取分类申请列表
// @Description  分页获取用户提交的分类申请
// @Tags         CategoryRequest
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        status query string false "状态筛选: pending/approved/rejected"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /category-requests [get]
// @Security     BearerAuth
func (c *FeedbackController) GetCategoryRequests() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	requests, total, err := c.feedbackService().GetAllCategoryRequests(page, limit, c.Ctx.Query("status"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, requests, models.NewPagination(page, limit, total))
}

// 6. ApproveCategoryRequest 批准分类申请
// @Summary      批准分类申请
// @Description  批准申请并创建对应的职位分类，同名分类已存在时仅更新申请状态
// @Tags         CategoryRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "申请ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /category-requests/{id}/approve [put]
// @Security     BearerAuth
func (c *FeedbackController) ApproveCategoryRequest() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	request, err := c.feedbackService().ApproveCategoryRequest(id)
	if err != nil {
		c.failCategoryRequest(err)
		return
	}

	// 批准会创建新分类，分类列表缓存作废
	middleware.PurgeCacheByPrefix("/api/categories")
	response.Success(c.Ctx, request)
}

// 7. RejectCategoryRequest 驳回分类申请
// @Summary      驳回分类申请
// @Description  驳回分类申请，不创建分类
// @Tags         CategoryRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "申请ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /category-requests/{id}/reject [put]
// @Security     BearerAuth
func (c *FeedbackController) RejectCategoryRequest() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	request, err := c.feedbackService().RejectCategoryRequest(id)
	if err != nil {
		c.failCategoryRequest(err)
		return
	}

	response.Success(c.Ctx, request)
}

// 8. DeleteCategoryRequest 删除分类申请
// @Summary      删除分类申请
// @Description  删除分类申请记录
// @Tags         CategoryRequest
// @Accept       json
// @Produce      json
// @Param        id path int true "申请ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /category-requests/{id} [delete]
// @Security     BearerAuth
func (c *FeedbackController) DeleteCategoryRequest() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	if err := c.feedbackService().DeleteCategoryRequest(id); err != nil {
		c.failCategoryRequest(err)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

// failFeedback 把反馈服务错误映射为响应
func (c *FeedbackController) failFeedback(err error) {
	switch {
	case errors.Is(err, services.ErrFeedbackNotFound):
		response.Fail(c.Ctx, code.ErrFeedbackNotFound, nil)
	case errors.Is(err, services.ErrFeedbackSettled):
		response.Fail(c.Ctx, code.ErrFeedbackSettled, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

// failCategoryRequest 把分类申请服务错误映射为响应
func (c *FeedbackController) failCategoryRequest(err error) {
	switch {
	case errors.Is(err, services.ErrCategoryRequestNotFound):
		response.Fail(c.Ctx, code.ErrCategoryRequestNotFound, nil)
	case errors.Is(err, services.ErrCategoryRequestSettled):
		response.Fail(c.Ctx, code.ErrCategoryRequestSettled, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

func (c *FeedbackController) feedbackService() services.InterfaceFeedbackService {
	return c.Container.GetService("feedback").(services.InterfaceFeedbackService)
}
