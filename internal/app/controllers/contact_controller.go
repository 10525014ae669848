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

// InterfaceContactController 定义联系留言控制器接口
type InterfaceContactController interface {
	GetMessages()
	ApproveMessage()
	RejectMessage()
	DeleteMessage()
}

// ContactController 联系留言控制器
type ContactController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewContactController 创建一个新的联系留言控制器
func NewContactController(ctx *gin.Context, container *container.ServiceContainer) *ContactController {
	return &ContactController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleContactFunc 返回一个处理联系留言请求的Gin处理函数
func HandleContactFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewContactController(ctx, container)

		switch method {
		case "getMessages":
			controller.GetMessages()
		case "approveMessage":
			controller.ApproveMessage()
		case "rejectMessage":
			controller.RejectMessage()
		case "deleteMessage":
			controller.DeleteMessage()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetMessages 获取联系留言列表
// @Summary      获取联系留言列表
// @Description  分页获取联系留言，支持状态筛选
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        status query string false "状态筛选: pending/approved/rejected"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /contact [get]
// @Security     BearerAuth
func (c *ContactController) GetMessages() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	messages, total, err := c.contactService().GetAllMessages(page, limit, c.Ctx.Query("status"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, messages, models.NewPagination(page, limit, total))
}

// 2. ApproveMessage 批准联系留言
// @Summary      批准联系留言
// @Description  将待处理的联系留言标记为已批准，仅pending状态可操作
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "留言ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /contact/{id}/approve [put]
// @Security     BearerAuth
func (c *ContactController) ApproveMessage() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	message, err := c.contactService().ApproveMessage(id)
	if err != nil {
		c.failContact(err)
		return
	}

	response.Success(c.Ctx, message)
}

// 3. RejectMessage 驳回联系留言
// @Summary      驳回联系留言
// @Description  将待处理的联系留言标记为已驳回，驳回为终态
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "留言ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /contact/{id}/reject [put]
// @Security     BearerAuth
func (c *ContactController) RejectMessage() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	message, err := c.contactService().RejectMessage(id)
	if err != nil {
		c.failContact(err)
		return
	}

	response.Success(c.Ctx, message)
}

// 4. DeleteMessage 删除联系留言
// @Summary      删除联系留言
// @Description  删除联系留言
// @Tags         Contact
// @Accept       json
// @Produce      json
// @Param        id path int true "留言ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /contact/{id} [delete]
// @Security     BearerAuth
func (c *ContactController) DeleteMessage() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	if err := c.contactService().DeleteMessage(id); err != nil {
		c.failContact(err)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

// failContact 把服务层错误映射为响应
func (c *ContactController) failContact(err error) {
	switch {
	case errors.Is(err, services.ErrContactNotFound):
		response.Fail(c.Ctx, code.ErrContactNotFound, nil)
	case errors.Is(err, services.ErrContactSettled):
		response.Fail(c.Ctx, code.ErrContactSettled, nil)
	default:
		response.Fail(c.Ctx, code.ErrDatabase, nil)
	}
}

func (c *ContactController) contactService() services.InterfaceContactService {
	return c.Container.GetService("contact").(services.InterfaceContactService)
}
