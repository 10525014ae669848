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

// InterfaceUserController 定义用户控制器接口
type InterfaceUserController interface {
	GetUsers()
	GetUser()
	DeleteUser()
}

// UserController 注册用户控制器，仅超级管理员可访问
type UserController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewUserController 创建一个新的用户控制器
func NewUserController(ctx *gin.Context, container *container.ServiceContainer) *UserController {
	return &UserController{
		Ctx:       ctx,
		Container: container,
	}
}

// HandleUserFunc 返回一个处理用户请求的Gin处理函数
func HandleUserFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewUserController(ctx, container)

		switch method {
		case "getUsers":
			controller.GetUsers()
		case "getUser":
			controller.GetUser()
		case "deleteUser":
			controller.DeleteUser()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetUsers 获取用户列表
// @Summary      获取用户列表
// @Description  分页获取注册用户，附带简历和求职信数量
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        search query string false "邮箱或姓名关键词"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (c *UserController) GetUsers() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	users, total, err := userService.GetAllUsers(page, limit, c.Ctx.Query("search"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, users, models.NewPagination(page, limit, total))
}

// 2. GetUser 获取用户详情
// @Summary      获取用户详情
// @Description  获取用户信息以及其全部简历和求职信，用于内容审查
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [get]
// @Security     BearerAuth
func (c *UserController) GetUser() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	detail, err := userService.GetUserDetail(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, detail)
}

// 3. DeleteUser 删除用户
// @Summary      删除用户
// @Description  删除用户及其名下的全部简历和求职信
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /users/{id} [delete]
// @Security     BearerAuth
func (c *UserController) DeleteUser() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	if err := userService.DeleteUser(id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			response.Fail(c.Ctx, code.ErrUserNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}
