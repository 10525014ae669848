package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAdminController 定义管理员控制器接口
type InterfaceAdminController interface {
	GetAdmins()
	GetAdmin()
	CreateAdmin()
	UpdateAdmin()
	DeleteAdmin()
}

// AdminController 管理员账户控制器，仅超级管理员可访问
type AdminController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAdminController 创建一个新的管理员控制器
func NewAdminController(ctx *gin.Context, container *container.ServiceContainer) *AdminController {
	return &AdminController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateAdminRequest 创建管理员请求
type CreateAdminRequest struct {
	Username string `json:"username" binding:"required" example:"admin123"`
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"Admin@123"`
	Role     string `json:"role" example:"admin"`
}

// UpdateAdminRequest 更新管理员请求，密码留空表示不修改
type UpdateAdminRequest struct {
	Username string `json:"username" example:"admin123"`
	Email    string `json:"email" binding:"omitempty,email" example:"admin@example.com"`
	Password string `json:"password" example:"NewPassword@123"`
	Role     string `json:"role" example:"admin"`
}

// HandleAdminFunc 返回一个处理管理员请求的Gin处理函数
func HandleAdminFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAdminController(ctx, container)

		switch method {
		case "getAdmins":
			controller.GetAdmins()
		case "getAdmin":
			controller.GetAdmin()
		case "createAdmin":
			controller.CreateAdmin()
		case "updateAdmin":
			controller.UpdateAdmin()
		case "deleteAdmin":
			controller.DeleteAdmin()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetAdmins 获取管理员列表
// @Summary      获取管理员列表
// @Description  分页获取所有管理员账户
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        search query string false "搜索关键词(用户名、邮箱)"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /admins [get]
// @Security     BearerAuth
func (c *AdminController) GetAdmins() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)
	search := c.Ctx.Query("search")

	admins, total, err := c.adminService().GetAllAdmins(page, limit, search)
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, admins, models.NewPagination(page, limit, total))
}

// 2. GetAdmin 获取管理员详情
// @Summary      获取管理员详情
// @Description  根据ID获取管理员账户信息
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "管理员ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admins/{id} [get]
// @Security     BearerAuth
func (c *AdminController) GetAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	admin, err := c.adminService().GetAdminByID(id)
	if err != nil {
		if errors.Is(err, services.ErrAdminNotFound) {
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, admin)
}

// 3. CreateAdmin 创建管理员
// @Summary      创建管理员
// @Description  创建一个新的管理员账户
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body CreateAdminRequest true "管理员信息"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admins [post]
// @Security     BearerAuth
func (c *AdminController) CreateAdmin() {
	var req CreateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Username, email and password are required")
		return
	}

	admin, err := c.adminService().CreateAdmin(
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Email),
		req.Password,
		req.Role,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminAlreadyExist):
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, admin)
}

// 4. UpdateAdmin 更新管理员
// @Summary      更新管理员
// @Description  更新管理员账户信息，密码留空保持不变
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "管理员ID"
// @Param        request body UpdateAdminRequest true "更新的管理员信息"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admins/{id} [put]
// @Security     BearerAuth
func (c *AdminController) UpdateAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req UpdateAdminRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Invalid request body")
		return
	}

	admin, err := c.adminService().UpdateAdmin(
		id,
		strings.TrimSpace(req.Username),
		strings.TrimSpace(req.Email),
		req.Password,
		req.Role,
	)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		case errors.Is(err, services.ErrAdminAlreadyExist):
			response.Fail(c.Ctx, code.ErrAdminAlreadyExist, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, admin)
}

// 5. DeleteAdmin 删除管理员
// @Summary      删除管理员
// @Description  删除管理员账户，最后一个超级管理员不可删除
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path int true "管理员ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /admins/{id} [delete]
// @Security     BearerAuth
func (c *AdminController) DeleteAdmin() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	if err := c.adminService().DeleteAdmin(id); err != nil {
		switch {
		case errors.Is(err, services.ErrAdminNotFound):
			response.Fail(c.Ctx, code.ErrAdminNotFound, nil)
		case errors.Is(err, services.ErrLastSuperAdmin):
			response.Fail(c.Ctx, code.ErrLastSuperAdmin, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

func (c *AdminController) adminService() services.InterfaceAdminService {
	return c.Container.GetService("admin").(services.InterfaceAdminService)
}

// parseIDParam 解析URL中的ID参数
func parseIDParam(ctx *gin.Context) (uint, bool) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		response.ParamError(ctx, "Invalid id parameter")
		return 0, false
	}
	return uint(id), true
}
