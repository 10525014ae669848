package controllers

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/app/middleware"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceCategoryController 定义分类控制器接口
type InterfaceCategoryController interface {
	GetCategories()
	GetCategory()
	CreateCategory()
	UpdateCategory()
	DeleteCategory()
	GetSubscribers()
}

// CategoryController 职位分类控制器
type CategoryController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewCategoryController 创建一个新的分类控制器
func NewCategoryController(ctx *gin.Context, container *container.ServiceContainer) *CategoryController {
	return &CategoryController{
		Ctx:       ctx,
		Container: container,
	}
}

// CategoryRequest 创建/更新分类请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required" example:"Software Engineering"`
	Description string `json:"description" example:"Backend, frontend and mobile roles"`
	Icon        string `json:"icon" example:"code"`
	Status      string `json:"status" example:"active"`
}

// HandleCategoryFunc 返回一个处理分类请求的Gin处理函数
func HandleCategoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewCategoryController(ctx, container)

		switch method {
		case "getCategories":
			controller.GetCategories()
		case "getCategory":
			controller.GetCategory()
		case "createCategory":
			controller.CreateCategory()
		case "updateCategory":
			controller.UpdateCategory()
		case "deleteCategory":
			controller.DeleteCategory()
		case "getSubscribers":
			controller.GetSubscribers()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetCategories 获取分类列表
// @Summary      获取分类列表
// @Description  获取全部分类，附带职位数和订阅数统计
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        status query string false "状态筛选: active/inactive"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /categories [get]
// @Security     BearerAuth
func (c *CategoryController) GetCategories() {
	categoryService := c.categoryService()
	categories, err := categoryService.GetAllCategories(c.Ctx.Query("status"))
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, categories)
}

// 2. GetCategory 获取分类详情
// @Summary      获取分类详情
// @Description  根据ID获取分类信息
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /categories/{id} [get]
// @Security     BearerAuth
func (c *CategoryController) GetCategory() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	category, err := c.categoryService().GetCategoryByID(id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			response.Fail(c.Ctx, code.ErrCategoryNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, category)
}

// 3. CreateCategory 创建分类
// @Summary      创建分类
// @Description  创建一个新的职位分类，名称唯一
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        request body CategoryRequest true "分类信息"
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /categories [post]
// @Security     BearerAuth
func (c *CategoryController) CreateCategory() {
	var req CategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Category name is required")
		return
	}

	category, err := c.categoryService().CreateCategory(services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Status:      req.Status,
	})
	if err != nil {
		if errors.Is(err, services.ErrCategoryAlreadyExist) {
			response.Fail(c.Ctx, code.ErrCategoryAlreadyExist, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	middleware.PurgeCacheByPrefix("/api/categories")
	response.Success(c.Ctx, category)
}

// 4. UpdateCategory 更新分类
// @Summary      更新分类
// @Description  更新分类信息
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Param        request body CategoryRequest true "更新的分类信息"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (c *CategoryController) UpdateCategory() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Category name is required")
		return
	}

	category, err := c.categoryService().UpdateCategory(id, services.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			response.Fail(c.Ctx, code.ErrCategoryNotFound, nil)
		case errors.Is(err, services.ErrCategoryAlreadyExist):
			response.Fail(c.Ctx, code.ErrCategoryAlreadyExist, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	middleware.PurgeCacheByPrefix("/api/categories")
	response.Success(c.Ctx, category)
}

// 5. DeleteCategory 删除分类
// @Summary      删除分类
// @Description  删除分类，仍有活跃订阅者时拒绝删除并返回409
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (c *CategoryController) DeleteCategory() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	if err := c.categoryService().DeleteCategory(id); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNotFound):
			response.Fail(c.Ctx, code.ErrCategoryNotFound, nil)
		case errors.Is(err, services.ErrCategoryHasSubscribers):
			response.Fail(c.Ctx, code.ErrCategoryHasSubscribers, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	middleware.PurgeCacheByPrefix("/api/categories")
	middleware.PurgeCacheByPrefix("/api/jobs")
	response.Success(c.Ctx, gin.H{"deleted": true})
}

// 6. GetSubscribers 获取分类的订阅者
// @Summary      获取分类订阅者
// @Description  获取某分类下的全部职位提醒订阅
// @Tags         Category
// @Accept       json
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /categories/{id}/subscribers [get]
// @Security     BearerAuth
func (c *CategoryController) GetSubscribers() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	subscribers, err := c.categoryService().GetSubscribers(id)
	if err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			response.Fail(c.Ctx, code.ErrCategoryNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, subscribers)
}

func (c *CategoryController) categoryService() services.InterfaceCategoryService {
	return c.Container.GetService("category").(services.InterfaceCategoryService)
}
