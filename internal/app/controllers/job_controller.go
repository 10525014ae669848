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

// InterfaceJobController 定义职位控制器接口
type InterfaceJobController interface {
	GetJobs()
	GetJob()
	GetJobStats()
	CreateJob()
	UpdateJob()
	DeleteJob()
	AIIntake()
}

// JobController 职位控制器
type JobController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewJobController 创建一个新的职位控制器
func NewJobController(ctx *gin.Context, container *container.ServiceContainer) *JobController {
	return &JobController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreateJobRequest 创建职位请求
type CreateJobRequest struct {
	Title        string `json:"title" binding:"required" example:"Senior Backend Engineer"`
	CompanyName  string `json:"company_name" example:"Acme Ltd"`
	Location     string `json:"location" example:"Lahore"`
	JobType      string `json:"job_type" example:"full-time"`
	SalaryRange  string `json:"salary_range" example:"200K-300K"`
	Status       string `json:"status" example:"active"`
	Priority     string `json:"priority" example:"medium"`
	CategoryID   *uint  `json:"category_id" example:"1"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" example:"hr@acme.com"`
	Whatsapp     string `json:"whatsapp" example:"+92 311 1234567"`
	ApplyLink    string `json:"apply_link" example:"https://acme.com/careers"`
}

// AIIntakeRequest AI智能录入请求
type AIIntakeRequest struct {
	RawText string `json:"raw_text" binding:"required"`
}

// HandleJobFunc 返回一个处理职位请求的Gin处理函数
func HandleJobFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewJobController(ctx, container)

		switch method {
		case "getJobs":
			controller.GetJobs()
		case "getJob":
			controller.GetJob()
		case "getJobStats":
			controller.GetJobStats()
		case "createJob":
			controller.CreateJob()
		case "updateJob":
			controller.UpdateJob()
		case "deleteJob":
			controller.DeleteJob()
		case "aiIntake":
			controller.AIIntake()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GetJobs 获取职位列表
// @Summary      获取职位列表
// @Description  分页获取职位列表，支持状态、分类、关键词筛选，高优先级置顶
// @Tags         Job
// @Accept       json
// @Produce      json
// @Param        page query int false "页码, 默认为1"
// @Param        limit query int false "每页条数, 默认为10"
// @Param        status query string false "状态筛选: pending/active/closed/all"
// @Param        category query int false "分类ID"
// @Param        search query string false "标题、公司名、地点关键词"
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (c *JobController) GetJobs() {
	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	page, limit = models.NormalizePageParams(page, limit)

	categoryID, _ := strconv.ParseUint(c.Ctx.Query("category"), 10, 32)

	filter := services.JobListFilter{
		Page:     page,
		Limit:    limit,
		Status:   c.Ctx.Query("status"),
		Category: uint(categoryID),
		Search:   c.Ctx.Query("search"),
	}

	jobService := c.Container.GetService("job").(services.InterfaceJobService)
	jobs, total, err := jobService.GetAllJobs(filter)
	if err != nil {
		if errors.Is(err, services.ErrJobInvalidStatus) {
			response.Fail(c.Ctx, code.ErrJobStatusInvalid, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.SuccessWithPagination(c.Ctx, jobs, models.NewPagination(page, limit, total))
}

// 2. GetJob 获取职位详情
// @Summary      获取职位详情
// @Description  根据ID获取职位详细信息
// @Tags         Job
// @Accept       json
// @Produce      json
// @Param        id path int true "职位ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (c *JobController) GetJob() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	jobService := c.Container.GetService("job").(services.InterfaceJobService)
	job, err := jobService.GetJobByID(id)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			response.Fail(c.Ctx, code.ErrJobNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, job)
}

// 3. GetJobStats 获取职位统计
// @Summary      获取职位统计
// @Description  获取各状态下的职位数量汇总
// @Tags         Job
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /jobs/stats/summary [get]
// @Security     BearerAuth
func (c *JobController) GetJobStats() {
	jobService := c.Container.GetService("job").(services.InterfaceJobService)
	stats, err := jobService.GetJobStats()
	if err != nil {
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, stats)
}

// 4. CreateJob 创建职位
// @Summary      创建职位
// @Description  创建一个新职位，slug由标题生成，字符串字段剥离HTML
// @Tags         Job
// @Accept       json
// @Produce      json
// @Param        request body CreateJobRequest true "职位信息"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (c *JobController) CreateJob() {
	var req CreateJobRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Job title is required")
		return
	}

	jobService := c.Container.GetService("job").(services.InterfaceJobService)
	job, err := jobService.CreateJob(services.JobInput{
		Title:        req.Title,
		CompanyName:  req.CompanyName,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Status:       req.Status,
		Priority:     req.Priority,
		CategoryID:   req.CategoryID,
		Description:  req.Description,
		ContactEmail: req.ContactEmail,
		Whatsapp:     req.Whatsapp,
		ApplyLink:    req.ApplyLink,
	})
	if err != nil {
		if errors.Is(err, services.ErrJobInvalidStatus) {
			response.Fail(c.Ctx, code.ErrJobStatusInvalid, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// 分类列表缓存携带 job_count 聚合，职位变更后一并清除
	middleware.PurgeCacheByPrefix("/api/jobs")
	middleware.PurgeCacheByPrefix("/api/categories")
	response.Success(c.Ctx, job)
}

// 5. UpdateJob 更新职位
// @Summary      更新职位
// @Description  部分更新职位，只写入请求中携带的字段
// @Tags         Job
// @Accept       json
// @Produce      json
// @Param        id path int true "职位ID"
// @Param        request body map[string]interface{} true "更新的字段"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (c *JobController) UpdateJob() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	var updates map[string]interface{}
	if err := c.Ctx.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		response.ParamError(c.Ctx, "Invalid request body")
		return
	}

	jobService := c.Container.GetService("job").(services.InterfaceJobService)
	job, err := jobService.UpdateJob(id, updates)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrJobNotFound):
			response.Fail(c.Ctx, code.ErrJobNotFound, nil)
		case errors.Is(err, services.ErrJobInvalidStatus):
			response.Fail(c.Ctx, code.ErrJobStatusInvalid, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	// 分类列表缓存携带 job_count 聚合，职位变更后一并清除
	middleware.PurgeCacheByPrefix("/api/jobs")
	middleware.PurgeCacheByPrefix("/api/categories")
	response.Success(c.Ctx, job)
}

// 6. DeleteJob 删除职位
// @Summary      删除职位
// @Description  根据ID删除职位
// @Tags         Job
// @Accept       json
// @Produce      json
// @Param        id path int true "职位ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (c *JobController) DeleteJob() {
	id, ok := parseIDParam(c.Ctx)
	if !ok {
		return
	}

	jobService := c.Container.GetService("job").(services.InterfaceJobService)
	if err := jobService.DeleteJob(id); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			response.Fail(c.Ctx, code.ErrJobNotFound, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	// 分类列表缓存携带 job_count 聚合，职位变更后一并清除
	middleware.PurgeCacheByPrefix("/api/jobs")
	middleware.PurgeCacheByPrefix("/api/categories")
	response.Success(c.Ctx, gin.H{"deleted": true})
}

// 7. AIIntake AI智能录入
// @Summary      AI智能录入
// @Description  将职位原文交给AI解析为结构化草稿，分类名自动匹配为分类ID
// @Tags         Job
// @Accept       json
// @Produce      json
// @Param        request body AIIntakeRequest true "职位原文"
// @Success      200  {object}  response.Response
// @Failure      422  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /jobs/ai-intake [post]
// @Security     BearerAuth
func (c *JobController) AIIntake() {
	var req AIIntakeRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Job posting text is required")
		return
	}

	aiService := c.Container.GetService("ai").(services.InterfaceAIService)
	draft, err := aiService.ParseJobPosting(c.Ctx.Request.Context(), req.RawText)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIEmptyInput):
			response.Fail(c.Ctx, code.ErrAIEmptyInput, nil)
		case errors.Is(err, services.ErrAIParse):
			response.Fail(c.Ctx, code.ErrAIParse, nil)
		case errors.Is(err, services.ErrAIUnavailable):
			response.Fail(c.Ctx, code.ErrAIUnavailable, nil)
		default:
			response.Fail(c.Ctx, code.ErrDatabase, nil)
		}
		return
	}

	response.Success(c.Ctx, draft)
}
