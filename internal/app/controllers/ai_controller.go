package controllers

import (
	"errors"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAIController 定义AI控制器接口
type InterfaceAIController interface {
	GenerateContent()
}

// AIController AI文本生成控制器
type AIController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAIController 创建一个新的AI控制器
func NewAIController(ctx *gin.Context, container *container.ServiceContainer) *AIController {
	return &AIController{
		Ctx:       ctx,
		Container: container,
	}
}

// GenerateContentRequest 文本生成请求
type GenerateContentRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// HandleAIFunc 返回一个处理AI请求的Gin处理函数
func HandleAIFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAIController(ctx, container)

		switch method {
		case "generateContent":
			controller.GenerateContent()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. GenerateContent 文本生成
// @Summary      AI文本生成
// @Description  将提示词透传给模型，返回生成文本，用于描述重写等场景
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        request body GenerateContentRequest true "提示词"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /ai/generateContent [post]
// @Security     BearerAuth
func (c *AIController) GenerateContent() {
	var req GenerateContentRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Prompt is required")
		return
	}

	aiService := c.Container.GetService("ai").(services.InterfaceAIService)
	content, err := aiService.GenerateContent(c.Ctx.Request.Context(), req.Prompt)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAIEmptyInput):
			response.Fail(c.Ctx, code.ErrAIEmptyInput, nil)
		case errors.Is(err, services.ErrAIUnavailable):
			response.Fail(c.Ctx, code.ErrAIUnavailable, nil)
		default:
			response.Fail(c.Ctx, code.ErrAIUnavailable, nil)
		}
		return
	}

	response.Success(c.Ctx, gin.H{"generatedContent": content})
}
