package controllers

import (
	"errors"
	"strings"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// InterfaceAuthController 定义认证控制器接口
type InterfaceAuthController interface {
	Login()
	Verify()
}

// AuthController 认证控制器
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController 创建一个新的认证控制器
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"Admin@123"`
}

// HandleAuthFunc 返回一个处理认证请求的Gin处理函数
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "verify":
			controller.Verify()
		default:
			response.FailWithMessage(ctx, code.ErrBind, "无效的方法", nil)
		}
	}
}

// 1. Login 管理员登录
// @Summary      管理员登录
// @Description  通过邮箱和密码登录，返回管理员信息和JWT令牌
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "登录凭证"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.ParamError(c.Ctx, "Email and password are required")
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Fail(c.Ctx, code.ErrLoginFailed, nil)
			return
		}
		response.Fail(c.Ctx, code.ErrDatabase, nil)
		return
	}

	response.Success(c.Ctx, gin.H{
		"admin": result.Admin,
		"token": result.Token,
	})
}

// 2. Verify 校验当前令牌
// @Summary      校验令牌
// @Description  校验Bearer令牌并返回当前管理员身份
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/verify [get]
// @Security     BearerAuth
func (c *AuthController) Verify() {
	// 认证中间件已校验令牌并写入上下文
	admin, exists := c.Ctx.Get("admin")
	if !exists {
		response.Unauthorized(c.Ctx)
		return
	}

	response.Success(c.Ctx, gin.H{"admin": admin})
}
