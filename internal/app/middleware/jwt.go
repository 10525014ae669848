package middleware

import (
	"strings"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config, db *gorm.DB) {
	jwtService = services.NewJWTService(cfg, db)
}

// extractToken 从授权头中提取token
func extractToken(authHeader string) string {
	// 检查并移除 "Bearer " 前缀
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return authHeader
}

// authenticate 校验令牌并把管理员身份写入上下文。
// 令牌无效或管理员已被删除一律401
func authenticate(c *gin.Context) (*models.Admin, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		response.Unauthorized(c)
		c.Abort()
		return nil, false
	}

	tokenString := extractToken(authHeader)
	admin, err := jwtService.Verify(tokenString)
	if err != nil {
		response.Unauthorized(c)
		c.Abort()
		return nil, false
	}

	c.Set("adminID", admin.ID)
	c.Set("role", admin.Role)
	c.Set("admin", admin)
	return admin, true
}

// Authentication 通用的认证中间件，任何已登录管理员可通过
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// AuthenticateAdmin 验证管理员权限（admin 或 super_admin）
func AuthenticateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := authenticate(c)
		if !ok {
			return
		}
		if !models.IsValidAdminRole(admin.Role) {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthenticateSuperAdmin 验证超级管理员权限。
// 权限不足时返回403，不泄露资源内容
func AuthenticateSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := authenticate(c)
		if !ok {
			return
		}
		if !admin.IsSuperAdmin() {
			response.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
