package middleware

import (
	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

// APIKeyAuth 校验 x-api-key 请求头，识别前端部署来源。
// 缺失或未知的key在任何业务处理之前直接401
func APIKeyAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("x-api-key")
		if apiKey == "" || !cfg.IsValidAPIKey(apiKey) {
			response.Fail(c, code.ErrAPIKeyInvalid, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
