package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
)

// ErrorBody 定义错误信息结构，前端按此结构取message展示
type ErrorBody struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

// Response 定义统一的响应格式
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Error      *ErrorBody  `json:"error,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

// Success 成功响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithPagination 带分页信息的成功响应
func SuccessWithPagination(c *gin.Context, data interface{}, pagination interface{}) {
	c.JSON(http.StatusOK, Response{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

// Fail 失败响应
func Fail(c *gin.Context, errorCode int, details interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Success: false,
		Error: &ErrorBody{
			Message:    code.GetMessage(errorCode),
			StatusCode: httpStatus,
			Details:    details,
		},
	})
}

// FailWithMessage 失败响应（自定义消息）
func FailWithMessage(c *gin.Context, errorCode int, message string, details interface{}) {
	httpStatus := code.GetStatus(errorCode)

	c.JSON(httpStatus, Response{
		Success: false,
		Error: &ErrorBody{
			Message:    message,
			StatusCode: httpStatus,
			Details:    details,
		},
	})
}

// ParamError 参数错误响应
func ParamError(c *gin.Context, message string) {
	FailWithMessage(c, code.ErrBind, message, nil)
}

// ServerError 服务器错误响应
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}

// Unauthorized 未授权响应
func Unauthorized(c *gin.Context) {
	Fail(c, code.ErrTokenInvalid, nil)
}

// Forbidden 权限不足响应
func Forbidden(c *gin.Context) {
	Fail(c, code.ErrPermissionDenied, nil)
}
