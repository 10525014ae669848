package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/error/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := newTestContext()
	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.NotNil(t, resp.Data)
}

func TestSuccessWithPagination(t *testing.T) {
	c, w := newTestContext()
	SuccessWithPagination(c, []string{}, gin.H{"page": 1, "total": 0})

	resp := decodeBody(t, w)
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Pagination)
}

func TestFail(t *testing.T) {
	testCases := []struct {
		name        string
		errorCode   int
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "令牌无效映射为401",
			errorCode:   code.ErrTokenInvalid,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Authentication required. Please log in.",
		},
		{
			name:        "权限不足映射为403",
			errorCode:   code.ErrPermissionDenied,
			wantStatus:  http.StatusForbidden,
			wantMessage: "You do not have permission to perform this action.",
		},
		{
			name:        "职位不存在映射为404",
			errorCode:   code.ErrJobNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "The requested job was not found.",
		},
		{
			name:        "分类有订阅者映射为409",
			errorCode:   code.ErrCategoryHasSubscribers,
			wantStatus:  http.StatusConflict,
			wantMessage: "This category has active subscribers and cannot be deleted.",
		},
		{
			name:        "AI解析失败映射为422",
			errorCode:   code.ErrAIParse,
			wantStatus:  http.StatusUnprocessableEntity,
			wantMessage: "Could not parse AI response. Please try again or skip to manual entry.",
		},
		{
			name:        "限流映射为429",
			errorCode:   code.ErrTooManyRequests,
			wantStatus:  http.StatusTooManyRequests,
			wantMessage: "Too many requests. Please wait a moment and try again.",
		},
		{
			name:        "AI服务不可用映射为503",
			errorCode:   code.ErrAIUnavailable,
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "Service temporarily unavailable. Please try again later.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, w := newTestContext()
			Fail(c, tc.errorCode, nil)

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decodeBody(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tc.wantMessage, resp.Error.Message)
			assert.Equal(t, tc.wantStatus, resp.Error.StatusCode)
		})
	}
}

func TestFailWithMessage(t *testing.T) {
	c, w := newTestContext()
	FailWithMessage(c, code.ErrValidation, "Priority must be one of: low, medium, high, urgent.", nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeBody(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "Priority must be one of: low, medium, high, urgent.", resp.Error.Message)
}

func TestParamError(t *testing.T) {
	c, w := newTestContext()
	ParamError(c, "raw_text is required")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "raw_text is required", resp.Error.Message)
}

func TestUnknownCodeFallsBackTo500(t *testing.T) {
	c, w := newTestContext()
	Fail(c, 999999, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
