package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/app/middleware"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services/container"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContainer(t *testing.T) (*container.ServiceContainer, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecretKey: "test-secret",
		RedisHost:    "127.0.0.1",
		RedisPort:    "1", // 不可达端口，缓存降级路径
	}
	return container.NewServiceContainer(db, cfg), mock
}

func TestHandleHealthFunc_Ping(t *testing.T) {
	c, _ := newTestContainer(t)

	r := gin.New()
	r.GET("/ping", HandleHealthFunc(c, "ping"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"pong"`)
}

func TestHandleHealthFunc_UnknownMethod(t *testing.T) {
	c, _ := newTestContainer(t)

	r := gin.New()
	r.GET("/ping", HandleHealthFunc(c, "nope"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSettingsFunc_GetSettings(t *testing.T) {
	c, mock := newTestContainer(t)
	mock.ExpectQuery("SELECT \\* FROM `settings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "setting_key", "setting_value"}).
			AddRow(1, "site_name", "Job Portal"))

	r := gin.New()
	r.GET("/settings", HandleSettingsFunc(c, "getSettings"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/settings", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"site_name":"Job Portal"`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestHandleJobFunc_DeletePurgesJobAndCategoryCaches(t *testing.T) {
	c, mock := newTestContainer(t)
	mock.ExpectQuery("SELECT \\* FROM `jobs` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "status", "category_id"}).
			AddRow(1, "Go Developer", "go-developer", "active", nil))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `jobs` .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	jobHits := 0
	categoryHits := 0
	r := gin.New()
	r.GET("/api/jobs", middleware.Cache(), func(ctx *gin.Context) {
		jobHits++
		ctx.JSON(http.StatusOK, gin.H{"hits": jobHits})
	})
	r.GET("/api/categories", middleware.Cache(), func(ctx *gin.Context) {
		categoryHits++
		ctx.JSON(http.StatusOK, gin.H{"hits": categoryHits})
	})
	r.DELETE("/api/jobs/:id", HandleJobFunc(c, "deleteJob"))

	// 预热两份缓存
	for i := 0; i < 2; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	}
	require.Equal(t, 1, jobHits)
	require.Equal(t, 1, categoryHits)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/jobs/1", nil))
	require.Equal(t, http.StatusOK, w.Code)

	// 分类列表携带 job_count 聚合，职位删除后两类缓存都应失效
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	assert.Equal(t, 2, jobHits)
	assert.Equal(t, 2, categoryHits)
}

func TestParseIDParam(t *testing.T) {
	testCases := []struct {
		name   string
		param  string
		wantOK bool
		wantID uint
	}{
		{name: "合法ID", param: "42", wantOK: true, wantID: 42},
		{name: "非数字", param: "abc", wantOK: false},
		{name: "零值ID", param: "0", wantOK: false},
		{name: "负数", param: "-1", wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			ctx.Params = gin.Params{{Key: "id", Value: tc.param}}

			id, ok := parseIDParam(ctx)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantID, id)
			} else {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}
