package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/domain/services"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubJWTService 桩实现，Verify 按预设返回
type stubJWTService struct {
	admin *models.Admin
	err   error
}

func (s *stubJWTService) GenerateToken(adminID uint, role string) (string, error) {
	return "stub-token", nil
}

func (s *stubJWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return nil, s.err
}

func (s *stubJWTService) ExtractClaims(tokenString string) (*services.JWTClaims, error) {
	return nil, s.err
}

func (s *stubJWTService) Login(email, password string) (*services.LoginResult, error) {
	return nil, s.err
}

func (s *stubJWTService) Verify(tokenString string) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func performRequest(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAPIKeyAuth(t *testing.T) {
	cfg := &config.Config{APIKeys: []string{"frontend-key"}}

	handlerCalled := false
	r := gin.New()
	r.Use(APIKeyAuth(cfg))
	r.GET("/jobs", func(c *gin.Context) {
		handlerCalled = true
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("缺少 x-api-key 返回401且不进入业务处理", func(t *testing.T) {
		handlerCalled = false
		w := performRequest(r, http.MethodGet, "/jobs", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, handlerCalled)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("未知的 x-api-key 返回401", func(t *testing.T) {
		handlerCalled = false
		w := performRequest(r, http.MethodGet, "/jobs", map[string]string{"x-api-key": "rogue"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, handlerCalled)
	})

	t.Run("合法的 x-api-key 放行", func(t *testing.T) {
		handlerCalled = false
		w := performRequest(r, http.MethodGet, "/jobs", map[string]string{"x-api-key": "frontend-key"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, handlerCalled)
	})
}

func TestAuthenticateAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		stub       *stubJWTService
		authHeader string
		wantStatus int
	}{
		{
			name:       "缺少授权头返回401",
			stub:       &stubJWTService{},
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "令牌校验失败返回401",
			stub:       &stubJWTService{err: errors.New("token expired")},
			authHeader: "Bearer bad-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "管理员已被删除返回401",
			stub:       &stubJWTService{err: errors.New("admin not found")},
			authHeader: "Bearer orphan-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "合法管理员放行",
			stub:       &stubJWTService{admin: &models.Admin{ID: 1, Role: models.RoleAdmin}},
			authHeader: "Bearer good-token",
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jwtService = tc.stub

			handlerCalled := false
			r := gin.New()
			r.Use(AuthenticateAdmin())
			r.GET("/jobs", func(c *gin.Context) {
				handlerCalled = true
				adminID, exists := c.Get("adminID")
				require.True(t, exists)
				assert.Equal(t, uint(1), adminID)
				c.JSON(http.StatusOK, gin.H{"success": true})
			})

			w := performRequest(r, http.MethodGet, "/jobs", map[string]string{"Authorization": tc.authHeader})

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantStatus == http.StatusOK, handlerCalled)
		})
	}
}

func TestAuthenticateSuperAdmin(t *testing.T) {
	t.Run("普通管理员访问超管接口返回403", func(t *testing.T) {
		jwtService = &stubJWTService{admin: &models.Admin{ID: 2, Role: models.RoleAdmin}}

		r := gin.New()
		r.Use(AuthenticateSuperAdmin())
		r.GET("/admins", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		w := performRequest(r, http.MethodGet, "/admins", map[string]string{"Authorization": "Bearer token"})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("超级管理员放行", func(t *testing.T) {
		jwtService = &stubJWTService{admin: &models.Admin{ID: 1, Role: models.RoleSuperAdmin}}

		r := gin.New()
		r.Use(AuthenticateSuperAdmin())
		r.GET("/admins", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true})
		})

		w := performRequest(r, http.MethodGet, "/admins", map[string]string{"Authorization": "Bearer token"})
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRateLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/auth/login-limited", CombinedRateLimiter(1, 2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	// 突发额度内的请求放行
	for i := 0; i < 2; i++ {
		w := performRequest(r, http.MethodPost, "/auth/login-limited", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// 超出突发额度返回429
	w := performRequest(r, http.MethodPost, "/auth/login-limited", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestTokenBucket(t *testing.T) {
	bucket := NewTokenBucket(100, 2)

	assert.True(t, bucket.Allow())
	assert.True(t, bucket.Allow())
	assert.False(t, bucket.Allow())

	// 等待令牌回填
	time.Sleep(30 * time.Millisecond)
	assert.True(t, bucket.Allow())
}

func TestCleanIdleLimiters(t *testing.T) {
	getLimiter("stale-key", DefaultRateLimiterConfig)

	limitersMu.Lock()
	limiterTouch["stale-key"] = time.Now().Add(-2 * time.Hour)
	limitersMu.Unlock()

	cleanIdleLimiters(1 * time.Hour)

	limitersMu.RLock()
	_, exists := limiters["stale-key"]
	limitersMu.RUnlock()
	assert.False(t, exists)
}

func TestCacheKey(t *testing.T) {
	r := gin.New()
	var key string
	r.GET("/api/jobs", func(c *gin.Context) {
		key = cacheKey(c)
		c.Status(http.StatusOK)
	})

	// 查询参数排序后键是稳定的
	performRequest(r, http.MethodGet, "/api/jobs?status=active&page=1", nil)
	first := key
	performRequest(r, http.MethodGet, "/api/jobs?page=1&status=active", nil)
	assert.Equal(t, first, key)
	assert.Equal(t, "/api/jobs?page=1&status=active&", key)
}

func TestCache(t *testing.T) {
	hits := 0
	r := gin.New()
	r.GET("/api/categories-cached", Cache(CacheConfig{Expiration: time.Minute}), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	// 第一次请求落到处理器并写入缓存
	w := performRequest(r, http.MethodGet, "/api/categories-cached", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)

	// 第二次请求命中缓存，处理器不再执行
	w = performRequest(r, http.MethodGet, "/api/categories-cached", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, hits)
	assert.Contains(t, w.Body.String(), `"hits":1`)

	// 按前缀清除后重新落库
	PurgeCacheByPrefix("/api/categories-cached")
	performRequest(r, http.MethodGet, "/api/categories-cached", nil)
	assert.Equal(t, 2, hits)
}

func TestCache_SkipsNonGet(t *testing.T) {
	hits := 0
	r := gin.New()
	r.POST("/api/jobs-uncached", Cache(), func(c *gin.Context) {
		hits++
		c.JSON(http.StatusOK, gin.H{"hits": hits})
	})

	performRequest(r, http.MethodPost, "/api/jobs-uncached", nil)
	performRequest(r, http.MethodPost, "/api/jobs-uncached", nil)
	assert.Equal(t, 2, hits)
}
