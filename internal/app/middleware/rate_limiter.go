package middleware

import (
	"sync"
	"time"

	"github.com/Zohaib521321/job-potal-admin/internal/error/code"
	"github.com/Zohaib521321/job-potal-admin/internal/error/response"

	"github.com/gin-gonic/gin"
)

// 简单的令牌桶限流器
type TokenBucket struct {
	rate       float64    // 每秒填充的令牌数
	capacity   int        // 桶的容量
	tokens     float64    // 当前令牌数
	lastRefill time.Time  // 上次填充时间
	mu         sync.Mutex // 互斥锁
}

// 创建新的令牌桶限流器
func NewTokenBucket(rate float64, capacity int) *TokenBucket {
	return &TokenBucket{
		rate:       rate,
		capacity:   capacity,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// 尝试获取令牌
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.lastRefill = now

	// 填充令牌
	tb.tokens += elapsed * tb.rate
	if tb.tokens > float64(tb.capacity) {
		tb.tokens = float64(tb.capacity)
	}

	// 尝试获取令牌
	if tb.tokens >= 1 {
		tb.tokens--
		return true
	}

	return false
}

// 限流器映射，键是IP、路径或两者的组合
var (
	limiters     = make(map[string]*TokenBucket)
	limitersMu   sync.RWMutex
	limiterTouch = make(map[string]time.Time)
)

// RateLimiterConfig 限流器配置
type RateLimiterConfig struct {
	Rate      float64                   // 每秒允许的请求数
	Burst     int                       // 允许的突发请求数
	LimitType string                    // 限流类型: "ip", "path", "combined"
	KeyFunc   func(*gin.Context) string // 自定义键生成函数
}

// DefaultRateLimiterConfig 默认限流器配置
var DefaultRateLimiterConfig = RateLimiterConfig{
	Rate:      5,
	Burst:     10,
	LimitType: "ip",
}

// getLimiter 获取或创建限流器
func getLimiter(key string, cfg RateLimiterConfig) *TokenBucket {
	limitersMu.RLock()
	limiter, exists := limiters[key]
	limitersMu.RUnlock()

	if !exists {
		limiter = NewTokenBucket(cfg.Rate, cfg.Burst)
		limitersMu.Lock()
		limiters[key] = limiter
		limiterTouch[key] = time.Now()
		limitersMu.Unlock()
	} else {
		limitersMu.Lock()
		limiterTouch[key] = time.Now()
		limitersMu.Unlock()
	}

	return limiter
}

// RateLimiter 创建限流中间件
func RateLimiter(config ...RateLimiterConfig) gin.HandlerFunc {
	var cfg RateLimiterConfig
	if len(config) > 0 {
		cfg = config[0]
	} else {
		cfg = DefaultRateLimiterConfig
	}

	if cfg.Rate <= 0 {
		cfg.Rate = DefaultRateLimiterConfig.Rate
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultRateLimiterConfig.Burst
	}
	if cfg.LimitType == "" {
		cfg.LimitType = DefaultRateLimiterConfig.LimitType
	}

	return func(c *gin.Context) {
		var key string
		switch cfg.LimitType {
		case "ip":
			key = c.ClientIP()
		case "path":
			key = c.Request.URL.Path
		case "combined":
			key = c.ClientIP() + ":" + c.Request.URL.Path
		default:
			if cfg.KeyFunc != nil {
				key = cfg.KeyFunc(c)
			} else {
				key = c.ClientIP()
			}
		}

		if !getLimiter(key, cfg).Allow() {
			response.Fail(c, code.ErrTooManyRequests, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// IPRateLimiter 按IP限流
func IPRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "ip",
	})
}

// CombinedRateLimiter 按IP和路径组合限流，登录等敏感接口使用
func CombinedRateLimiter(rate float64, burst int) gin.HandlerFunc {
	return RateLimiter(RateLimiterConfig{
		Rate:      rate,
		Burst:     burst,
		LimitType: "combined",
	})
}

// 定期清理长时间未使用的限流器
func init() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			cleanIdleLimiters(1 * time.Hour)
		}
	}()
}

// cleanIdleLimiters 清理空闲超过idle时长的限流器
func cleanIdleLimiters(idle time.Duration) {
	cutoff := time.Now().Add(-idle)

	limitersMu.Lock()
	defer limitersMu.Unlock()

	for key, touched := range limiterTouch {
		if touched.Before(cutoff) {
			delete(limiters, key)
			delete(limiterTouch, key)
		}
	}
}
