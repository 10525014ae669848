package utils

import (
	"context"
	"time"
)

// RetryWithBackoff 以指数退避重试fn，仅在retryable判定可重试时继续。
// 4xx一类的客户端错误不应重试，由调用方通过retryable排除
func RetryWithBackoff(ctx context.Context, maxRetries int, baseDelay time.Duration, fn func() error, retryable func(error) bool) error {
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for i := 0; i < maxRetries; i++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if retryable != nil && !retryable(lastErr) {
			return lastErr
		}
		if i == maxRetries-1 {
			break
		}

		// 退避等待: baseDelay * 2^i
		delay := baseDelay << uint(i)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}
