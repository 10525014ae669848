package utils

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "普通标题", input: "Road Closure on Main Street", want: "road-closure-on-main-street"},
		{name: "首尾空白和大小写", input: "  Flood Warning  ", want: "flood-warning"},
		{name: "特殊字符折叠为连字符", input: "Safety Alert: Gas Leak (Sector 7)!", want: "safety-alert-gas-leak-sector-7"},
		{name: "连续特殊字符只产生一个连字符", input: "A --- B", want: "a-b"},
		{name: "空标题回退", input: "!!!", want: "untitled"},
		{name: "空字符串回退", input: "", want: "untitled"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.input))
		})
	}
}

func TestSlugify_LongTitle(t *testing.T) {
	slug := Slugify(strings.Repeat("alert ", 100))
	assert.LessOrEqual(t, len(slug), 180)
	assert.False(t, strings.HasSuffix(slug, "-"))
}

func TestUniqueSlug(t *testing.T) {
	first := UniqueSlug("gas-leak")
	second := UniqueSlug("gas-leak")

	assert.True(t, strings.HasPrefix(first, "gas-leak-"))
	assert.NotEqual(t, first, second)
}

func TestStripHTML(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "纯文本原样返回", input: "hello world", want: "hello world"},
		{name: "剥离脚本标签", input: `<script>alert("x")</script>hello`, want: `alert("x")hello`},
		{name: "剥离嵌套标签", input: "<p><b>bold</b> text</p>", want: "bold text"},
		{name: "裁剪首尾空白", input: "  <div> padded </div>  ", want: "padded"},
		{name: "空字符串", input: "", want: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StripHTML(tc.input))
		})
	}
}

func TestSanitizeFields(t *testing.T) {
	title := "<b>Urgent</b> hiring"
	desc := " plain "
	SanitizeFields(&title, nil, &desc)

	assert.Equal(t, "Urgent hiring", title)
	assert.Equal(t, "plain", desc)
}

func TestRetryWithBackoff(t *testing.T) {
	t.Run("第一次成功不重试", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return nil
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("重试后成功", func(t *testing.T) {
		calls := 0
		err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, func(error) bool { return true })

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("重试耗尽返回最后一次错误", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("still failing")
		err := RetryWithBackoff(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return wantErr
		}, func(error) bool { return true })

		assert.Equal(t, wantErr, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("不可重试错误立即返回", func(t *testing.T) {
		calls := 0
		wantErr := errors.New("bad request")
		err := RetryWithBackoff(context.Background(), 5, time.Millisecond, func() error {
			calls++
			return wantErr
		}, func(error) bool { return false })

		assert.Equal(t, wantErr, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("上下文取消中断退避", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := RetryWithBackoff(ctx, 3, time.Hour, func() error {
			return errors.New("transient")
		}, func(error) bool { return true })

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}
