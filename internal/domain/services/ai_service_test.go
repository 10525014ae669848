package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []models.Category {
	return []models.Category{
		{ID: 1, Name: "Software Engineering", Status: models.CategoryStatusActive},
		{ID: 2, Name: "Sales & BD", Status: models.CategoryStatusActive},
		{ID: 3, Name: "Graphic Design", Status: models.CategoryStatusActive},
	}
}

func TestAIService_MatchCategory(t *testing.T) {
	service := &AIService{}
	categories := testCategories()

	testCases := []struct {
		name     string
		input    string
		wantID   *uint
		wantNone bool
	}{
		{
			name:   "精确匹配，忽略大小写",
			input:  "sales & bd",
			wantID: uintPtr(2),
		},
		{
			name:   "子串匹配：输入包含分类名",
			input:  "Senior Software Engineering Lead",
			wantID: uintPtr(1),
		},
		{
			name:   "子串匹配：分类名包含输入",
			input:  "Design",
			wantID: uintPtr(3),
		},
		{
			name:   "关键词匹配：developer 归入软件分类",
			input:  "Software Developer",
			wantID: uintPtr(1),
		},
		{
			name:   "关键词匹配：business development 归入销售分类",
			input:  "Business Development",
			wantID: uintPtr(2),
		},
		{
			name:     "短缩写不做子串匹配",
			input:    "BD",
			wantNone: true,
		},
		{
			name:     "模型返回 none 时不设置分类",
			input:    "none",
			wantNone: true,
		},
		{
			name:     "none 忽略大小写",
			input:    "None",
			wantNone: true,
		},
		{
			name:     "空输入不设置分类",
			input:    "   ",
			wantNone: true,
		},
		{
			name:     "完全无关的分类名",
			input:    "Astrophysics",
			wantNone: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := service.MatchCategory(tc.input, categories)
			if tc.wantNone {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.wantID, *got)
		})
	}
}

func TestAIService_MatchCategory_EmptyCategoryList(t *testing.T) {
	service := &AIService{}
	assert.Nil(t, service.MatchCategory("Software Engineering", nil))
}

func TestJSONPatternExtraction(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "纯 JSON 回复",
			content: `{"title":"Go Developer"}`,
			want:    `{"title":"Go Developer"}`,
		},
		{
			name: "markdown 代码块包裹",
			content: "```json\n" + `{"title":"Go Developer","job_type":"full-time"}` + "\n```",
			want: `{"title":"Go Developer","job_type":"full-time"}`,
		},
		{
			name:    "JSON 前后有说明文字",
			content: "Here is the result:\n{\"title\":\"Designer\"}\nLet me know if you need more.",
			want:    `{"title":"Designer"}`,
		},
		{
			name:    "跨行 JSON",
			content: "{\n  \"title\": \"Analyst\",\n  \"location\": \"Lahore\"\n}",
			want:    "{\n  \"title\": \"Analyst\",\n  \"location\": \"Lahore\"\n}",
		},
		{
			name:    "回复中没有 JSON",
			content: "Sorry, I could not parse this job posting.",
			want:    "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, jsonPattern.FindString(tc.content))
		})
	}
}

func TestIsRetryableAIError(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil 错误不重试", err: nil, want: false},
		{name: "网络超时类错误重试", err: errors.New("context deadline exceeded"), want: true},
		{name: "服务端 500 重试", err: errors.New("googleapi: Error 500: internal error"), want: true},
		{name: "API key 无效不重试", err: errors.New("API key not valid"), want: false},
		{name: "配额用尽不重试", err: errors.New("quota exceeded for quota metric"), want: false},
		{name: "安全拦截不重试", err: errors.New("response was blocked due to safety settings"), want: false},
		{name: "参数错误不重试", err: errors.New("rpc error: code = InvalidArgument desc = invalid argument"), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, isRetryableAIError(tc.err))
		})
	}
}

func TestAIService_GenerateContent_Degraded(t *testing.T) {
	// 未配置 API key 时 Client 为空，直接返回服务不可用
	service := &AIService{
		Config: &config.Config{AIInputMaxChars: 20000, AIMaxRetries: 3, AIRetryBaseMs: 1},
	}

	_, err := service.GenerateContent(context.Background(), "rewrite this description")
	assert.ErrorIs(t, err, ErrAIUnavailable)
}

func TestAIService_BuildExtractionPrompt(t *testing.T) {
	service := &AIService{}
	prompt := service.buildExtractionPrompt("We are hiring a Go developer in Lahore.", testCategories())

	// 分类列表和原文都要出现在提示词里
	assert.Contains(t, prompt, "Software Engineering, Sales & BD, Graphic Design")
	assert.Contains(t, prompt, "We are hiring a Go developer in Lahore.")
	assert.Contains(t, prompt, `"job_type": "full-time|contract|remote|internship"`)
}

func uintPtr(v uint) *uint {
	return &v
}
