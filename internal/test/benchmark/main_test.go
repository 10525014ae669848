package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
)

// 测试配置
type TestConfig struct {
	BaseURL     string `json:"base_url"`
	APIKey      string `json:"api_key"`
	AdminEmail  string `json:"admin_email"`
	AdminPass   string `json:"admin_pass"`
	Concurrency int    `json:"concurrency"`
	Requests    int    `json:"requests"`
}

// 登录请求
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// 登录响应
type LoginResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Token string `json:"token"`
	} `json:"data"`
}

var (
	config    TestConfig
	authToken string
)

// TestMain 测试主函数
func TestMain(m *testing.M) {
	// 只在显式指定目标地址时运行，避免常规 go test 依赖在线服务
	if os.Getenv("BENCHMARK_BASE_URL") == "" {
		os.Exit(m.Run())
	}

	// 加载测试配置
	if err := loadConfig(); err != nil {
		fmt.Printf("加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 获取认证令牌
	if err := getAuthToken(); err != nil {
		fmt.Printf("获取认证令牌失败: %v\n", err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

func liveServerConfigured() bool {
	return authToken != ""
}

// loadConfig 加载测试配置
func loadConfig() error {
	// 默认配置，并发和请求数保持在接口限流阈值以内
	config = TestConfig{
		BaseURL:     os.Getenv("BENCHMARK_BASE_URL"),
		APIKey:      os.Getenv("BENCHMARK_API_KEY"),
		AdminEmail:  "admin@jobportal.com",
		AdminPass:   "admin123",
		Concurrency: 5,
		Requests:    20,
	}

	// 尝试从文件加载配置
	data, err := os.ReadFile("test_config.json")
	if err == nil {
		if err := json.Unmarshal(data, &config); err != nil {
			return fmt.Errorf("解析配置文件失败: %v", err)
		}
	}

	return nil
}

// getAuthToken 获取认证令牌
func getAuthToken() error {
	loginReq := LoginRequest{
		Email:    config.AdminEmail,
		Password: config.AdminPass,
	}
	body, err := json.Marshal(loginReq)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, config.BaseURL+"/auth/login", bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if config.APIKey != "" {
		req.Header.Set("x-api-key", config.APIKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("登录失败: status=%d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return fmt.Errorf("解析登录响应失败: %v", err)
	}
	if loginResp.Data.Token == "" {
		return fmt.Errorf("登录响应缺少令牌")
	}

	authToken = loginResp.Data.Token
	return nil
}

// TestJobList 测试职位列表接口
func TestJobList(t *testing.T) {
	if !liveServerConfigured() {
		t.Skip("未设置 BENCHMARK_BASE_URL，跳过在线基准测试")
	}
	benchmark := NewAPIBenchmark(config.BaseURL, config.APIKey, config.Concurrency, config.Requests, authToken)
	result := benchmark.RunGET("/jobs")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("职位列表接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestJobStats 测试职位统计接口
func TestJobStats(t *testing.T) {
	if !liveServerConfigured() {
		t.Skip("未设置 BENCHMARK_BASE_URL，跳过在线基准测试")
	}
	benchmark := NewAPIBenchmark(config.BaseURL, config.APIKey, config.Concurrency, config.Requests, authToken)
	result := benchmark.RunGET("/jobs/stats/summary")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("职位统计接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestCategoryList 测试分类列表接口
func TestCategoryList(t *testing.T) {
	if !liveServerConfigured() {
		t.Skip("未设置 BENCHMARK_BASE_URL，跳过在线基准测试")
	}
	benchmark := NewAPIBenchmark(config.BaseURL, config.APIKey, config.Concurrency, config.Requests, authToken)
	result := benchmark.RunGET("/categories")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("分类列表接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestFeedbackList 测试反馈列表接口
func TestFeedbackList(t *testing.T) {
	if !liveServerConfigured() {
		t.Skip("未设置 BENCHMARK_BASE_URL，跳过在线基准测试")
	}
	benchmark := NewAPIBenchmark(config.BaseURL, config.APIKey, config.Concurrency, config.Requests, authToken)
	result := benchmark.RunGET("/feedback")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("反馈列表接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}

// TestAnalyticsOverview 测试数据总览接口
func TestAnalyticsOverview(t *testing.T) {
	if !liveServerConfigured() {
		t.Skip("未设置 BENCHMARK_BASE_URL，跳过在线基准测试")
	}
	benchmark := NewAPIBenchmark(config.BaseURL, config.APIKey, config.Concurrency, config.Requests, authToken)
	result := benchmark.RunGET("/analytics/overview")
	result.PrintResult()

	if result.FailureCount > 0 {
		t.Errorf("数据总览接口测试失败: 成功率 %.2f%%", float64(result.SuccessCount)/float64(result.TotalRequests)*100)
	}
}
