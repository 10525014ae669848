package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Zohaib521321/job-potal-admin/internal/domain/models"
	"github.com/Zohaib521321/job-potal-admin/internal/infrastructure/config"
	"github.com/Zohaib521321/job-potal-admin/pkg/logger"
	"github.com/Zohaib521321/job-potal-admin/utils"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"gorm.io/gorm"
)

// AI 相关的错误
var (
	ErrAIUnavailable = errors.New("ai service unavailable")
	ErrAIParse       = errors.New("could not parse ai response")
	ErrAIEmptyInput  = errors.New("empty ai input")
)

// jsonExpr 从模型回复中提取 JSON 对象，模型可能用 markdown 包裹
const jsonExpr = `(?s)\{.*\}`

var jsonPattern = regexp.MustCompile(jsonExpr)

// 子串匹配的最小长度，过短的缩写（如"BD"）放弃匹配而不是猜测
const minSubstringMatchLen = 3

// categoryKeywords 关键词兜底匹配表，键为分类名需包含的词，
// 值为候选文本中触发该分类的词。示例配置，可按站点分类扩展
var categoryKeywords = []struct {
	CategoryTerms []string
	InputTerms    []string
}{
	{CategoryTerms: []string{"sales"}, InputTerms: []string{"sales", "business development"}},
	{CategoryTerms: []string{"software", "engineering"}, InputTerms: []string{"developer", "engineer", "software"}},
	{CategoryTerms: []string{"marketing"}, InputTerms: []string{"marketing", "digital"}},
	{CategoryTerms: []string{"design"}, InputTerms: []string{"design", "ui", "ux"}},
}

// JobDraft AI 解析出的职位草稿，填充到后台表单
type JobDraft struct {
	Title        string `json:"title"`
	CompanyName  string `json:"company_name"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	CategoryID   *uint  `json:"category_id"`
	JobType      string `json:"job_type"`
	SalaryRange  string `json:"salary_range"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email"`
	Whatsapp     string `json:"whatsapp"`
	ApplyLink    string `json:"apply_link"`
}

// InterfaceAIService AI 智能录入服务接口
type InterfaceAIService interface {
	ParseJobPosting(ctx context.Context, rawText string) (*JobDraft, error)
	GenerateContent(ctx context.Context, prompt string) (string, error)
	MatchCategory(categoryName string, categories []models.Category) *uint
}

// AIService 提供 AI 智能录入相关的服务
type AIService struct {
	DB     *gorm.DB
	Client llms.Model
	Config *config.Config
}

// NewAIService 创建一个新的 AI 服务。
// 未配置 API key 时客户端为空，调用时返回服务不可用
func NewAIService(db *gorm.DB, cfg *config.Config) InterfaceAIService {
	service := &AIService{
		DB:     db,
		Config: cfg,
	}

	if cfg.GeminiAPIKey == "" {
		logger.Warning("未配置 GEMINI_API_KEY，AI 智能录入不可用")
		return service
	}

	client, err := googleai.New(context.Background(),
		googleai.WithAPIKey(cfg.GeminiAPIKey),
		googleai.WithDefaultModel(cfg.GeminiModel),
	)
	if err != nil {
		logger.Error("初始化 Gemini 客户端失败: %v", err)
		return service
	}

	service.Client = client
	return service
}

// 1 ParseJobPosting 解析职位原文，返回结构化草稿。
// 解析失败返回 ErrAIParse，前端回退到手动录入
func (s *AIService) ParseJobPosting(ctx context.Context, rawText string) (*JobDraft, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, ErrAIEmptyInput
	}

	var categories []models.Category
	if err := s.DB.Where("status = ?", "active").Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	prompt := s.buildExtractionPrompt(rawText, categories)
	content, err := s.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	raw := jsonPattern.FindString(content)
	if raw == "" {
		logger.Warning("AI 回复中未找到 JSON 对象")
		return nil, ErrAIParse
	}

	draft := &JobDraft{}
	if err := json.Unmarshal([]byte(raw), draft); err != nil {
		logger.Warning("AI 回复 JSON 解析失败: %v", err)
		return nil, ErrAIParse
	}

	if draft.JobType == "" || !models.IsValidJobType(draft.JobType) {
		draft.JobType = models.JobTypeFullTime
	}
	draft.CategoryID = s.MatchCategory(draft.Category, categories)

	return draft, nil
}

// 2 GenerateContent 原始文本生成，短描述重写等场景直接透传
func (s *AIService) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if s.Client == nil {
		return "", ErrAIUnavailable
	}
	if strings.TrimSpace(prompt) == "" {
		return "", ErrAIEmptyInput
	}
	if len(prompt) > s.Config.AIInputMaxChars {
		prompt = prompt[:s.Config.AIInputMaxChars]
	}

	var content string
	baseDelay := time.Duration(s.Config.AIRetryBaseMs) * time.Millisecond
	err := utils.RetryWithBackoff(ctx, s.Config.AIMaxRetries, baseDelay, func() error {
		resp, genErr := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
		if genErr != nil {
			return genErr
		}
		content = resp
		return nil
	}, isRetryableAIError)
	if err != nil {
		logger.Error("AI 生成失败: %v", err)
		return "", fmt.Errorf("%w: %v", ErrAIUnavailable, err)
	}

	return content, nil
}

// 3 MatchCategory 模糊匹配分类名到分类 ID，按顺序尝试：
// 精确匹配 -> 双向子串匹配 -> 关键词匹配，全部失败则不设置分类。
// 为避免"BD"之类的短缩写误配，子串匹配要求长度不低于3
func (s *AIService) MatchCategory(categoryName string, categories []models.Category) *uint {
	name := strings.ToLower(strings.TrimSpace(categoryName))
	if name == "" || name == "none" {
		return nil
	}

	// 精确匹配
	for i := range categories {
		if strings.ToLower(categories[i].Name) == name {
			return &categories[i].ID
		}
	}

	// 双向子串匹配
	if len(name) >= minSubstringMatchLen {
		for i := range categories {
			catName := strings.ToLower(categories[i].Name)
			if strings.Contains(catName, name) || strings.Contains(name, catName) {
				return &categories[i].ID
			}
		}
	}

	// 关键词匹配
	for i := range categories {
		catName := strings.ToLower(categories[i].Name)
		for _, rule := range categoryKeywords {
			if !containsAny(catName, rule.CategoryTerms) {
				continue
			}
			if containsAny(name, rule.InputTerms) {
				return &categories[i].ID
			}
		}
	}

	return nil
}

// buildExtractionPrompt 构造抽取提示词：规则 + 当前分类列表 + 输出结构
func (s *AIService) buildExtractionPrompt(rawText string, categories []models.Category) string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	categoriesList := strings.Join(names, ", ")

	return fmt.Sprintf(`You are an expert job posting parser and content generator. Extract structured information from the following job posting and generate a concise, well-formatted description.

IMPORTANT RULES:

1. MULTIPLE JOBS: If there are multiple job positions listed, extract information for ONLY THE FIRST job position mentioned.

2. CATEGORY MATCHING: Choose the BEST matching category from this list: [%s]
   - If no reasonable match exists, return "none"

3. CONTACT INFORMATION: Extract ALL contact methods:
   - Email addresses (look for @domain patterns)
   - Phone/WhatsApp numbers (look for patterns like 0311-1234567, +92 311 1234567, or similar)
   - Application URLs or career page links

4. COMPANY NAME:
   - Look for explicit company name mentions (often at the start like "Company X is hiring")
   - If not found, extract from email domain (e.g., hr@company.com -> "Company")
   - Remove words like "hiring", "is expanding", etc.

5. DESCRIPTION FIELD - This is CRITICAL and MUST be concise:
   - ALWAYS generate a professional, structured description even if minimal details are provided
   - Use proper formatting with sections like "About the Role:", "Requirements:", "Responsibilities:", etc.
   - LIMIT bullet points to 3-4 maximum per section - keep it concise!
   - INCLUDE: Job responsibilities, requirements, qualifications, skills needed, experience required
   - EXCLUDE: location details, salary information, contact information, application instructions
   - If the posting ONLY contains a list of positions and contact info with NO actual job details, generate a professional description based on the job title and category

6. LOCATION: Extract city/region mentioned (e.g., "Rawalpindi", "Remote", "Lahore")

7. SALARY: Extract salary/compensation mentioned (e.g., "200K", "$80k-100k", "Competitive")

8. JOB TYPE: Determine from context:
   - "full-time" (default for permanent positions)
   - "contract" (contractual, project-based)
   - "remote" (explicitly mentioned remote work)
   - "internship" (intern positions)

Job Posting:
%s

Return your response in this EXACT JSON format (no additional text, no markdown):
{
  "title": "job title",
  "company_name": "company name",
  "location": "location or empty string",
  "category": "matching category name or none",
  "job_type": "full-time|contract|remote|internship",
  "salary_range": "salary range or empty string",
  "description": "well-formatted professional description with proper structure and sections",
  "contact_email": "email or empty string",
  "whatsapp": "phone number or empty string",
  "apply_link": "application URL or empty string"
}`, categoriesList, rawText)
}

// isRetryableAIError 判定生成错误是否可重试。
// 客户端侧错误（key 无效、配额、安全拦截）重试无意义
func isRetryableAIError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	nonRetryable := []string{"api key", "invalid argument", "permission", "quota", "safety", "blocked"}
	for _, marker := range nonRetryable {
		if strings.Contains(msg, marker) {
			return false
		}
	}
	return true
}

// containsAny 文本是否包含任一词
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
