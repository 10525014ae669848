package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugInvalidPattern = regexp.MustCompile(`[^a-z0-9]+`)
	slugDashPattern    = regexp.MustCompile(`-{2,}`)
)

// Slugify 将标题转换为URL slug: 小写、非字母数字折叠为连字符
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugInvalidPattern.ReplaceAllString(slug, "-")
	slug = slugDashPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "untitled"
	}
	if len(slug) > 180 {
		slug = strings.Trim(slug[:180], "-")
	}
	return slug
}

// UniqueSlug 在slug后附加随机后缀，用于解决唯一键冲突
func UniqueSlug(slug string) string {
	return slug + "-" + uuid.NewString()[:8]
}
