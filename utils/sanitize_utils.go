package utils

import (
	"regexp"
	"strings"
)

// 用户提交的文本字段入库前统一剥离HTML标签
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML 去除字符串中的HTML标签并裁剪首尾空白
func StripHTML(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(htmlTagPattern.ReplaceAllString(input, ""))
}

// SanitizeFields 就地清理一组字符串字段
func SanitizeFields(fields ...*string) {
	for _, field := range fields {
		if field != nil {
			*field = StripHTML(*field)
		}
	}
}
