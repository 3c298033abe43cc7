package domain

import "strings"

// ResolveUsername 从任意 profile URL 或裸用户名中提取用户名
// 算法：去掉末尾的 "/"，按 "/" 切分，取最后一段
// 纯函数，不做字符集校验；无效用户名由下游的 GitHub 查询发现
func ResolveUsername(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return ""
	}
	parts := strings.Split(trimmed, "/")
	return parts[len(parts)-1]
}
