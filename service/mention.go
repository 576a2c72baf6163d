package service

import (
	"regexp"
	"strings"
)

// MentionLimit 单条回复最多通知的 @ 人数
const MentionLimit = 5

// @ 后跟 4-20 位字母数字下划线, 以空白结尾
var mentionPattern = regexp.MustCompile(`@([a-zA-Z0-9_]{4,20}\s)`)

// FindAt 提取内容里 @ 到的登录名, 小写去重, 按出现顺序最多返回 limit 个.
// limit <= 0 不限制数量
func FindAt(content string, limit int) []string {
	matches := mentionPattern.FindAllStringSubmatch(content+" ", -1)
	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := strings.ToLower(strings.TrimSpace(m[1]))
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
		if limit > 0 && len(names) >= limit {
			break
		}
	}
	return names
}
