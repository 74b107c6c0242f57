// Package adapter 将各标的异构的源结构投影为统一的表行。
// 所有函数均为纯函数：不校验、不报错、不访问数据库。
package adapter

import (
	"strings"

	"ResearchSync/internal/model"
)

// DeriveVerdict 由自由文本的 impact 推导四值结论（忽略大小写与首尾空白）
func DeriveVerdict(impact string) string {
	switch strings.ToLower(strings.TrimSpace(impact)) {
	case "bullish", "positive":
		return model.VerdictPositive
	case "bearish", "negative":
		return model.VerdictNegative
	case "mixed":
		return model.VerdictMixed
	default:
		return model.VerdictNeutral
	}
}

// joinNonEmpty 丢弃空串后拼接
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// optional 空串映射为 NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// required 总是非 NULL（active 催化剂的 timeline/impact）
func required(s string) *string {
	return &s
}
