package deck

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RenderItemText 将任意内容条目归一化为展示文本。
// 纯函数、对所有输入有定义，布局层可以直接调用而无需判空。
// 这是吸收生成端内容形状漂移的唯一入口。
func RenderItemText(item ContentItem) string {
	switch item.Kind {
	case KindEmpty:
		return ""

	case KindText:
		return item.Text

	case KindSection:
		sec := item.Section
		if sec == nil {
			return ""
		}
		if len(sec.Points) > 0 {
			joined := strings.Join(sec.Points, ", ")
			if sec.Title != "" {
				return sec.Title + ": " + joined
			}
			return joined
		}
		if sec.Title != "" && sec.Description != "" {
			return sec.Title + ": " + sec.Description
		}
		if sec.Title != "" {
			return sec.Title
		}
		return sec.Description

	case KindTimeline:
		tl := item.Timeline
		if tl == nil {
			return ""
		}
		return tl.Year + " — " + tl.Event

	case KindComparison:
		row := item.Comparison
		if row == nil {
			return ""
		}
		values := make([]string, 0, len(row.Columns))
		for _, col := range row.Columns {
			values = append(values, col.Value)
		}
		joined := strings.Join(values, " vs ")
		if row.Aspect == "" {
			return joined
		}
		if joined == "" {
			return row.Aspect
		}
		return row.Aspect + ": " + joined

	default:
		return opaqueText(item.Raw)
	}
}

// RenderItems 批量归一化
func RenderItems(items []ContentItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = RenderItemText(item)
	}
	return out
}

// opaqueText 未识别形状的确定性兜底序列化
func opaqueText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return fmt.Sprintf("%s", raw)
	}
	return buf.String()
}
