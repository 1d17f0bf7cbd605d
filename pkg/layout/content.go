package layout

import (
	"strings"

	"github.com/yockii/deck_tools/pkg/deck"
)

// column 对比布局解析出的一侧
type column struct {
	Title  string
	Points []string
}

// splitComparison 把内容条目解析为左右两列。兼容两种历史形状：
// 恰好两个带points的结构化块，或至少4条的扁平文本列表。
// 扁平形状按约定切分：首条为左标题，第 n/2 条为右标题，
// 中间归左侧要点，其后归右侧要点。
func splitComparison(items []deck.ContentItem) (left, right column, ok bool) {
	if len(items) == 2 &&
		items[0].Kind == deck.KindSection && len(items[0].Section.Points) > 0 &&
		items[1].Kind == deck.KindSection && len(items[1].Section.Points) > 0 {
		left = column{Title: items[0].Section.Title, Points: items[0].Section.Points}
		right = column{Title: items[1].Section.Title, Points: items[1].Section.Points}
		return left, right, true
	}

	flat := deck.RenderItems(items)
	if len(flat) < 4 {
		return column{}, column{}, false
	}
	mid := len(flat) / 2
	left = column{Title: flat[0], Points: flat[1:mid]}
	right = column{Title: flat[mid], Points: flat[mid+1:]}
	return left, right, true
}

// splitCard 卡片文本按第一个冒号切为标题与正文，无冒号时正文为空
func splitCard(s string) (heading, body string) {
	if i := strings.Index(s, ":"); i >= 0 {
		return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+1:])
	}
	return strings.TrimSpace(s), ""
}

// statsOf 优先使用结构化stats，否则把扁平内容按三条一组解释为
// (label, value, description)。兼容路径，仅当条目数是3的倍数时生效。
func statsOf(s deck.Slide) []deck.Stat {
	if len(s.Stats) > 0 {
		return s.Stats
	}
	flat := deck.RenderItems(s.Content)
	if len(flat) < 3 || len(flat)%3 != 0 {
		return nil
	}
	stats := make([]deck.Stat, 0, len(flat)/3)
	for i := 0; i < len(flat); i += 3 {
		stats = append(stats, deck.Stat{
			Label:       flat[i],
			Value:       flat[i+1],
			Description: flat[i+2],
		})
	}
	return stats
}

// splitTwoColumn 双栏布局采用严格的四条目约定：
// 左标题、左正文、右标题、右正文。条目数不是4时退化为中点切分。
func splitTwoColumn(items []deck.ContentItem) (left, right column) {
	flat := deck.RenderItems(items)
	if len(flat) == 4 {
		return column{Title: flat[0], Points: flat[1:2]}, column{Title: flat[2], Points: flat[3:4]}
	}
	mid := (len(flat) + 1) / 2
	return column{Points: flat[:mid]}, column{Points: flat[mid:]}
}
