package deck

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/tidwall/gjson"
)

// ItemKind 内容条目的判定结果
type ItemKind int

const (
	KindEmpty ItemKind = iota
	KindText
	KindSection
	KindTimeline
	KindComparison
	KindOpaque
)

// Section 带标题的要点块
type Section struct {
	Title       string   `json:"title,omitempty"`
	Points      []string `json:"points,omitempty"`
	Description string   `json:"description,omitempty"`
}

// TimelineEntry 时间轴条目
type TimelineEntry struct {
	Year  string `json:"year"`
	Event string `json:"event"`
}

// ComparisonColumn 对比行中的一列，Key 保持原始JSON中的出现顺序
type ComparisonColumn struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ComparisonRow 对比行，aspect 之外的列按文档顺序保存
type ComparisonRow struct {
	Aspect  string             `json:"aspect,omitempty"`
	Columns []ComparisonColumn `json:"columns,omitempty"`
}

// ContentItem 内容条目。AI生成端历史上输出过多种形状（纯文本、
// 要点块、时间轴、对比行），解码时按固定优先级判定一次，之后所有
// 布局只依赖 Kind，不再做鸭子类型判断。
type ContentItem struct {
	Kind       ItemKind
	Text       string
	Section    *Section
	Timeline   *TimelineEntry
	Comparison *ComparisonRow
	Raw        json.RawMessage
}

// Text 构造纯文本条目
func TextItem(s string) ContentItem {
	return ContentItem{Kind: KindText, Text: s}
}

// SectionItem 构造要点块条目
func SectionItem(sec Section) ContentItem {
	return ContentItem{Kind: KindSection, Section: &sec}
}

// TimelineItem 构造时间轴条目
func TimelineItem(year, event string) ContentItem {
	return ContentItem{Kind: KindTimeline, Timeline: &TimelineEntry{Year: year, Event: event}}
}

// ComparisonItem 构造对比行条目
func ComparisonItem(aspect string, columns ...ComparisonColumn) ContentItem {
	return ContentItem{Kind: KindComparison, Comparison: &ComparisonRow{Aspect: aspect, Columns: columns}}
}

// TextItems 批量构造纯文本条目
func TextItems(ss ...string) []ContentItem {
	items := make([]ContentItem, 0, len(ss))
	for _, s := range ss {
		items = append(items, TextItem(s))
	}
	return items
}

// UnmarshalJSON 解码内容条目。判定优先级固定：
// 字符串/数字 → 带points的Section → TimelineEntry → 纯title/description
// 的Section → ComparisonRow → 原样保留。
func (item *ContentItem) UnmarshalJSON(data []byte) error {
	item.Raw = append(item.Raw[:0], data...)

	r := gjson.ParseBytes(data)
	switch r.Type {
	case gjson.Null:
		item.Kind = KindEmpty
		return nil
	case gjson.String:
		item.Kind = KindText
		item.Text = r.String()
		return nil
	case gjson.Number, gjson.True, gjson.False:
		item.Kind = KindText
		item.Text = r.String()
		return nil
	}

	if !r.IsObject() {
		item.Kind = KindOpaque
		return nil
	}

	if points := r.Get("points"); points.IsArray() && len(points.Array()) > 0 {
		sec := &Section{
			Title:       r.Get("title").String(),
			Description: r.Get("description").String(),
		}
		for _, p := range points.Array() {
			sec.Points = append(sec.Points, p.String())
		}
		item.Kind = KindSection
		item.Section = sec
		return nil
	}

	year := r.Get("year")
	event := r.Get("event")
	if year.String() != "" && event.String() != "" {
		item.Kind = KindTimeline
		item.Timeline = &TimelineEntry{Year: year.String(), Event: event.String()}
		return nil
	}

	aspect := r.Get("aspect")
	if !aspect.Exists() {
		if r.Get("title").Exists() || r.Get("description").Exists() {
			item.Kind = KindSection
			item.Section = &Section{
				Title:       r.Get("title").String(),
				Description: r.Get("description").String(),
			}
			return nil
		}
	}

	// 对比行：aspect 之外的标量列按文档顺序收集
	row := &ComparisonRow{Aspect: aspect.String()}
	r.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "aspect" {
			return true
		}
		if value.Type == gjson.String || value.Type == gjson.Number {
			if value.String() != "" {
				row.Columns = append(row.Columns, ComparisonColumn{
					Key:   key.String(),
					Value: value.String(),
				})
			}
		}
		return true
	})
	if aspect.Exists() || len(row.Columns) > 0 {
		item.Kind = KindComparison
		item.Comparison = row
		return nil
	}

	item.Kind = KindOpaque
	return nil
}

// MarshalJSON 按原始形状回写，保证编辑往返不破坏后端数据
func (item ContentItem) MarshalJSON() ([]byte, error) {
	if len(item.Raw) > 0 {
		return item.Raw, nil
	}

	switch item.Kind {
	case KindText:
		return json.Marshal(item.Text)
	case KindSection:
		return json.Marshal(item.Section)
	case KindTimeline:
		return json.Marshal(item.Timeline)
	case KindComparison:
		return marshalComparison(item.Comparison)
	default:
		return []byte("null"), nil
	}
}

// marshalComparison 手工拼装对象以保持列顺序
func marshalComparison(row *ComparisonRow) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	writeField := func(key, value string) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
		return nil
	}
	if row.Aspect != "" {
		if err := writeField("aspect", row.Aspect); err != nil {
			return nil, err
		}
	}
	for _, col := range row.Columns {
		if err := writeField(col.Key, col.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// formatNumber 数值的确定性文本表示
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
