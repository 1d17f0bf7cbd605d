package deck

// SlideType 幻灯片布局类型
type SlideType string

const (
	TypeTitle      SlideType = "title"
	TypeContent    SlideType = "content"
	TypePlan       SlideType = "plan"
	TypeStats      SlideType = "stats"
	TypeChart      SlideType = "chart"
	TypeComparison SlideType = "comparison"
	TypeCards      SlideType = "cards"
	TypeTimeline   SlideType = "timeline"
	TypeQuote      SlideType = "quote"
	TypeTwoColumn  SlideType = "twoColumn"
	TypeClosing    SlideType = "closing"
)

// AllTypes 全部已知的幻灯片类型，顺序即编辑器中的展示顺序
var AllTypes = []SlideType{
	TypeTitle, TypeContent, TypePlan, TypeStats, TypeChart,
	TypeComparison, TypeCards, TypeTimeline, TypeQuote,
	TypeTwoColumn, TypeClosing,
}

// Valid 检查是否为已知类型
func (t SlideType) Valid() bool {
	for _, known := range AllTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Stat 统计项，仅 stats 类型幻灯片使用
type Stat struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

// ChartPoint 图表数据点，value 为百分比数值
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// Quote 引用内容
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Slide 一页幻灯片，content 为异构内容条目序列
type Slide struct {
	ID       string        `json:"id"`
	Type     SlideType     `json:"type"`
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle,omitempty"`
	Content  []ContentItem `json:"content"`
	Stats    []Stat        `json:"stats,omitempty"`
	Chart    []ChartPoint  `json:"chartData,omitempty"`
	Quote    *Quote        `json:"quote,omitempty"`
	Notes    string        `json:"notes,omitempty"`
	Position int           `json:"position"`
}
