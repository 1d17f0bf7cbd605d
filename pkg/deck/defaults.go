package deck

// DefaultSlide 按类型生成带默认内容的新幻灯片，
// 编辑器插入空白页时使用。id 由调用方生成。
func DefaultSlide(id string, t SlideType, position int) Slide {
	s := Slide{
		ID:       id,
		Type:     t,
		Position: position,
	}

	switch t {
	case TypeTitle:
		s.Title = "演示标题"
		s.Subtitle = "副标题"
	case TypeContent:
		s.Title = "内容标题"
		s.Content = TextItems("要点一", "要点二", "要点三")
	case TypePlan:
		s.Title = "目录"
		s.Content = TextItems("第一部分", "第二部分", "第三部分")
	case TypeStats:
		s.Title = "关键数据"
		s.Stats = []Stat{
			{Label: "指标一", Value: "100", Description: "说明"},
			{Label: "指标二", Value: "200", Description: "说明"},
			{Label: "指标三", Value: "300", Description: "说明"},
		}
	case TypeChart:
		s.Title = "数据图表"
		s.Chart = []ChartPoint{
			{Label: "A", Value: 40},
			{Label: "B", Value: 65},
			{Label: "C", Value: 85},
		}
	case TypeComparison:
		s.Title = "对比"
		s.Content = []ContentItem{
			SectionItem(Section{Title: "方案一", Points: []string{"优点一", "优点二"}}),
			SectionItem(Section{Title: "方案二", Points: []string{"优点一", "优点二"}}),
		}
	case TypeCards:
		s.Title = "概览"
		s.Content = TextItems("标题一: 说明", "标题二: 说明", "标题三: 说明")
	case TypeTimeline:
		s.Title = "时间轴"
		s.Content = []ContentItem{
			TimelineItem("2024", "启动"),
			TimelineItem("2025", "推进"),
			TimelineItem("2026", "收尾"),
		}
	case TypeQuote:
		s.Title = "引用"
		s.Quote = &Quote{Text: "在此输入引用内容", Author: "佚名"}
	case TypeTwoColumn:
		s.Title = "双栏"
		s.Content = TextItems("左栏标题", "左栏内容", "右栏标题", "右栏内容")
	case TypeClosing:
		s.Title = "谢谢"
		s.Content = TextItems("欢迎交流")
	default:
		s.Title = "新幻灯片"
	}

	return s
}
