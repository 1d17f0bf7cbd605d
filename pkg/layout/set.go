package layout

import (
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/theme"
)

// RenderFunc 把一页幻灯片渲染为可视树，对任何合法输入都不得panic
type RenderFunc func(s deck.Slide, cfg *theme.Config, editing bool) *Node

// Set 一套主题支持的布局表
type Set map[deck.SlideType]RenderFunc

// fullSet 全部布局。主题间逻辑共享，差异只来自令牌
func fullSet() Set {
	return Set{
		deck.TypeTitle:      renderTitle,
		deck.TypeContent:    renderContent,
		deck.TypePlan:       renderPlan,
		deck.TypeStats:      renderStats,
		deck.TypeChart:      renderChart,
		deck.TypeComparison: renderComparison,
		deck.TypeCards:      renderCards,
		deck.TypeTimeline:   renderTimeline,
		deck.TypeQuote:      renderQuote,
		deck.TypeTwoColumn:  renderTwoColumn,
		deck.TypeClosing:    renderClosing,
	}
}

// sets 主题ID到布局表的两级注册，启动后只读。
// darkModern 未提供 plan/cards/comparison 布局，
// 命中时走布局缺失占位而非主题缺失占位。
var sets = map[string]Set{
	"executive": fullSet(),
	"darkModern": func() Set {
		s := fullSet()
		delete(s, deck.TypePlan)
		delete(s, deck.TypeCards)
		delete(s, deck.TypeComparison)
		return s
	}(),
}

// SetFor 取一套主题的布局表
func SetFor(themeID string) (Set, bool) {
	s, ok := sets[themeID]
	return s, ok
}

// Render 顶层入口。主题缺失和布局缺失分别渲染带标识的占位页，
// 任何情况下都返回一棵树，绝不静默丢页。
func Render(s deck.Slide, themeID string, editing bool) *Node {
	cfg, ok := theme.Get(themeID)
	if !ok {
		return MissingTheme(themeID)
	}
	set, ok := SetFor(themeID)
	if !ok {
		return MissingTheme(themeID)
	}
	fn, ok := set[s.Type]
	if !ok {
		return MissingLayout(themeID, s.Type, cfg)
	}
	return fn(s, cfg, editing)
}

// RenderDeck 整组渲染，N页进N棵树出
func RenderDeck(slides []deck.Slide, themeID string, editing bool) []*Node {
	trees := make([]*Node, len(slides))
	for i, s := range slides {
		trees[i] = Render(s, themeID, editing)
	}
	return trees
}
