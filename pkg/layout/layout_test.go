package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/theme"
)

func executiveConfig(t *testing.T) *theme.Config {
	t.Helper()
	cfg, ok := theme.Get("executive")
	require.True(t, ok)
	return cfg
}

// 所有注册的(主题,类型)组合对空内容幻灯片都必须渲染出一棵树
func TestLayoutTotality(t *testing.T) {
	for themeID, set := range sets {
		cfg, ok := theme.Get(themeID)
		require.True(t, ok, themeID)
		for slideType, fn := range set {
			empty := deck.Slide{ID: "s", Type: slideType, Title: "标题"}
			tree := fn(empty, cfg, false)
			require.NotNil(t, tree, "%s/%s", themeID, slideType)
			assert.Equal(t, CanvasWidth, tree.W)
			assert.Equal(t, CanvasHeight, tree.H)
		}
	}
}

// 相同输入必须产出相同的树
func TestLayoutDeterminism(t *testing.T) {
	cfg := executiveConfig(t)
	slide := deck.Slide{
		ID:      "s",
		Type:    deck.TypeContent,
		Title:   "要点",
		Content: deck.TextItems("a", "b", "c"),
	}
	first := renderContent(slide, cfg, false)
	second := renderContent(slide, cfg, false)
	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

// 结构化与扁平两种对比内容必须解析出相同的左右列
func TestComparisonReconciliationEquivalence(t *testing.T) {
	structured := []deck.ContentItem{
		deck.SectionItem(deck.Section{Title: "Left", Points: []string{"p1", "p2"}}),
		deck.SectionItem(deck.Section{Title: "Right", Points: []string{"p3", "p4"}}),
	}
	flat := deck.TextItems("Left", "p1", "p2", "Right", "p3", "p4")

	l1, r1, ok := splitComparison(structured)
	require.True(t, ok)
	l2, r2, ok := splitComparison(flat)
	require.True(t, ok)

	assert.Equal(t, l1, l2)
	assert.Equal(t, r1, r2)
	assert.Equal(t, "Left", l1.Title)
	assert.Equal(t, []string{"p1", "p2"}, l1.Points)
	assert.Equal(t, "Right", r1.Title)
	assert.Equal(t, []string{"p3", "p4"}, r1.Points)
}

func TestComparisonInsufficientData(t *testing.T) {
	_, _, ok := splitComparison(deck.TextItems("a", "b", "c"))
	assert.False(t, ok)

	cfg := executiveConfig(t)
	tree := renderComparison(deck.Slide{Type: deck.TypeComparison, Content: deck.TextItems("a")}, cfg, false)
	require.NotNil(t, tree)
	assert.Contains(t, tree.CollectText(), "内容不足")
}

func TestSplitCard(t *testing.T) {
	heading, body := splitCard("Speed: Very fast processing")
	assert.Equal(t, "Speed", heading)
	assert.Equal(t, "Very fast processing", body)

	heading, body = splitCard("Summary")
	assert.Equal(t, "Summary", heading)
	assert.Equal(t, "", body)

	// 只在第一个冒号处切分
	heading, body = splitCard("url: https://example.com")
	assert.Equal(t, "url", heading)
	assert.Equal(t, "https://example.com", body)
}

func TestStatsFallback(t *testing.T) {
	// 结构化stats优先
	s := deck.Slide{
		Type:    deck.TypeStats,
		Stats:   []deck.Stat{{Label: "l", Value: "v"}},
		Content: deck.TextItems("a", "b", "c"),
	}
	stats := statsOf(s)
	require.Len(t, stats, 1)
	assert.Equal(t, "l", stats[0].Label)

	// 三条一组兼容解析
	s = deck.Slide{Type: deck.TypeStats, Content: deck.TextItems("用户数", "1200", "同比增长", "营收", "3.5M", "季度")}
	stats = statsOf(s)
	require.Len(t, stats, 2)
	assert.Equal(t, deck.Stat{Label: "用户数", Value: "1200", Description: "同比增长"}, stats[0])
	assert.Equal(t, deck.Stat{Label: "营收", Value: "3.5M", Description: "季度"}, stats[1])

	// 不是3的倍数时不猜
	s = deck.Slide{Type: deck.TypeStats, Content: deck.TextItems("a", "b", "c", "d")}
	assert.Empty(t, statsOf(s))
}

func TestSplitTwoColumn(t *testing.T) {
	left, right := splitTwoColumn(deck.TextItems("左标题", "左正文", "右标题", "右正文"))
	assert.Equal(t, "左标题", left.Title)
	assert.Equal(t, []string{"左正文"}, left.Points)
	assert.Equal(t, "右标题", right.Title)
	assert.Equal(t, []string{"右正文"}, right.Points)

	// 非四条退化为中点切分
	left, right = splitTwoColumn(deck.TextItems("a", "b", "c", "d", "e"))
	assert.Empty(t, left.Title)
	assert.Equal(t, []string{"a", "b", "c"}, left.Points)
	assert.Equal(t, []string{"d", "e"}, right.Points)
}

func TestRenderPlaceholders(t *testing.T) {
	slide := deck.Slide{ID: "s", Type: deck.TypeContent, Title: "t"}

	tree := Render(slide, "doesNotExist", false)
	require.NotNil(t, tree)
	assert.Contains(t, tree.CollectText(), "主题未找到")

	// darkModern 存在但不支持 plan，应命中布局缺失而非主题缺失
	tree = Render(deck.Slide{ID: "s", Type: deck.TypePlan, Title: "t"}, "darkModern", false)
	require.NotNil(t, tree)
	texts := tree.CollectText()
	assert.Contains(t, texts, "布局未实现")
	assert.NotContains(t, texts, "主题未找到")
}

// N页幻灯片必须产出N棵树，未知主题也不例外
func TestRenderDeckNeverDropsSlides(t *testing.T) {
	slides := []deck.Slide{
		{ID: "a", Type: deck.TypeTitle, Title: "t"},
		{ID: "b", Type: deck.TypeContent, Title: "c", Content: deck.TextItems("x", "y", "z")},
		{ID: "c", Type: deck.TypeClosing, Title: "谢谢"},
	}
	trees := RenderDeck(slides, "executive", false)
	require.Len(t, trees, 3)
	for _, tree := range trees {
		require.NotNil(t, tree)
	}

	trees = RenderDeck(slides, "doesNotExist", false)
	require.Len(t, trees, 3)
	for _, tree := range trees {
		require.NotNil(t, tree)
		assert.Contains(t, tree.CollectText(), "主题未找到")
	}
}

func TestChartClampsValues(t *testing.T) {
	cfg := executiveConfig(t)
	slide := deck.Slide{
		Type:  deck.TypeChart,
		Title: "图",
		Chart: []deck.ChartPoint{{Label: "a", Value: 150}, {Label: "b", Value: -10}},
	}
	tree := renderChart(slide, cfg, false)
	require.NotNil(t, tree)
	tree.Walk(func(n *Node) {
		assert.GreaterOrEqual(t, n.H, 0.0)
		assert.LessOrEqual(t, n.Y+n.H, CanvasHeight+0.001)
	})
}
