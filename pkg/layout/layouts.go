package layout

import (
	"fmt"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/theme"
)

// 布局是纯函数：相同的 (slide, cfg) 必定产出相同的可视树。
// 主题间的视觉差异只来自传入的令牌，布局逻辑不区分主题。

// renderTitle 封面页。左四成留白，右六成主色块承载标题
func renderTitle(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	c := cfg.Colors
	panel := Frame(CanvasWidth*0.4, 0, CanvasWidth*0.6, CanvasHeight, Style{Fill: c.Primary},
		Shape(ShapeCircle, CanvasWidth*0.4+48, 48, 48, 48, Style{Fill: c.Secondary}),
		Text(CanvasWidth*0.4+80, 120, CanvasWidth*0.6-160, 240, s.Title, Style{
			Color:      "#FFFFFF",
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   72,
			Bold:       true,
		}),
	)
	if s.Subtitle != "" {
		panel.Add(Text(CanvasWidth*0.4+80, 400, CanvasWidth*0.6-160, 120, s.Subtitle, Style{
			Color:      "rgba(255,255,255,0.9)",
			FontFamily: cfg.Fonts.Body.Family,
			FontSize:   30,
		}))
	}
	return Canvas(c.Surface,
		Frame(0, 0, CanvasWidth*0.4, CanvasHeight, Style{Fill: c.Background}),
		panel,
	)
}

// renderContent 顶栏标题加要点列表
func renderContent(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	c := cfg.Colors
	root := Canvas(c.Background,
		Frame(0, 0, CanvasWidth, 112, Style{Fill: c.Primary},
			Text(80, 28, CanvasWidth-160, 60, s.Title, Style{
				Color:      "#FFFFFF",
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   48,
				Bold:       true,
			}),
		),
		Shape(ShapeTriangle, CanvasWidth-128, 0, 128, 128, Style{Fill: c.Secondary}),
	)
	y := 180.0
	for _, line := range deck.RenderItems(s.Content) {
		root.Add(
			Shape(ShapeCircle, 80, y+14, 16, 16, Style{Fill: c.Primary}),
			Text(128, y, CanvasWidth-208, 72, line, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   30,
			}),
		)
		y += 96
	}
	return root
}

// renderPlan 目录页，编号圆点加条目
func renderPlan(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
	)
	y := 260.0
	for i, line := range deck.RenderItems(s.Content) {
		root.Add(
			Shape(ShapeCircle, 80, y, 72, 72, Style{Fill: c.Primary}),
			Text(80, y+14, 72, 44, fmt.Sprintf("%d", i+1), Style{
				Color:      "#FFFFFF",
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   36,
				Bold:       true,
				Align:      AlignCenter,
			}),
			Text(192, y+8, CanvasWidth-272, 60, line, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   32,
			}),
		)
		y += 120
	}
	return root
}

// renderStats 大数字统计页。无结构化stats时尝试三条一组的兼容解析
func renderStats(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	stats := statsOf(s)
	if len(stats) == 0 {
		return insufficientData(s.Type, cfg)
	}
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
	)
	y := 260.0
	for _, stat := range stats {
		root.Add(
			Text(80, y, 560, 160, stat.Value, Style{
				Color:      c.Primary,
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   128,
				Bold:       true,
			}),
			Text(700, y+20, CanvasWidth-780, 56, stat.Label, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   36,
				Bold:       true,
			}),
			Text(700, y+90, CanvasWidth-780, 40, stat.Description, Style{
				Color:      c.TextLight,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   24,
			}),
		)
		y += 200
	}
	return root
}

// renderChart 纵向柱状图。柱高按value的百分比占满600点绘图区
func renderChart(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	if len(s.Chart) == 0 {
		return insufficientData(s.Type, cfg)
	}
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
	)
	const (
		plotTop    = 260.0
		plotHeight = 600.0
	)
	gap := 64.0
	barWidth := (CanvasWidth - 160 - gap*float64(len(s.Chart)-1)) / float64(len(s.Chart))
	x := 80.0
	for _, point := range s.Chart {
		ratio := point.Value / 100
		if ratio < 0 {
			ratio = 0
		}
		if ratio > 1 {
			ratio = 1
		}
		barHeight := plotHeight * ratio
		fill := point.Color
		gradientEnd := ""
		if fill == "" {
			fill = c.Primary
			gradientEnd = c.Secondary
		}
		root.Add(
			Frame(x, plotTop+plotHeight-barHeight, barWidth, barHeight, Style{
				Fill:        fill,
				GradientEnd: gradientEnd,
				Radius:      24,
			}),
			Text(x, plotTop+plotHeight-barHeight+16, barWidth, 48, fmt.Sprintf("%.0f%%", point.Value), Style{
				Color:      "#FFFFFF",
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   36,
				Bold:       true,
				Align:      AlignCenter,
			}),
			Text(x, plotTop+plotHeight+32, barWidth, 40, point.Label, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   24,
				Bold:       true,
				Align:      AlignCenter,
			}),
		)
		x += barWidth + gap
	}
	return root
}

// renderComparison 左右对照。两种历史内容形状收敛为同一结构，
// 中缝放 VS 标记
func renderComparison(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	left, right, ok := splitComparison(s.Content)
	if !ok {
		return insufficientData(s.Type, cfg)
	}
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
		Frame(CanvasWidth/2-2, 240, 4, 640, Style{Fill: c.Border}),
		Shape(ShapeCircle, CanvasWidth/2-56, 520, 112, 112, Style{Fill: c.Primary}),
		Text(CanvasWidth/2-56, 552, 112, 48, "VS", Style{
			Color:      "#FFFFFF",
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   40,
			Bold:       true,
			Align:      AlignCenter,
		}),
	)
	root.Add(comparisonColumn(left, 80, cfg)...)
	root.Add(comparisonColumn(right, CanvasWidth/2+80, cfg)...)
	return root
}

func comparisonColumn(col column, x float64, cfg *theme.Config) []*Node {
	c := cfg.Colors
	width := CanvasWidth/2 - 160
	nodes := []*Node{
		Text(x, 240, width, 64, col.Title, Style{
			Color:      c.Primary,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   44,
			Bold:       true,
		}),
	}
	y := 360.0
	for _, point := range col.Points {
		nodes = append(nodes,
			Shape(ShapeCircle, x, y+12, 14, 14, Style{Fill: c.Secondary}),
			Text(x+40, y, width-40, 56, point, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   28,
			}),
		)
		y += 80
	}
	return nodes
}

// renderCards 卡片网格，每行三张。文本按第一个冒号切为标题与正文
func renderCards(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
	)
	const (
		perRow     = 3
		gap        = 48.0
		cardHeight = 280.0
	)
	cardWidth := (CanvasWidth - 160 - gap*(perRow-1)) / perRow
	for i, line := range deck.RenderItems(s.Content) {
		heading, body := splitCard(line)
		x := 80 + float64(i%perRow)*(cardWidth+gap)
		y := 260 + float64(i/perRow)*(cardHeight+gap)
		root.Add(Frame(x, y, cardWidth, cardHeight, Style{
			Fill:        c.Surface,
			Radius:      24,
			BorderColor: c.Border,
			BorderWidth: 2,
			Shadow:      cfg.Shadows.MD,
		},
			Text(x+40, y+40, cardWidth-80, 56, heading, Style{
				Color:      c.Primary,
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   36,
				Bold:       true,
			}),
			Text(x+40, y+120, cardWidth-80, cardHeight-160, body, Style{
				Color:      c.TextLight,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   24,
			}),
		))
	}
	return root
}

// renderTimeline 横向里程碑，最多取前四条
func renderTimeline(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
	)
	lines := deck.RenderItems(s.Content)
	if len(lines) > 4 {
		lines = lines[:4]
	}
	if len(lines) == 0 {
		return insufficientData(s.Type, cfg)
	}
	colWidth := (CanvasWidth - 160) / float64(len(lines))
	for i, line := range lines {
		x := 80 + float64(i)*colWidth
		center := x + colWidth/2
		root.Add(
			Shape(ShapeCircle, center-48, 320, 96, 96, Style{
				Fill:   c.Primary,
				Shadow: cfg.Shadows.XL,
			}),
			Text(center-48, 344, 96, 48, fmt.Sprintf("%d", i+1), Style{
				Color:      "#FFFFFF",
				FontFamily: cfg.Fonts.Heading.Family,
				FontSize:   44,
				Bold:       true,
				Align:      AlignCenter,
			}),
			Text(x+16, 480, colWidth-32, 200, line, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   26,
				Align:      AlignCenter,
			}),
		)
	}
	return root
}

// renderQuote 居中引用页
func renderQuote(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	if s.Quote == nil || s.Quote.Text == "" {
		return insufficientData(s.Type, cfg)
	}
	c := cfg.Colors
	return Canvas(c.Background,
		Text(CanvasWidth/2-800, 340, 1600, 280, s.Quote.Text, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Italic:     true,
			Align:      AlignCenter,
		}),
		Text(CanvasWidth/2-800, 700, 1600, 64, "— "+s.Quote.Author, Style{
			Color:      c.TextLight,
			FontFamily: cfg.Fonts.Body.Family,
			FontSize:   36,
			Bold:       true,
			Align:      AlignCenter,
		}),
	)
}

// renderTwoColumn 双栏页。恰好四条内容时按
// 左标题/左正文/右标题/右正文解释，否则中点切分
func renderTwoColumn(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	left, right := splitTwoColumn(s.Content)
	c := cfg.Colors
	root := Canvas(c.Background,
		Text(80, 80, CanvasWidth-160, 80, s.Title, Style{
			Color:      c.Text,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   60,
			Bold:       true,
		}),
	)
	root.Add(twoColumnSide(left, 80, cfg)...)
	root.Add(twoColumnSide(right, CanvasWidth/2+40, cfg)...)
	return root
}

func twoColumnSide(col column, x float64, cfg *theme.Config) []*Node {
	c := cfg.Colors
	width := CanvasWidth/2 - 120
	var nodes []*Node
	y := 260.0
	if col.Title != "" {
		nodes = append(nodes, Text(x, y, width, 64, col.Title, Style{
			Color:      c.Primary,
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   40,
			Bold:       true,
		}))
		y += 100
	}
	for _, point := range col.Points {
		nodes = append(nodes,
			Shape(ShapeCircle, x, y+12, 14, 14, Style{Fill: c.Primary}),
			Text(x+40, y, width-40, 64, point, Style{
				Color:      c.Text,
				FontFamily: cfg.Fonts.Body.Family,
				FontSize:   30,
			}),
		)
		y += 88
	}
	return nodes
}

// renderClosing 致谢页，主色到次色的渐变底
func renderClosing(s deck.Slide, cfg *theme.Config, _ bool) *Node {
	c := cfg.Colors
	root := Frame(0, 0, CanvasWidth, CanvasHeight, Style{
		Fill:        c.Primary,
		GradientEnd: c.Secondary,
	},
		Shape(ShapeCircle, CanvasWidth/2-32, 200, 64, 64, Style{Fill: c.Secondary}),
		Text(0, 420, CanvasWidth, 120, s.Title, Style{
			Color:      "#FFFFFF",
			FontFamily: cfg.Fonts.Heading.Family,
			FontSize:   72,
			Bold:       true,
			Align:      AlignCenter,
		}),
	)
	if lines := deck.RenderItems(s.Content); len(lines) > 0 && lines[0] != "" {
		root.Add(Text(0, 580, CanvasWidth, 64, lines[0], Style{
			Color:      "rgba(255,255,255,0.9)",
			FontFamily: cfg.Fonts.Body.Family,
			FontSize:   30,
			Align:      AlignCenter,
		}))
	}
	return root
}
