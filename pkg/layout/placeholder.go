package layout

import (
	"fmt"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/theme"
)

// 占位页必须在文本中标明缺失的键，编辑者看到的是可行动的提示
// 而非一页空白。

// MissingTheme 主题未注册时的占位页
func MissingTheme(themeID string) *Node {
	return placeholderPage("#F3F4F6", "#9CA3AF", "#4B5563",
		"主题未找到", fmt.Sprintf("主题 %q 未注册", themeID))
}

// MissingLayout 主题存在但缺少该类型布局时的占位页
func MissingLayout(themeID string, t deck.SlideType, cfg *theme.Config) *Node {
	return placeholderPage(cfg.Colors.Background, cfg.Colors.Border, cfg.Colors.TextLight,
		"布局未实现", fmt.Sprintf("主题 %q 不支持 %q 类型", themeID, t))
}

// insufficientData 内容不足以支撑该布局时的占位页
func insufficientData(t deck.SlideType, cfg *theme.Config) *Node {
	return placeholderPage(cfg.Colors.Background, cfg.Colors.Border, cfg.Colors.TextLight,
		"内容不足", fmt.Sprintf("%q 布局所需的内容不完整", t))
}

func placeholderPage(background, border, textColor, heading, detail string) *Node {
	return Canvas(background,
		Frame(160, 160, CanvasWidth-320, CanvasHeight-320, Style{
			BorderColor: border,
			BorderWidth: 4,
			Dashed:      true,
			Radius:      24,
		},
			Text(160, 480, CanvasWidth-320, 72, heading, Style{
				Color:    textColor,
				FontSize: 56,
				Bold:     true,
				Align:    AlignCenter,
			}),
			Text(160, 580, CanvasWidth-320, 48, detail, Style{
				Color:    textColor,
				FontSize: 30,
				Align:    AlignCenter,
			}),
		),
	)
}
