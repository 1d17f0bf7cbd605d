package export

import (
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/layout"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/render"
)

// GeneratePDF 按切片顺序把整组幻灯片导出为多页PDF。
// 主题或布局缺失的页渲染为占位页，N页幻灯片必定产出N页文档。
// fontPath 指向用于嵌入的TTF文件，可为空。
func GeneratePDF(slides []deck.Slide, themeID, fontPath string) ([]byte, error) {
	trees := layout.RenderDeck(slides, themeID, false)
	data, err := render.NewDocumentRenderer(fontPath).WritePDF(trees)
	if err != nil {
		logger.Error("导出PDF失败",
			logger.F("themeID", themeID),
			logger.F("slides", len(slides)),
			logger.F("err", err))
		return nil, err
	}
	return data, nil
}
