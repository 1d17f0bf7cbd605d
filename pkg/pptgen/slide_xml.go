package pptgen

import (
	"fmt"
	"strings"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/theme"
)

// 页面排版用的EMU坐标
const (
	marginEMU       = 838200
	contentWidthEMU = slideWidthEMU - marginEMU*2
	columnWidthEMU  = (contentWidthEMU - marginEMU) / 2
)

// 生成幻灯片XML内容
func (g *Generator) generateSlideXML(slide deck.Slide, cfg *theme.Config) string {
	var contentXML string

	switch slide.Type {
	case deck.TypeTitle:
		contentXML = g.generateTitleSlideXML(slide, cfg)
	case deck.TypeQuote:
		contentXML = g.generateQuoteSlideXML(slide, cfg)
	case deck.TypeStats:
		contentXML = g.generateStatsSlideXML(slide, cfg)
	case deck.TypeTwoColumn, deck.TypeComparison:
		contentXML = g.generateTwoColumnSlideXML(slide, cfg)
	case deck.TypeClosing:
		contentXML = g.generateClosingSlideXML(slide, cfg)
	default:
		// content/plan/cards/timeline/chart 都走标题加要点的通用版式，
		// 内容条目先过归一化
		contentXML = g.generateContentSlideXML(slide, cfg)
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
    <p:cSld>
        <p:spTree>
            <p:nvGrpSpPr>
                <p:cNvPr id="1" name=""/>
                <p:cNvGrpSpPr/>
                <p:nvPr/>
            </p:nvGrpSpPr>
            <p:grpSpPr>
                <a:xfrm>
                    <a:off x="0" y="0"/>
                    <a:ext cx="0" cy="0"/>
                    <a:chOff x="0" y="0"/>
                    <a:chExt cx="0" cy="0"/>
                </a:xfrm>
            </p:grpSpPr>
            %s
        </p:spTree>
    </p:cSld>
    <p:clrMapOvr>
        <a:masterClrMapping/>
    </p:clrMapOvr>
</p:sld>`, contentXML)
}

// textBox 一个绝对定位的文本框，body为一组<a:p>段落
func textBox(id int, name string, x, y, cx, cy int, body string) string {
	return fmt.Sprintf(`
            <p:sp>
                <p:nvSpPr>
                    <p:cNvPr id="%d" name="%s"/>
                    <p:cNvSpPr>
                        <a:spLocks noGrp="1"/>
                    </p:cNvSpPr>
                    <p:nvPr/>
                </p:nvSpPr>
                <p:spPr>
                    <a:xfrm>
                        <a:off x="%d" y="%d"/>
                        <a:ext cx="%d" cy="%d"/>
                    </a:xfrm>
                </p:spPr>
                <p:txBody>
                    <a:bodyPr wrap="square"/>
                    <a:lstStyle/>%s
                </p:txBody>
            </p:sp>`, id, name, x, y, cx, cy, body)
}

// paragraph 一段文字。color为RRGGBB，size为磅的百分之一
func paragraph(text, color, typeface string, size int, bold, italic, bullet, center bool) string {
	props := ""
	if bullet {
		props = `
                        <a:pPr lvl="0">
                            <a:buChar char="•"/>
                        </a:pPr>`
	} else if center {
		props = `
                        <a:pPr algn="ctr"/>`
	}
	flags := ""
	if bold {
		flags += ` b="1"`
	}
	if italic {
		flags += ` i="1"`
	}
	return fmt.Sprintf(`
                    <a:p>%s
                        <a:r>
                            <a:rPr lang="zh-CN" sz="%d"%s>
                                <a:solidFill><a:srgbClr val="%s"/></a:solidFill>
                                <a:latin typeface="%s"/>
                            </a:rPr>
                            <a:t>%s</a:t>
                        </a:r>
                    </a:p>`, props, size, flags, color, escapeXML(typeface), escapeXML(text))
}

// 生成标题幻灯片内容
func (g *Generator) generateTitleSlideXML(slide deck.Slide, cfg *theme.Config) string {
	heading := fontToken(cfg.Fonts.Heading.Family)
	body := fontToken(cfg.Fonts.Body.Family)
	xml := textBox(2, "Title", marginEMU, 2000000, contentWidthEMU, 1300000,
		paragraph(slide.Title, hexToken(cfg.Colors.Primary), heading, 4400, true, false, false, false))
	if slide.Subtitle != "" {
		xml += textBox(3, "Subtitle", marginEMU, 3400000, contentWidthEMU, 800000,
			paragraph(slide.Subtitle, hexToken(cfg.Colors.TextLight), body, 2800, false, false, false, false))
	}
	return xml
}

// 生成通用内容幻灯片：标题加要点列表
func (g *Generator) generateContentSlideXML(slide deck.Slide, cfg *theme.Config) string {
	heading := fontToken(cfg.Fonts.Heading.Family)
	bodyFont := fontToken(cfg.Fonts.Body.Family)
	textColor := hexToken(cfg.Colors.Text)

	var items strings.Builder
	for _, line := range deck.RenderItems(slide.Content) {
		items.WriteString(paragraph(line, textColor, bodyFont, 2400, false, false, true, false))
	}

	return textBox(2, "Title", marginEMU, 457200, contentWidthEMU, 914400,
		paragraph(slide.Title, hexToken(cfg.Colors.Primary), heading, 3600, true, false, false, false)) +
		textBox(3, "Content", marginEMU, 1600200, contentWidthEMU, 4400000, items.String())
}

// 生成统计幻灯片：每项一行，数值加粗主色
func (g *Generator) generateStatsSlideXML(slide deck.Slide, cfg *theme.Config) string {
	heading := fontToken(cfg.Fonts.Heading.Family)
	bodyFont := fontToken(cfg.Fonts.Body.Family)

	var items strings.Builder
	for _, stat := range slide.Stats {
		items.WriteString(paragraph(stat.Value+"  "+stat.Label, hexToken(cfg.Colors.Primary), heading, 3200, true, false, false, false))
		if stat.Description != "" {
			items.WriteString(paragraph(stat.Description, hexToken(cfg.Colors.TextLight), bodyFont, 2000, false, false, false, false))
		}
	}

	return textBox(2, "Title", marginEMU, 457200, contentWidthEMU, 914400,
		paragraph(slide.Title, hexToken(cfg.Colors.Primary), heading, 3600, true, false, false, false)) +
		textBox(3, "Stats", marginEMU, 1600200, contentWidthEMU, 4400000, items.String())
}

// 生成引用幻灯片内容
func (g *Generator) generateQuoteSlideXML(slide deck.Slide, cfg *theme.Config) string {
	heading := fontToken(cfg.Fonts.Heading.Family)
	bodyFont := fontToken(cfg.Fonts.Body.Family)

	quoteText := ""
	author := ""
	if slide.Quote != nil {
		quoteText = slide.Quote.Text
		author = slide.Quote.Author
	}

	xml := textBox(2, "Quote", marginEMU, 2300000, contentWidthEMU, 1800000,
		paragraph(quoteText, hexToken(cfg.Colors.Text), heading, 3600, false, true, false, true))
	if author != "" {
		xml += textBox(3, "Author", marginEMU, 4300000, contentWidthEMU, 600000,
			paragraph("— "+author, hexToken(cfg.Colors.TextLight), bodyFont, 2400, true, false, false, true))
	}
	return xml
}

// 生成两栏幻灯片：twoColumn 按四条目约定拆分，
// comparison 退化为中点切分的左右列表
func (g *Generator) generateTwoColumnSlideXML(slide deck.Slide, cfg *theme.Config) string {
	heading := fontToken(cfg.Fonts.Heading.Family)
	bodyFont := fontToken(cfg.Fonts.Body.Family)
	textColor := hexToken(cfg.Colors.Text)

	flat := deck.RenderItems(slide.Content)
	mid := (len(flat) + 1) / 2
	renderSide := func(lines []string) string {
		var sb strings.Builder
		for i, line := range lines {
			if i == 0 {
				sb.WriteString(paragraph(line, hexToken(cfg.Colors.Primary), heading, 2800, true, false, false, false))
				continue
			}
			sb.WriteString(paragraph(line, textColor, bodyFont, 2400, false, false, true, false))
		}
		return sb.String()
	}

	return textBox(2, "Title", marginEMU, 457200, contentWidthEMU, 914400,
		paragraph(slide.Title, hexToken(cfg.Colors.Primary), heading, 3600, true, false, false, false)) +
		textBox(3, "Left Column", marginEMU, 1600200, columnWidthEMU, 4400000, renderSide(flat[:mid])) +
		textBox(4, "Right Column", marginEMU+columnWidthEMU+marginEMU, 1600200, columnWidthEMU, 4400000, renderSide(flat[mid:]))
}

// 生成致谢幻灯片内容
func (g *Generator) generateClosingSlideXML(slide deck.Slide, cfg *theme.Config) string {
	heading := fontToken(cfg.Fonts.Heading.Family)
	bodyFont := fontToken(cfg.Fonts.Body.Family)

	xml := textBox(2, "Thank You", marginEMU, 2500000, contentWidthEMU, 1300000,
		paragraph(slide.Title, hexToken(cfg.Colors.Primary), heading, 4400, true, false, false, true))
	if lines := deck.RenderItems(slide.Content); len(lines) > 0 && lines[0] != "" {
		xml += textBox(3, "Message", marginEMU, 3900000, contentWidthEMU, 700000,
			paragraph(lines[0], hexToken(cfg.Colors.TextLight), bodyFont, 2400, false, false, false, true))
	}
	return xml
}
