package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/jung-kurt/gofpdf"

	"github.com/yockii/deck_tools/pkg/layout"
)

// DocumentRenderer 把可视树序列写成多页PDF。页面尺寸即画布尺寸，
// 绝对定位逐节点摆放，不做任何缩放。
type DocumentRenderer struct {
	fontPath string
}

func NewDocumentRenderer(fontPath string) *DocumentRenderer {
	return &DocumentRenderer{fontPath: fontPath}
}

const documentFont = "deck"

// WritePDF 每棵树一页，页序即切片顺序
func (d *DocumentRenderer) WritePDF(trees []*layout.Node) ([]byte, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: layout.CanvasWidth, Ht: layout.CanvasHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	family := "Helvetica"
	if d.fontPath != "" {
		pdf.AddUTF8Font(documentFont, "", d.fontPath)
		pdf.AddUTF8Font(documentFont, "B", d.fontPath)
		pdf.AddUTF8Font(documentFont, "I", d.fontPath)
		family = documentFont
	}

	for _, tree := range trees {
		pdf.AddPage()
		d.drawNode(pdf, family, tree)
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("PDF生成失败: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF输出失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (d *DocumentRenderer) drawNode(pdf *gofpdf.Fpdf, family string, n *layout.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case layout.KindFrame:
		d.drawFrame(pdf, n)
	case layout.KindShape:
		d.drawShape(pdf, n)
	case layout.KindText:
		d.drawText(pdf, family, n)
	}
	for _, child := range n.Children {
		d.drawNode(pdf, family, child)
	}
}

func (d *DocumentRenderer) drawFrame(pdf *gofpdf.Fpdf, n *layout.Node) {
	s := n.Style
	if s.Fill != "" {
		// PDF面不画渐变，取起始色填充
		c := parseColor(s.Fill)
		pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
		pdf.SetAlpha(alphaOf(c, s.Opacity), "Normal")
		if s.Radius > 0 {
			pdf.RoundedRect(n.X, n.Y, n.W, n.H, s.Radius, "1234", "F")
		} else {
			pdf.Rect(n.X, n.Y, n.W, n.H, "F")
		}
		pdf.SetAlpha(1, "Normal")
	}
	if s.BorderColor != "" && s.BorderWidth > 0 {
		c := parseColor(s.BorderColor)
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetLineWidth(s.BorderWidth)
		if s.Dashed {
			pdf.SetDashPattern([]float64{16, 12}, 0)
		}
		if s.Radius > 0 {
			pdf.RoundedRect(n.X, n.Y, n.W, n.H, s.Radius, "1234", "D")
		} else {
			pdf.Rect(n.X, n.Y, n.W, n.H, "D")
		}
		pdf.SetDashPattern([]float64{}, 0)
	}
}

func (d *DocumentRenderer) drawShape(pdf *gofpdf.Fpdf, n *layout.Node) {
	s := n.Style
	if s.Fill == "" {
		return
	}
	c := parseColor(s.Fill)
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(alphaOf(c, s.Opacity), "Normal")
	switch n.Shape {
	case layout.ShapeCircle:
		pdf.Ellipse(n.X+n.W/2, n.Y+n.H/2, n.W/2, n.H/2, 0, "F")
	case layout.ShapeTriangle:
		pdf.Polygon([]gofpdf.PointType{
			{X: n.X, Y: n.Y},
			{X: n.X + n.W, Y: n.Y},
			{X: n.X + n.W, Y: n.Y + n.H},
		}, "F")
	default:
		pdf.Rect(n.X, n.Y, n.W, n.H, "F")
	}
	pdf.SetAlpha(1, "Normal")
}

func (d *DocumentRenderer) drawText(pdf *gofpdf.Fpdf, family string, n *layout.Node) {
	if n.Text == "" {
		return
	}
	s := n.Style
	style := ""
	if s.Bold {
		style += "B"
	}
	if s.Italic {
		style += "I"
	}
	// UTF8字体只注册了单一样式位，斜体加粗并存时取粗体
	if len(style) > 1 && family == documentFont {
		style = "B"
	}
	pdf.SetFont(family, style, s.FontSize)

	token := s.Color
	if token == "" {
		token = "#000000"
	}
	c := parseColor(token)
	pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(alphaOf(c, s.Opacity), "Normal")

	align := "L"
	switch s.Align {
	case layout.AlignCenter:
		align = "C"
	case layout.AlignRight:
		align = "R"
	}
	pdf.SetXY(n.X, n.Y)
	pdf.MultiCell(n.W, s.FontSize*1.4, n.Text, "", align, false)
	pdf.SetAlpha(1, "Normal")
}

func alphaOf(c color.NRGBA, opacity float64) float64 {
	alpha := float64(c.A) / 255
	if opacity > 0 && opacity < 1 {
		alpha *= opacity
	}
	return alpha
}
