package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/yockii/deck_tools/pkg/layout"
)

// Rasterizer 把可视树离屏光栅化为缩略图。画布按全尺寸1920x1080
// 绘制后缩放到目标宽度，JPEG压缩后输出 data URL。
type Rasterizer struct {
	thumbWidth  int
	quality     int
	settleDelay time.Duration

	ttf *truetype.Font

	mu    sync.Mutex
	faces map[float64]font.Face
}

// NewRasterizer 创建光栅器。fontPath 为空时使用gg内置点阵字体，
// 只影响文字观感不影响布局。
func NewRasterizer(fontPath string, thumbWidth, quality int, settleDelay time.Duration) (*Rasterizer, error) {
	r := &Rasterizer{
		thumbWidth:  thumbWidth,
		quality:     quality,
		settleDelay: settleDelay,
		faces:       map[float64]font.Face{},
	}
	if fontPath != "" {
		raw, err := os.ReadFile(fontPath)
		if err != nil {
			return nil, err
		}
		ttf, err := truetype.Parse(raw)
		if err != nil {
			return nil, err
		}
		r.ttf = ttf
	}
	return r, nil
}

// scratch 一次抓取专用的离屏绘图目标，用完必须释放
type scratch struct {
	dc *gg.Context
}

func (s *scratch) Close() {
	s.dc = nil
}

func (r *Rasterizer) acquireScratch() *scratch {
	return &scratch{dc: gg.NewContext(int(layout.CanvasWidth), int(layout.CanvasHeight))}
}

// Capture 抓取一棵树的缩略图。先等待一个稳定窗口再绘制，
// 离屏目标在所有退出路径上都会释放。
func (r *Rasterizer) Capture(ctx context.Context, tree *layout.Node) (string, error) {
	sc := r.acquireScratch()
	defer sc.Close()

	if r.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.settleDelay):
		}
	}

	r.drawNode(sc.dc, tree)

	img := sc.dc.Image()
	thumb := r.downscale(img)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumb, &jpeg.Options{Quality: r.quality}); err != nil {
		return "", err
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (r *Rasterizer) downscale(img image.Image) image.Image {
	if r.thumbWidth <= 0 || r.thumbWidth >= img.Bounds().Dx() {
		return img
	}
	height := r.thumbWidth * img.Bounds().Dy() / img.Bounds().Dx()
	dst := image.NewRGBA(image.Rect(0, 0, r.thumbWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func (r *Rasterizer) faceFor(size float64) font.Face {
	if r.ttf == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if face, ok := r.faces[size]; ok {
		return face
	}
	face := truetype.NewFace(r.ttf, &truetype.Options{Size: size})
	r.faces[size] = face
	return face
}

func (r *Rasterizer) drawNode(dc *gg.Context, n *layout.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case layout.KindFrame:
		r.drawFrame(dc, n)
	case layout.KindShape:
		r.drawShape(dc, n)
	case layout.KindText:
		r.drawText(dc, n)
	}
	for _, child := range n.Children {
		r.drawNode(dc, child)
	}
}

func (r *Rasterizer) drawFrame(dc *gg.Context, n *layout.Node) {
	s := n.Style
	if s.Fill != "" {
		if s.GradientEnd != "" {
			grad := gg.NewLinearGradient(n.X, n.Y, n.X+n.W, n.Y+n.H)
			grad.AddColorStop(0, withOpacity(parseColor(s.Fill), s.Opacity))
			grad.AddColorStop(1, withOpacity(parseColor(s.GradientEnd), s.Opacity))
			dc.SetFillStyle(grad)
		} else {
			dc.SetColor(withOpacity(parseColor(s.Fill), s.Opacity))
		}
		roundedRectPath(dc, n)
		dc.Fill()
	}
	if s.BorderColor != "" && s.BorderWidth > 0 {
		dc.SetColor(withOpacity(parseColor(s.BorderColor), s.Opacity))
		dc.SetLineWidth(s.BorderWidth)
		if s.Dashed {
			dc.SetDash(16, 12)
		}
		roundedRectPath(dc, n)
		dc.Stroke()
		dc.SetDash()
	}
}

func roundedRectPath(dc *gg.Context, n *layout.Node) {
	if n.Style.Radius > 0 {
		dc.DrawRoundedRectangle(n.X, n.Y, n.W, n.H, n.Style.Radius)
	} else {
		dc.DrawRectangle(n.X, n.Y, n.W, n.H)
	}
}

func (r *Rasterizer) drawShape(dc *gg.Context, n *layout.Node) {
	s := n.Style
	if s.Fill == "" {
		return
	}
	dc.SetColor(withOpacity(parseColor(s.Fill), s.Opacity))
	switch n.Shape {
	case layout.ShapeCircle:
		dc.DrawEllipse(n.X+n.W/2, n.Y+n.H/2, n.W/2, n.H/2)
	case layout.ShapeTriangle:
		dc.MoveTo(n.X, n.Y)
		dc.LineTo(n.X+n.W, n.Y)
		dc.LineTo(n.X+n.W, n.Y+n.H)
		dc.ClosePath()
	default:
		roundedRectPath(dc, n)
	}
	dc.Fill()
}

func (r *Rasterizer) drawText(dc *gg.Context, n *layout.Node) {
	if n.Text == "" {
		return
	}
	s := n.Style
	if face := r.faceFor(s.FontSize); face != nil {
		dc.SetFontFace(face)
	}
	token := s.Color
	if token == "" {
		token = "#000000"
	}
	dc.SetColor(withOpacity(parseColor(token), s.Opacity))

	align := gg.AlignLeft
	anchorX := n.X
	ax := 0.0
	switch s.Align {
	case layout.AlignCenter:
		align = gg.AlignCenter
		anchorX = n.X + n.W/2
		ax = 0.5
	case layout.AlignRight:
		align = gg.AlignRight
		anchorX = n.X + n.W
		ax = 1.0
	}
	dc.DrawStringWrapped(n.Text, anchorX, n.Y, ax, 0, n.W, 1.4, align)
}

// withOpacity 不透明度折算进alpha通道
func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity > 0 && opacity < 1 {
		c.A = uint8(float64(c.A) * opacity)
	}
	return c
}
