package render

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/layout"
)

func TestFitScale(t *testing.T) {
	assert.Equal(t, 0.5, FitScale(960, 540))
	// 宽受限
	assert.Equal(t, 0.25, FitScale(480, 540))
	// 高受限
	assert.Equal(t, 0.25, FitScale(960, 270))
	assert.Equal(t, 0.0, FitScale(0, 540))
	assert.Equal(t, 0.0, FitScale(960, -1))
}

func TestViewportResize(t *testing.T) {
	v := NewViewport(960, 540)
	assert.Equal(t, 0.5, v.Scale())
	assert.Equal(t, 0.25, v.Resize(480, 1080))
	assert.Equal(t, 0.25, v.Scale())
}

func TestWrapEditing(t *testing.T) {
	tree := layout.Render(deck.Slide{Type: deck.TypeClosing, Title: "谢谢"}, "executive", false)

	// 非编辑态原样返回
	assert.Same(t, tree, WrapEditing(tree, false))

	wrapped := WrapEditing(tree, true)
	require.NotSame(t, tree, wrapped)
	// 内容树保持不变，只是外面包了一层
	assert.Same(t, tree, wrapped.Children[0])
	overlay := wrapped.Children[1]
	assert.True(t, overlay.Style.Dashed)
}

func TestDebouncerOnlyLastFires(t *testing.T) {
	var fired int32
	d := NewDebouncer(50 * time.Millisecond)
	for i := 0; i < 5; i++ {
		d.Trigger(func() { atomic.AddInt32(&fired, 1) })
		time.Sleep(10 * time.Millisecond)
	}
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&fired))
}

func TestDebouncerStop(t *testing.T) {
	var fired int32
	d := NewDebouncer(30 * time.Millisecond)
	d.Trigger(func() { atomic.AddInt32(&fired, 1) })
	d.Stop()
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&fired))
}

func TestParseColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x3D, G: 0x2E, B: 0x5C, A: 255}, parseColor("#3D2E5C"))
	assert.Equal(t, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 255}, parseColor("#FFF"))
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 229}, parseColor("rgba(255,255,255,0.9)"))
	// 坏令牌兜底为黑色而非报错
	assert.Equal(t, color.NRGBA{A: 255}, parseColor("not-a-color"))
}

func TestRasterizerCapture(t *testing.T) {
	r, err := NewRasterizer("", 480, 80, 0)
	require.NoError(t, err)

	tree := layout.Render(deck.Slide{
		Type:    deck.TypeContent,
		Title:   "标题",
		Content: deck.TextItems("a", "b"),
	}, "executive", false)

	dataURL, err := r.Capture(context.Background(), tree)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(dataURL, "data:image/jpeg;base64,"))
}

func TestRasterizerCanceledContext(t *testing.T) {
	r, err := NewRasterizer("", 480, 80, 100*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Capture(ctx, layout.MissingTheme("x"))
	assert.Error(t, err)
}

func TestWritePDFPagePerTree(t *testing.T) {
	d := NewDocumentRenderer("")
	trees := []*layout.Node{
		layout.MissingTheme("a"),
		layout.MissingTheme("b"),
		layout.MissingTheme("c"),
	}
	// 占位文本为中文，核心字体渲染不了字形但页面结构仍然完整
	data, err := d.WritePDF(trees)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	// 页树节点加每页各占一个 /Type /Page
	assert.Equal(t, 4, bytes.Count(data, []byte("/Type /Page")))
}
