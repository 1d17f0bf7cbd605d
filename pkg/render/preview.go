package render

import (
	"sync"

	"github.com/yockii/deck_tools/pkg/layout"
)

// FitScale 把固定画布等比缩放进容器的比例，
// 取宽高两个方向的较小值保证不变形。容器尺寸非法时返回0。
func FitScale(containerWidth, containerHeight float64) float64 {
	if containerWidth <= 0 || containerHeight <= 0 {
		return 0
	}
	sx := containerWidth / layout.CanvasWidth
	sy := containerHeight / layout.CanvasHeight
	if sx < sy {
		return sx
	}
	return sy
}

// Viewport 预览视口，跟踪容器尺寸并在每次变化时重算缩放比例
type Viewport struct {
	mu     sync.Mutex
	width  float64
	height float64
	scale  float64
}

func NewViewport(width, height float64) *Viewport {
	v := &Viewport{}
	v.Resize(width, height)
	return v
}

// Resize 容器尺寸变化时调用，返回新的缩放比例
func (v *Viewport) Resize(width, height float64) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.width = width
	v.height = height
	v.scale = FitScale(width, height)
	return v.scale
}

// Scale 当前缩放比例
func (v *Viewport) Scale() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scale
}

// WrapEditing 编辑态在树外包一层虚线框提示，不改动内容本身
func WrapEditing(tree *layout.Node, editing bool) *layout.Node {
	if !editing || tree == nil {
		return tree
	}
	overlay := layout.Frame(0, 0, layout.CanvasWidth, layout.CanvasHeight, layout.Style{
		BorderColor: "#3B82F6",
		BorderWidth: 4,
		Dashed:      true,
	})
	return layout.Frame(0, 0, layout.CanvasWidth, layout.CanvasHeight, layout.Style{}, tree, overlay)
}
