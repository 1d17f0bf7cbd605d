package layout

// 所有布局都基于固定的 1920x1080 逻辑画布排版，
// 各渲染面自行缩放，布局本身不感知真实视口。
const (
	CanvasWidth  = 1920.0
	CanvasHeight = 1080.0
)

// NodeKind 可视树节点类型
type NodeKind string

const (
	KindFrame NodeKind = "frame"
	KindText  NodeKind = "text"
	KindShape NodeKind = "shape"
)

// ShapeKind 形状节点的几何类型
type ShapeKind string

const (
	ShapeRect     ShapeKind = "rect"
	ShapeCircle   ShapeKind = "circle"
	ShapeTriangle ShapeKind = "triangle"
)

// Align 文本对齐
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Style 节点样式，颜色值为 #RRGGBB 或 rgba() 写法。
// GradientEnd 非空时 Fill 到 GradientEnd 做对角渐变。
type Style struct {
	Fill        string
	GradientEnd string
	Color       string
	FontFamily  string
	FontSize    float64
	Bold        bool
	Italic      bool
	Align       Align
	Radius      float64
	BorderColor string
	BorderWidth float64
	Dashed      bool
	Opacity     float64
	Shadow      string
}

// Node 一个可视树节点，坐标为画布绝对坐标，单位点
type Node struct {
	Kind     NodeKind
	Shape    ShapeKind
	X, Y     float64
	W, H     float64
	Style    Style
	Text     string
	Children []*Node
}

// Frame 构造容器节点
func Frame(x, y, w, h float64, style Style, children ...*Node) *Node {
	return &Node{Kind: KindFrame, X: x, Y: y, W: w, H: h, Style: style, Children: children}
}

// Text 构造文本节点
func Text(x, y, w, h float64, text string, style Style) *Node {
	return &Node{Kind: KindText, X: x, Y: y, W: w, H: h, Text: text, Style: style}
}

// Shape 构造形状节点
func Shape(shape ShapeKind, x, y, w, h float64, style Style) *Node {
	return &Node{Kind: KindShape, Shape: shape, X: x, Y: y, W: w, H: h, Style: style}
}

// Canvas 整画布容器
func Canvas(fill string, children ...*Node) *Node {
	return Frame(0, 0, CanvasWidth, CanvasHeight, Style{Fill: fill}, children...)
}

// Add 追加子节点
func (n *Node) Add(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Walk 深度优先遍历整棵树
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// CollectText 收集树中全部文本，测试与占位判定用
func (n *Node) CollectText() []string {
	var texts []string
	n.Walk(func(node *Node) {
		if node.Kind == KindText && node.Text != "" {
			texts = append(texts, node.Text)
		}
	})
	return texts
}
