package theme

// Gradient 渐变色定义，direction 为CSS角度写法
type Gradient struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Direction string `json:"direction,omitempty"`
}

// Colors 主题配色令牌
type Colors struct {
	Primary    string    `json:"primary,omitempty"`
	Secondary  string    `json:"secondary,omitempty"`
	Accent     string    `json:"accent,omitempty"`
	Background string    `json:"background,omitempty"`
	Surface    string    `json:"surface,omitempty"`
	Text       string    `json:"text,omitempty"`
	TextLight  string    `json:"textLight,omitempty"`
	TextDark   string    `json:"textDark,omitempty"`
	Border     string    `json:"border,omitempty"`
	Success    string    `json:"success,omitempty"`
	Warning    string    `json:"warning,omitempty"`
	Error      string    `json:"error,omitempty"`
	Gradient   *Gradient `json:"gradient,omitempty"`
}

// FontWeights 字重档位
type FontWeights struct {
	Light    int `json:"light,omitempty"`
	Regular  int `json:"regular,omitempty"`
	Medium   int `json:"medium,omitempty"`
	Semibold int `json:"semibold,omitempty"`
	Bold     int `json:"bold,omitempty"`
}

// FontFace 字体族定义
type FontFace struct {
	Family string      `json:"family"`
	Weight FontWeights `json:"weight"`
}

// Fonts 标题与正文字体令牌
type Fonts struct {
	Heading FontFace  `json:"heading"`
	Body    FontFace  `json:"body"`
	Mono    *FontFace `json:"mono,omitempty"`
}

// Spacing 间距令牌，单位随渲染面解释
type Spacing struct {
	XS  string `json:"xs"`
	SM  string `json:"sm"`
	MD  string `json:"md"`
	LG  string `json:"lg"`
	XL  string `json:"xl"`
	XL2 string `json:"2xl"`
	XL3 string `json:"3xl"`
}

// Radius 圆角令牌
type Radius struct {
	None string `json:"none"`
	SM   string `json:"sm"`
	MD   string `json:"md"`
	LG   string `json:"lg"`
	XL   string `json:"xl"`
	XL2  string `json:"2xl"`
	Full string `json:"full"`
}

// Shadows 阴影令牌
type Shadows struct {
	SM    string `json:"sm"`
	MD    string `json:"md"`
	LG    string `json:"lg"`
	XL    string `json:"xl"`
	XL2   string `json:"2xl"`
	Inner string `json:"inner"`
}

// Animations 动效令牌，仅预览面使用
type Animations struct {
	Duration struct {
		Fast   string `json:"fast"`
		Normal string `json:"normal"`
		Slow   string `json:"slow"`
	} `json:"duration"`
	Easing struct {
		Linear    string `json:"linear"`
		EaseIn    string `json:"easeIn"`
		EaseOut   string `json:"easeOut"`
		EaseInOut string `json:"easeInOut"`
	} `json:"easing"`
}

// Config 一套主题的全部设计令牌。布局只读令牌，不得硬编码颜色。
type Config struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	IsPremium   bool       `json:"isPremium"`
	Thumbnail   string     `json:"thumbnail,omitempty"`
	Colors      Colors     `json:"colors"`
	Fonts       Fonts      `json:"fonts"`
	Spacing     Spacing    `json:"spacing"`
	Radius      Radius     `json:"borderRadius"`
	Shadows     Shadows    `json:"shadows"`
	Animations  Animations `json:"animations"`
}
