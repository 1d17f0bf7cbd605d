package render

import (
	"image/color"
	"strconv"
	"strings"
)

// parseColor 解析主题令牌里的颜色写法，支持 #RGB、#RRGGBB 和
// rgba(r,g,b,a)。无法解析时返回黑色，渲染不因坏令牌中断。
func parseColor(s string) color.NRGBA {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")") {
		return parseRGBA(s[len("rgba(") : len(s)-1])
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBA(s[len("rgb(") : len(s)-1])
	}
	return color.NRGBA{A: 255}
}

func parseHex(hex string) color.NRGBA {
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{A: 255}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 255,
	}
}

func parseRGBA(body string) color.NRGBA {
	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return color.NRGBA{A: 255}
	}
	channel := func(s string) uint8 {
		v, _ := strconv.Atoi(strings.TrimSpace(s))
		if v < 0 {
			v = 0
		}
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	c := color.NRGBA{R: channel(parts[0]), G: channel(parts[1]), B: channel(parts[2]), A: 255}
	if len(parts) >= 4 {
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err == nil {
			if alpha < 0 {
				alpha = 0
			}
			if alpha > 1 {
				alpha = 1
			}
			c.A = uint8(alpha * 255)
		}
	}
	return c
}
