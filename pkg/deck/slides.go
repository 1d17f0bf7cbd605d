package deck

import (
	"fmt"
)

// NormalizePositions 重排位置编号为连续的 0..n-1，任何增删改后都必须调用
func NormalizePositions(slides []Slide) {
	for i := range slides {
		slides[i].Position = i
	}
}

// InsertAt 在指定位置插入幻灯片，越界位置收敛到两端
func InsertAt(slides []Slide, s Slide, position int) []Slide {
	if position < 0 {
		position = 0
	}
	if position > len(slides) {
		position = len(slides)
	}
	result := make([]Slide, 0, len(slides)+1)
	result = append(result, slides[:position]...)
	result = append(result, s)
	result = append(result, slides[position:]...)
	NormalizePositions(result)
	return result
}

// RemoveByID 按ID删除幻灯片，返回是否找到
func RemoveByID(slides []Slide, id string) ([]Slide, bool) {
	for i := range slides {
		if slides[i].ID == id {
			result := make([]Slide, 0, len(slides)-1)
			result = append(result, slides[:i]...)
			result = append(result, slides[i+1:]...)
			NormalizePositions(result)
			return result, true
		}
	}
	return slides, false
}

// Reorder 按ID顺序重排。order 必须恰好覆盖全部幻灯片，否则报错。
func Reorder(slides []Slide, order []string) ([]Slide, error) {
	if len(order) != len(slides) {
		return nil, fmt.Errorf("幻灯片顺序不完整: 期望 %d 个, 实际 %d 个", len(slides), len(order))
	}
	byID := make(map[string]Slide, len(slides))
	for _, s := range slides {
		byID[s.ID] = s
	}
	result := make([]Slide, 0, len(slides))
	for _, id := range order {
		s, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("幻灯片不存在: %s", id)
		}
		delete(byID, id)
		result = append(result, s)
	}
	NormalizePositions(result)
	return result, nil
}

// FindByID 按ID查找幻灯片
func FindByID(slides []Slide, id string) (*Slide, bool) {
	for i := range slides {
		if slides[i].ID == id {
			return &slides[i], true
		}
	}
	return nil, false
}
