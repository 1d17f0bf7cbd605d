package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/util"
)

// 草稿状态
const (
	DraftStatusDraft     = 1 // 编辑中
	DraftStatusGenerated = 2 // AI生成完成
	DraftStatusExported  = 3 // 已导出过
)

// Draft 演示文稿草稿，幻灯片序列以JSON列整体持有
type Draft struct {
	BaseModel
	UID       uint64         `json:"uid,string" gorm:"index;not null"`
	Title     string         `json:"title" gorm:"type:varchar(200);not null"`
	Topic     string         `json:"topic" gorm:"type:varchar(500)"`
	Language  string         `json:"language" gorm:"type:varchar(20);default:'zh'"`
	ThemeSlug string         `json:"themeSlug" gorm:"type:varchar(50);not null"`
	Status    int            `json:"status" gorm:"type:int;default:1"`
	Slides    datatypes.JSON `json:"slides" gorm:"type:json"`
	UpdatedAt time.Time      `json:"updatedAt,omitzero" gorm:"type:timestamp"`
}

func (d *Draft) TableComment() string {
	return "演示文稿草稿表"
}

// BeforeCreate 创建前钩子
func (d *Draft) BeforeCreate(tx *gorm.DB) error {
	if d.ID == 0 {
		d.ID = util.NewID()
	}
	return nil
}

// DecodeSlides 把JSON列解码为幻灯片序列
func (d *Draft) DecodeSlides() ([]deck.Slide, error) {
	if len(d.Slides) == 0 {
		return nil, nil
	}
	var slides []deck.Slide
	if err := json.Unmarshal(d.Slides, &slides); err != nil {
		return nil, constant.ErrDeserializeError
	}
	return slides, nil
}

// SetSlides 编码幻灯片序列写回JSON列，写回前统一重排位置编号
func (d *Draft) SetSlides(slides []deck.Slide) error {
	deck.NormalizePositions(slides)
	raw, err := json.Marshal(slides)
	if err != nil {
		return constant.ErrSerializeError
	}
	d.Slides = datatypes.JSON(raw)
	return nil
}

func init() {
	models = append(models, &Draft{})
}
