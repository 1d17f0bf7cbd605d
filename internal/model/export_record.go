package model

import (
	"gorm.io/gorm"

	"github.com/yockii/deck_tools/pkg/util"
)

// 导出状态
const (
	ExportStatusPending = 1 // 处理中
	ExportStatusSuccess = 2 // 成功
	ExportStatusFailed  = 3 // 失败
)

// 导出格式
const (
	ExportFormatPDF  = "pdf"
	ExportFormatPPTX = "pptx"
)

// ExportRecord 导出记录
type ExportRecord struct {
	BaseModel
	DraftID     uint64 `json:"draftId,string" gorm:"index;not null"`
	UID         uint64 `json:"uid,string" gorm:"index;not null"`
	Format      string `json:"format" gorm:"type:varchar(10);not null"`
	Status      int    `json:"status" gorm:"type:int;default:1"`
	DownloadURL string `json:"downloadUrl" gorm:"type:varchar(500)"`
	ErrorMsg    string `json:"errorMsg" gorm:"type:varchar(500)"`
}

func (r *ExportRecord) TableComment() string {
	return "导出记录表"
}

func (r *ExportRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == 0 {
		r.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &ExportRecord{})
}
