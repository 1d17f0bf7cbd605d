package model

import (
	"gorm.io/gorm"

	"github.com/yockii/deck_tools/pkg/util"
)

// Log 操作日志
type Log struct {
	BaseModel
	UID       uint64 `json:"uid,string" gorm:"index;not null"`
	Action    int    `json:"action" gorm:"not null"`
	DraftID   uint64 `json:"draftId,string" gorm:"index"`
	IP        string `json:"ip" gorm:"type:varchar(50)"`
	UserAgent string `json:"userAgent" gorm:"type:varchar(255)"`
}

func (l *Log) TableComment() string {
	return "操作日志表"
}

// BeforeCreate 创建前钩子
func (l *Log) BeforeCreate(tx *gorm.DB) error {
	if l.ID == 0 {
		l.ID = util.NewID()
	}
	return nil
}

func init() {
	models = append(models, &Log{})
}
