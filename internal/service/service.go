package service

import (
	"context"
	"net/http"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/export"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type DraftService interface {
	Create(ctx context.Context, record *model.Draft) error
	Update(ctx context.Context, record *model.Draft) error
	Delete(ctx context.Context, id uint64) error
	Get(ctx context.Context, id uint64) (*model.Draft, error)
	List(ctx context.Context, condition *model.Draft, offset, limit int) ([]*model.Draft, int64, error)

	GetSlides(ctx context.Context, draftID uint64) ([]deck.Slide, error)
	AddSlide(ctx context.Context, draftID uint64, slideType deck.SlideType, position int) (*deck.Slide, error)
	UpdateSlide(ctx context.Context, draftID uint64, slide deck.Slide) error
	RemoveSlide(ctx context.Context, draftID uint64, slideID string) error
	ReorderSlides(ctx context.Context, draftID uint64, order []string) error
}

type ExportService interface {
	ExportPDF(ctx context.Context, uid, draftID uint64) ([]byte, *model.ExportRecord, error)
	ExportPPTX(ctx context.Context, uid, draftID uint64) ([]byte, *model.ExportRecord, error)
	ConvertToPresentation(ctx context.Context, uid, draftID uint64) (*export.ConvertResult, *model.ExportRecord, error)
	ListRecords(ctx context.Context, condition *model.ExportRecord, offset, limit int) ([]*model.ExportRecord, int64, error)
}

type ThumbnailService interface {
	// Thumbnail 获取单页缩略图，命中缓存时直接返回
	Thumbnail(ctx context.Context, draftID uint64, slideID string) (string, error)
	// ScheduleRefresh 编辑后延迟刷新缓存，连续编辑只触发最后一次
	ScheduleRefresh(draftID uint64, slideID string)
}

type GenerationService interface {
	GenerateDraft(ctx context.Context, uid uint64, topic, language, themeSlug string) (*model.Draft, error)
}

type LogService interface {
	CreateOperationLog(ctx context.Context, uid uint64, action int, draftID uint64, ip, userAgent string) error
	ListLogs(ctx context.Context, uid uint64, actions []int, offset, limit int) ([]*model.Log, int64, error)
}

// /////////////////////////////
// Response 通用响应结构
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func OK(data interface{}) *Response {
	return NewResponse(data, nil)
}

func Error(err error) *Response {
	return NewResponse(nil, err)
}

// NewResponse 创建响应
func NewResponse(data interface{}, err error) *Response {
	if err == nil {
		return &Response{
			Code:    http.StatusOK,
			Message: "success",
			Data:    data,
		}
	}

	code := constant.GetErrorCode(err)
	return &Response{
		Code:    code,
		Message: err.Error(),
		Data:    data,
	}
}

// ListResponse 列表响应结构
type ListResponse struct {
	Total  int64       `json:"total"`
	Items  interface{} `json:"items"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

// NewListResponse 创建列表响应
func NewListResponse(items interface{}, total int64, offset, limit int) *ListResponse {
	return &ListResponse{
		Total:  total,
		Items:  items,
		Offset: offset,
		Limit:  limit,
	}
}
