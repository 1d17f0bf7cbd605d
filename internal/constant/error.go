package constant

import (
	"errors"
	"net/http"
)

// 自定义错误
var (
	// 通用错误
	ErrInternalError    = errors.New("内部错误")
	ErrInvalidParams    = errors.New("参数错误")
	ErrUnauthorized     = errors.New("未授权")
	ErrForbidden        = errors.New("禁止访问")
	ErrDatabaseError    = errors.New("数据库错误")
	ErrInvalidToken     = errors.New("无效的token")
	ErrInvalidOperation = errors.New("无效的操作")
	ErrRecordNotFound   = errors.New("记录不存在")
	ErrRecordIDEmpty    = errors.New("ID不能为空")
	ErrSerializeError   = errors.New("序列化错误")
	ErrDeserializeError = errors.New("反序列化错误")
	ErrCacheError       = errors.New("缓存错误")

	// 草稿相关错误
	ErrDraftNotFound    = errors.New("草稿不存在")
	ErrSlideNotFound    = errors.New("幻灯片不存在")
	ErrInvalidSlideType = errors.New("无效的幻灯片类型")
	ErrInvalidOrder     = errors.New("幻灯片顺序不完整")

	// 主题相关错误
	ErrThemeNotFound  = errors.New("主题不存在")
	ErrLayoutNotFound = errors.New("布局不存在")

	// 导出相关错误
	ErrExportFailed     = errors.New("导出失败")
	ErrConversionFailed = errors.New("PPTX转换失败")
	ErrThumbnailFailed  = errors.New("缩略图生成失败")
	ErrGenerationFailed = errors.New("AI生成失败")
)

// 获取错误对应的HTTP状态码
func GetErrorCode(err error) int {
	switch err {
	// 通用错误
	case ErrInternalError:
		return http.StatusInternalServerError
	case ErrInvalidParams:
		return http.StatusBadRequest
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrDatabaseError:
		return http.StatusInternalServerError
	case ErrInvalidToken:
		return http.StatusUnauthorized
	case ErrInvalidOperation:
		return http.StatusBadRequest
	case ErrRecordNotFound:
		return http.StatusNotFound
	case ErrRecordIDEmpty:
		return http.StatusBadRequest
	case ErrSerializeError:
		return http.StatusInternalServerError
	case ErrDeserializeError:
		return http.StatusInternalServerError
	case ErrCacheError:
		return http.StatusInternalServerError

	// 草稿相关错误
	case ErrDraftNotFound:
		return http.StatusNotFound
	case ErrSlideNotFound:
		return http.StatusNotFound
	case ErrInvalidSlideType:
		return http.StatusBadRequest
	case ErrInvalidOrder:
		return http.StatusBadRequest

	// 主题相关错误
	case ErrThemeNotFound:
		return http.StatusNotFound
	case ErrLayoutNotFound:
		return http.StatusNotFound

	// 导出相关错误
	case ErrExportFailed:
		return http.StatusInternalServerError
	case ErrConversionFailed:
		return http.StatusBadGateway
	case ErrThumbnailFailed:
		return http.StatusInternalServerError
	case ErrGenerationFailed:
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}
