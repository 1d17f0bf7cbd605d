package service

import (
	"context"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/pkg/database"
	"github.com/yockii/deck_tools/pkg/logger"
)

type logService struct{}

func NewLogService() LogService {
	return &logService{}
}

func (s *logService) CreateOperationLog(ctx context.Context, uid uint64, action int, draftID uint64, ip, userAgent string) error {
	log := &model.Log{
		UID:       uid,
		Action:    action,
		DraftID:   draftID,
		IP:        ip,
		UserAgent: userAgent,
	}
	if err := database.GetDB().Create(log).Error; err != nil {
		logger.Error("创建日志失败", logger.F("error", err))
		return constant.ErrDatabaseError
	}
	return nil
}

func (s *logService) ListLogs(ctx context.Context, uid uint64, actions []int, offset, limit int) ([]*model.Log, int64, error) {
	var logs []*model.Log
	var total int64

	query := database.GetDB().Model(&model.Log{})
	if uid != 0 {
		query = query.Where("uid = ?", uid)
	}
	if len(actions) > 0 {
		query = query.Where("action IN ?", actions)
	}

	// 获取总数
	if err := query.Count(&total).Error; err != nil {
		logger.Error("获取日志总数失败", logger.F("error", err))
		return nil, 0, constant.ErrDatabaseError
	}

	if total > 0 && limit > 0 {
		if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&logs).Error; err != nil {
			logger.Error("查询日志失败", logger.F("error", err))
			return nil, 0, constant.ErrDatabaseError
		}
	}

	return logs, total, nil
}
