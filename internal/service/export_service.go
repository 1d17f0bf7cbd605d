package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/pkg/config"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/export"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/pptgen"
	"github.com/yockii/deck_tools/pkg/theme"
)

type exportService struct {
	*BaseService[*model.ExportRecord]
	drafts    DraftService
	converter *export.ConverterClient
	generator *pptgen.Generator
	fontPath  string
}

func NewExportService(drafts DraftService) *exportService {
	return &exportService{
		BaseService: NewBaseService[*model.ExportRecord](),
		drafts:      drafts,
		converter: export.NewConverterClient(
			config.GetString("export.converter_url"),
			config.GetString("export.converter_secret"),
			time.Duration(config.GetInt("export.converter_timeout"))*time.Second,
		),
		generator: pptgen.NewGenerator(),
		fontPath:  config.GetString("export.font_path"),
	}
}

func (s *exportService) NewModel() *model.ExportRecord {
	return &model.ExportRecord{}
}

func (s *exportService) BuildCondition(query *gorm.DB, condition *model.ExportRecord) *gorm.DB {
	if condition.UID != 0 {
		query = query.Where("uid = ?", condition.UID)
	}
	if condition.DraftID != 0 {
		query = query.Where("draft_id = ?", condition.DraftID)
	}
	if condition.Format != "" {
		query = query.Where("format = ?", condition.Format)
	}
	if condition.Status != 0 {
		query = query.Where("status = ?", condition.Status)
	}
	return query
}

// ExportPDF 按草稿当前主题渲染整套页面并输出PDF
func (s *exportService) ExportPDF(ctx context.Context, uid, draftID uint64) ([]byte, *model.ExportRecord, error) {
	draft, slides, record, err := s.prepare(ctx, uid, draftID, model.ExportFormatPDF)
	if err != nil {
		return nil, nil, err
	}

	data, err := export.GeneratePDF(slides, draft.ThemeSlug, s.fontPath)
	if err != nil {
		s.finish(record, "", err)
		return nil, record, constant.ErrExportFailed
	}

	s.finish(record, "", nil)
	s.notify(draft, record)
	return data, record, nil
}

// ExportPPTX 直接生成OOXML演示文稿，不经过转换服务
func (s *exportService) ExportPPTX(ctx context.Context, uid, draftID uint64) ([]byte, *model.ExportRecord, error) {
	draft, slides, record, err := s.prepare(ctx, uid, draftID, model.ExportFormatPPTX)
	if err != nil {
		return nil, nil, err
	}

	cfg, ok := theme.Get(draft.ThemeSlug)
	if !ok {
		s.finish(record, "", constant.ErrThemeNotFound)
		return nil, record, constant.ErrThemeNotFound
	}

	data, err := s.generator.Generate(slides, cfg, draft.Title)
	if err != nil {
		s.finish(record, "", err)
		return nil, record, constant.ErrExportFailed
	}

	s.finish(record, "", nil)
	s.notify(draft, record)
	return data, record, nil
}

// ConvertToPresentation 先渲染PDF，再交给外部转换服务产出可下载的演示文稿
func (s *exportService) ConvertToPresentation(ctx context.Context, uid, draftID uint64) (*export.ConvertResult, *model.ExportRecord, error) {
	draft, slides, record, err := s.prepare(ctx, uid, draftID, model.ExportFormatPPTX)
	if err != nil {
		return nil, nil, err
	}

	pdf, err := export.GeneratePDF(slides, draft.ThemeSlug, s.fontPath)
	if err != nil {
		s.finish(record, "", err)
		return nil, record, constant.ErrExportFailed
	}

	result, err := s.converter.ConvertPDF(ctx, pdf, fmt.Sprintf("%d", draftID), draft.Title)
	if err != nil {
		s.finish(record, "", err)
		return nil, record, constant.ErrConversionFailed
	}

	s.finish(record, result.DownloadURL, nil)
	s.notify(draft, record)
	return result, record, nil
}

func (s *exportService) ListRecords(ctx context.Context, condition *model.ExportRecord, offset, limit int) ([]*model.ExportRecord, int64, error) {
	return s.List(ctx, condition, offset, limit)
}

// ExportFileName 下载文件名，避免同名覆盖
func ExportFileName(format string) string {
	return uuid.New().String() + "." + format
}

func (s *exportService) prepare(ctx context.Context, uid, draftID uint64, format string) (*model.Draft, []deck.Slide, *model.ExportRecord, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, nil, nil, constant.ErrDraftNotFound
	}
	slides, err := draft.DecodeSlides()
	if err != nil {
		return nil, nil, nil, err
	}

	record := &model.ExportRecord{
		DraftID: draftID,
		UID:     uid,
		Format:  format,
		Status:  model.ExportStatusPending,
	}
	if err := s.Create(ctx, record); err != nil {
		logger.Error("创建导出记录失败",
			logger.F("draftID", draftID),
			logger.F("error", err),
		)
		return nil, nil, nil, constant.ErrDatabaseError
	}
	return draft, slides, record, nil
}

// finish 更新导出记录的终态
func (s *exportService) finish(record *model.ExportRecord, downloadURL string, cause error) {
	record.DownloadURL = downloadURL
	if cause != nil {
		record.Status = model.ExportStatusFailed
		record.ErrorMsg = cause.Error()
	} else {
		record.Status = model.ExportStatusSuccess
	}
	if err := s.db.Model(record).Select("status", "download_url", "error_msg").Updates(record).Error; err != nil {
		logger.Error("更新导出记录失败",
			logger.F("recordID", record.ID),
			logger.F("error", err),
		)
	}
}

// notify 导出成功后发邮件通知，未配置SMTP时跳过
func (s *exportService) notify(draft *model.Draft, record *model.ExportRecord) {
	host := config.GetString("export.notify_smtp_host")
	to := config.GetString("export.notify_to")
	if host == "" || to == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.GetString("export.notify_from"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("演示文稿导出完成: %s", draft.Title))
	body := fmt.Sprintf("草稿 %s 已导出为 %s 格式。", draft.Title, record.Format)
	if record.DownloadURL != "" {
		body += "\n下载地址: " + record.DownloadURL
	}
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		host,
		config.GetInt("export.notify_smtp_port"),
		config.GetString("export.notify_smtp_user"),
		config.GetString("export.notify_smtp_password"),
	)
	go func() {
		if err := d.DialAndSend(m); err != nil {
			logger.Error("发送导出通知失败", logger.F("error", err))
		}
	}()
}
