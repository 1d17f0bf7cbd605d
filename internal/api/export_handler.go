package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/middleware"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/internal/service"
	"github.com/yockii/deck_tools/pkg/logger"
)

type ExportHandler struct {
	exportService service.ExportService
	logService    service.LogService
}

func RegisterExportHandler(
	exportService service.ExportService,
	logService service.LogService,
) {
	handler := &ExportHandler{
		exportService: exportService,
		logService:    logService,
	}
	Handlers = append(Handlers, handler)
}

func (h *ExportHandler) RegisterRoutes(router fiber.Router, authMiddleware fiber.Handler) {
	r := router.Group("/export", authMiddleware)
	{
		r.Get("/pdf", h.PDF)
		r.Get("/pptx", h.PPTX)
		r.Post("/convert", h.Convert)
		r.Get("/records", h.Records)
	}
}

// PDF 导出PDF并作为附件下载
func (h *ExportHandler) PDF(c *fiber.Ctx) error {
	draftID, err := strconv.ParseUint(c.Query("draftId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	uid := middleware.UID(c)
	data, _, err := h.exportService.ExportPDF(c.Context(), uid, draftID)
	if err != nil {
		logger.Error("导出PDF失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), uid, constant.LogActionExportPDF, draftID, c.IP(), c.Get("User-Agent"))

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFileName("pdf")+`"`)
	return c.Send(data)
}

// PPTX 直接生成OOXML演示文稿并作为附件下载
func (h *ExportHandler) PPTX(c *fiber.Ctx) error {
	draftID, err := strconv.ParseUint(c.Query("draftId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	uid := middleware.UID(c)
	data, _, err := h.exportService.ExportPPTX(c.Context(), uid, draftID)
	if err != nil {
		logger.Error("导出PPTX失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), uid, constant.LogActionExportNativePPTX, draftID, c.IP(), c.Get("User-Agent"))

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.presentationml.presentation")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFileName("pptx")+`"`)
	return c.Send(data)
}

type convertRequest struct {
	DraftID uint64 `json:"draftId,string"`
}

// Convert 经外部转换服务产出演示文稿，返回下载地址
func (h *ExportHandler) Convert(c *fiber.Ctx) error {
	req := new(convertRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	uid := middleware.UID(c)
	result, record, err := h.exportService.ConvertToPresentation(c.Context(), uid, req.DraftID)
	if err != nil {
		logger.Error("转换演示文稿失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), uid, constant.LogActionExportPPTX, req.DraftID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(fiber.Map{
		"downloadUrl": result.DownloadURL,
		"recordId":    strconv.FormatUint(record.ID, 10),
	}))
}

func (h *ExportHandler) Records(c *fiber.Ctx) error {
	condition := new(model.ExportRecord)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	condition.UID = middleware.UID(c)
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.exportService.ListRecords(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取导出记录失败", logger.F("err", err))
		return c.Status(fiber.StatusInternalServerError).JSON(service.Error(constant.ErrDatabaseError))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}
