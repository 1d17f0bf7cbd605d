package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/middleware"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/internal/service"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/logger"
)

type DraftHandler struct {
	draftService      service.DraftService
	generationService service.GenerationService
	thumbnailService  service.ThumbnailService
	logService        service.LogService
}

func RegisterDraftHandler(
	draftService service.DraftService,
	generationService service.GenerationService,
	thumbnailService service.ThumbnailService,
	logService service.LogService,
) {
	handler := &DraftHandler{
		draftService:      draftService,
		generationService: generationService,
		thumbnailService:  thumbnailService,
		logService:        logService,
	}
	Handlers = append(Handlers, handler)
}

func (h *DraftHandler) RegisterRoutes(router fiber.Router, authMiddleware fiber.Handler) {
	r := router.Group("/draft", authMiddleware)
	{
		r.Post("/new", h.Create)
		r.Post("/update", h.Update)
		r.Post("/delete", h.Delete)
		r.Get("/get", h.Get)
		r.Get("/list", h.List)
		r.Post("/generate", h.Generate)

		r.Get("/slides", h.Slides)
		r.Post("/slide/add", h.AddSlide)
		r.Post("/slide/update", h.UpdateSlide)
		r.Post("/slide/delete", h.RemoveSlide)
		r.Post("/slide/reorder", h.ReorderSlides)
		r.Get("/slide/thumbnail", h.Thumbnail)
	}
}

func (h *DraftHandler) Create(c *fiber.Ctx) error {
	record := new(model.Draft)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record.UID = middleware.UID(c)
	if err := h.draftService.Create(c.Context(), record); err != nil {
		logger.Error("创建草稿失败", logger.F("err", err))
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), record.UID, constant.LogActionCreateDraft, record.ID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *DraftHandler) Update(c *fiber.Ctx) error {
	record := new(model.Draft)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.draftService.Update(c.Context(), record); err != nil {
		logger.Error("更新草稿失败", logger.F("err", err))
		return c.Status(fiber.StatusInternalServerError).JSON(service.Error(constant.ErrDatabaseError))
	}
	go h.logService.CreateOperationLog(c.Context(), middleware.UID(c), constant.LogActionUpdateDraft, record.ID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(record))
}

func (h *DraftHandler) Delete(c *fiber.Ctx) error {
	record := new(model.Draft)
	if err := c.BodyParser(record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.draftService.Delete(c.Context(), record.ID); err != nil {
		logger.Error("删除草稿失败", logger.F("err", err))
		return c.Status(fiber.StatusInternalServerError).JSON(service.Error(constant.ErrDatabaseError))
	}
	go h.logService.CreateOperationLog(c.Context(), middleware.UID(c), constant.LogActionDeleteDraft, record.ID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

func (h *DraftHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	record, err := h.draftService.Get(c.Context(), id)
	if err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(record))
}

func (h *DraftHandler) List(c *fiber.Ctx) error {
	condition := new(model.Draft)
	if err := c.QueryParser(condition); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	condition.UID = middleware.UID(c)
	offset := c.QueryInt("offset", 0)
	limit := c.QueryInt("limit", service.DefaultPageSize)
	if limit > service.MaxPageSize {
		limit = service.MaxPageSize
	}

	list, total, err := h.draftService.List(c.Context(), condition, offset, limit)
	if err != nil {
		logger.Error("获取草稿列表失败", logger.F("err", err))
		return c.Status(fiber.StatusInternalServerError).JSON(service.Error(constant.ErrDatabaseError))
	}
	return c.JSON(service.OK(service.NewListResponse(list, total, offset, limit)))
}

type generateRequest struct {
	Topic     string `json:"topic"`
	Language  string `json:"language"`
	ThemeSlug string `json:"themeSlug"`
}

func (h *DraftHandler) Generate(c *fiber.Ctx) error {
	req := new(generateRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	uid := middleware.UID(c)
	draft, err := h.generationService.GenerateDraft(c.Context(), uid, req.Topic, req.Language, req.ThemeSlug)
	if err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), uid, constant.LogActionCreateDraft, draft.ID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(draft))
}

func (h *DraftHandler) Slides(c *fiber.Ctx) error {
	draftID, err := strconv.ParseUint(c.Query("draftId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	slides, err := h.draftService.GetSlides(c.Context(), draftID)
	if err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(slides))
}

type addSlideRequest struct {
	DraftID  uint64         `json:"draftId,string"`
	Type     deck.SlideType `json:"type"`
	Position int            `json:"position"`
}

func (h *DraftHandler) AddSlide(c *fiber.Ctx) error {
	req := new(addSlideRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	slide, err := h.draftService.AddSlide(c.Context(), req.DraftID, req.Type, req.Position)
	if err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), middleware.UID(c), constant.LogActionAddSlide, req.DraftID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(slide))
}

type updateSlideRequest struct {
	DraftID uint64     `json:"draftId,string"`
	Slide   deck.Slide `json:"slide"`
}

func (h *DraftHandler) UpdateSlide(c *fiber.Ctx) error {
	req := new(updateSlideRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.draftService.UpdateSlide(c.Context(), req.DraftID, req.Slide); err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), middleware.UID(c), constant.LogActionUpdateSlide, req.DraftID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

type removeSlideRequest struct {
	DraftID uint64 `json:"draftId,string"`
	SlideID string `json:"slideId"`
}

func (h *DraftHandler) RemoveSlide(c *fiber.Ctx) error {
	req := new(removeSlideRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.draftService.RemoveSlide(c.Context(), req.DraftID, req.SlideID); err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), middleware.UID(c), constant.LogActionDeleteSlide, req.DraftID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

type reorderRequest struct {
	DraftID uint64   `json:"draftId,string"`
	Order   []string `json:"order"`
}

func (h *DraftHandler) ReorderSlides(c *fiber.Ctx) error {
	req := new(reorderRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	if err := h.draftService.ReorderSlides(c.Context(), req.DraftID, req.Order); err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	go h.logService.CreateOperationLog(c.Context(), middleware.UID(c), constant.LogActionReorderSlides, req.DraftID, c.IP(), c.Get("User-Agent"))

	return c.JSON(service.OK(nil))
}

func (h *DraftHandler) Thumbnail(c *fiber.Ctx) error {
	draftID, err := strconv.ParseUint(c.Query("draftId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	slideID := c.Query("slideId")
	if slideID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	dataURL, err := h.thumbnailService.Thumbnail(c.Context(), draftID, slideID)
	if err != nil {
		return c.Status(constant.GetErrorCode(err)).JSON(service.Error(err))
	}
	return c.JSON(service.OK(dataURL))
}
