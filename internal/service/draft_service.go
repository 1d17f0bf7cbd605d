package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/theme"
	"github.com/yockii/deck_tools/pkg/util"
)

type draftService struct {
	*BaseService[*model.Draft]
	thumbnails ThumbnailService
}

func NewDraftService(thumbnails ThumbnailService) *draftService {
	return &draftService{
		BaseService: NewBaseService[*model.Draft](),
		thumbnails:  thumbnails,
	}
}

func (s *draftService) NewModel() *model.Draft {
	return &model.Draft{}
}

func (s *draftService) BuildCondition(query *gorm.DB, condition *model.Draft) *gorm.DB {
	if condition.UID != 0 {
		query = query.Where("uid = ?", condition.UID)
	}
	if condition.Title != "" {
		query = query.Where("title LIKE ?", "%"+condition.Title+"%")
	}
	if condition.ThemeSlug != "" {
		query = query.Where("theme_slug = ?", condition.ThemeSlug)
	}
	if condition.Status != 0 {
		query = query.Where("status = ?", condition.Status)
	}
	return query
}

func (s *draftService) ListOmitColumns() []string {
	// 列表不拖回整个幻灯片JSON
	return []string{"slides"}
}

// Create 创建草稿，未指定主题时拒绝，未带幻灯片时给一页标题页
func (s *draftService) Create(ctx context.Context, record *model.Draft) error {
	if _, ok := theme.Get(record.ThemeSlug); !ok {
		return constant.ErrThemeNotFound
	}
	if len(record.Slides) == 0 {
		slide := deck.DefaultSlide(util.NewSlideID(), deck.TypeTitle, 0)
		if record.Title != "" {
			slide.Title = record.Title
		}
		if err := record.SetSlides([]deck.Slide{slide}); err != nil {
			return err
		}
	}
	return s.BaseService.Create(ctx, record)
}

func (s *draftService) GetSlides(ctx context.Context, draftID uint64) ([]deck.Slide, error) {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	return draft.DecodeSlides()
}

// AddSlide 在指定位置插入默认内容的新幻灯片
func (s *draftService) AddSlide(ctx context.Context, draftID uint64, slideType deck.SlideType, position int) (*deck.Slide, error) {
	if !slideType.Valid() {
		return nil, constant.ErrInvalidSlideType
	}
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return nil, err
	}
	slides, err := draft.DecodeSlides()
	if err != nil {
		return nil, err
	}

	slide := deck.DefaultSlide(util.NewSlideID(), slideType, position)
	slides = deck.InsertAt(slides, slide, position)
	if err := s.saveSlides(ctx, draft, slides); err != nil {
		return nil, err
	}

	added, _ := deck.FindByID(slides, slide.ID)
	s.thumbnails.ScheduleRefresh(draftID, slide.ID)
	return added, nil
}

// UpdateSlide 整体替换一页幻灯片内容，位置以现有顺序为准
func (s *draftService) UpdateSlide(ctx context.Context, draftID uint64, slide deck.Slide) error {
	if !slide.Type.Valid() {
		return constant.ErrInvalidSlideType
	}
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}
	slides, err := draft.DecodeSlides()
	if err != nil {
		return err
	}

	existing, ok := deck.FindByID(slides, slide.ID)
	if !ok {
		return constant.ErrSlideNotFound
	}
	slide.Position = existing.Position
	*existing = slide
	if err := s.saveSlides(ctx, draft, slides); err != nil {
		return err
	}

	s.thumbnails.ScheduleRefresh(draftID, slide.ID)
	return nil
}

func (s *draftService) RemoveSlide(ctx context.Context, draftID uint64, slideID string) error {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}
	slides, err := draft.DecodeSlides()
	if err != nil {
		return err
	}

	slides, removed := deck.RemoveByID(slides, slideID)
	if !removed {
		return constant.ErrSlideNotFound
	}
	return s.saveSlides(ctx, draft, slides)
}

// ReorderSlides 按给定ID序列重排，序列必须恰好覆盖全部幻灯片
func (s *draftService) ReorderSlides(ctx context.Context, draftID uint64, order []string) error {
	draft, err := s.loadDraft(ctx, draftID)
	if err != nil {
		return err
	}
	slides, err := draft.DecodeSlides()
	if err != nil {
		return err
	}

	reordered, err := deck.Reorder(slides, order)
	if err != nil {
		return constant.ErrInvalidOrder
	}
	return s.saveSlides(ctx, draft, reordered)
}

func (s *draftService) loadDraft(ctx context.Context, draftID uint64) (*model.Draft, error) {
	draft, err := s.BaseService.Get(ctx, draftID)
	if err != nil {
		return nil, constant.ErrDraftNotFound
	}
	return draft, nil
}

func (s *draftService) saveSlides(ctx context.Context, draft *model.Draft, slides []deck.Slide) error {
	if err := draft.SetSlides(slides); err != nil {
		return err
	}
	if err := s.db.Model(draft).Update("slides", draft.Slides).Error; err != nil {
		logger.Error("保存幻灯片失败",
			logger.F("draftID", draft.ID),
			logger.F("error", err),
		)
		return constant.ErrDatabaseError
	}
	return nil
}
