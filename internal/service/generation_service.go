package service

import (
	"context"
	"time"

	"github.com/yockii/deck_tools/internal/aigen"
	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/model"
	"github.com/yockii/deck_tools/pkg/config"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/theme"
)

type generationService struct {
	drafts DraftService
	client *aigen.Client
}

func NewGenerationService(drafts DraftService) *generationService {
	return &generationService{
		drafts: drafts,
		client: aigen.NewClient(
			config.GetString("generation.base_url"),
			config.GetString("generation.api_secret"),
			time.Duration(config.GetInt("generation.timeout"))*time.Second,
		),
	}
}

// GenerateDraft 调用AI服务起草整套幻灯片并落库为新草稿
func (s *generationService) GenerateDraft(ctx context.Context, uid uint64, topic, language, themeSlug string) (*model.Draft, error) {
	if topic == "" {
		return nil, constant.ErrInvalidParams
	}
	if _, ok := theme.Get(themeSlug); !ok {
		return nil, constant.ErrThemeNotFound
	}
	if language == "" {
		language = "zh"
	}

	title, slides, err := s.client.GenerateSlides(ctx, &aigen.GenerateRequest{
		Topic:      topic,
		Language:   language,
		SlideCount: config.GetInt("generation.slide_count"),
	})
	if err != nil {
		logger.Error("AI生成幻灯片失败",
			logger.F("topic", topic),
			logger.F("error", err),
		)
		return nil, constant.ErrGenerationFailed
	}
	if len(slides) == 0 {
		logger.Error("AI生成结果为空", logger.F("topic", topic))
		return nil, constant.ErrGenerationFailed
	}
	if title == "" {
		title = topic
	}

	draft := &model.Draft{
		UID:       uid,
		Title:     title,
		Topic:     topic,
		Language:  language,
		ThemeSlug: themeSlug,
		Status:    model.DraftStatusGenerated,
	}
	if err := draft.SetSlides(slides); err != nil {
		return nil, err
	}
	if err := s.drafts.Create(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}
