package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/pkg/config"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/layout"
	"github.com/yockii/deck_tools/pkg/logger"
	"github.com/yockii/deck_tools/pkg/render"
)

const thumbPrefix = "thumb:"

type thumbnailService struct {
	drafts     DraftService
	rasterizer *render.Rasterizer
	rdb        *redis.Client
	ttl        time.Duration
	debounce   time.Duration

	mu         sync.Mutex
	debouncers map[string]*render.Debouncer
}

func NewThumbnailService() *thumbnailService {
	rasterizer, err := render.NewRasterizer(
		config.GetString("thumbnail.font_path"),
		config.GetInt("thumbnail.width"),
		config.GetInt("thumbnail.quality"),
		time.Duration(config.GetInt("thumbnail.settle_delay_ms"))*time.Millisecond,
	)
	if err != nil {
		logger.Error("初始化缩略图渲染器失败", logger.F("error", err))
	}
	return &thumbnailService{
		rasterizer: rasterizer,
		rdb: redis.NewClient(&redis.Options{
			Addr: fmt.Sprintf("%s:%d",
				config.GetString("cache.redis.host"),
				config.GetInt("cache.redis.port")),
			Password:     config.GetString("cache.redis.password"),
			DB:           config.GetInt("cache.redis.db"),
			PoolSize:     config.GetInt("cache.redis.pool_size"),
			MinIdleConns: config.GetInt("cache.redis.pool_size") / 2,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		}),
		ttl:        time.Duration(config.GetInt64("thumbnail.cache_ttl")) * time.Second,
		debounce:   time.Duration(config.GetInt("thumbnail.debounce_ms")) * time.Millisecond,
		debouncers: make(map[string]*render.Debouncer),
	}
}

// SetDraftService 草稿服务与缩略图服务互相依赖，初始化后再注入
func (s *thumbnailService) SetDraftService(drafts DraftService) {
	s.drafts = drafts
}

// Thumbnail 获取单页缩略图，命中缓存时直接返回
func (s *thumbnailService) Thumbnail(ctx context.Context, draftID uint64, slideID string) (string, error) {
	key := thumbKey(draftID, slideID)
	if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
		return cached, nil
	} else if err != redis.Nil {
		logger.Warn("读取缩略图缓存失败", logger.F("error", err))
	}

	dataURL, err := s.capture(ctx, draftID, slideID)
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, key, dataURL, s.ttl).Err(); err != nil {
		logger.Warn("写入缩略图缓存失败", logger.F("error", err))
	}
	return dataURL, nil
}

// ScheduleRefresh 编辑后延迟刷新缓存，连续编辑只触发最后一次
func (s *thumbnailService) ScheduleRefresh(draftID uint64, slideID string) {
	key := thumbKey(draftID, slideID)

	s.mu.Lock()
	d, ok := s.debouncers[key]
	if !ok {
		d = render.NewDebouncer(s.debounce)
		s.debouncers[key] = d
	}
	s.mu.Unlock()

	d.Trigger(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		dataURL, err := s.capture(ctx, draftID, slideID)
		if err != nil {
			logger.Error("刷新缩略图失败",
				logger.F("draftID", draftID),
				logger.F("slideID", slideID),
				logger.F("error", err),
			)
			return
		}
		if err := s.rdb.Set(ctx, key, dataURL, s.ttl).Err(); err != nil {
			logger.Warn("写入缩略图缓存失败", logger.F("error", err))
		}
	})
}

func (s *thumbnailService) capture(ctx context.Context, draftID uint64, slideID string) (string, error) {
	if s.rasterizer == nil {
		return "", constant.ErrThumbnailFailed
	}

	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return "", constant.ErrDraftNotFound
	}
	slides, err := draft.DecodeSlides()
	if err != nil {
		return "", err
	}
	slide, ok := deck.FindByID(slides, slideID)
	if !ok {
		return "", constant.ErrSlideNotFound
	}

	tree := layout.Render(*slide, draft.ThemeSlug, false)
	dataURL, err := s.rasterizer.Capture(ctx, tree)
	if err != nil {
		return "", constant.ErrThumbnailFailed
	}
	return dataURL, nil
}

func thumbKey(draftID uint64, slideID string) string {
	return fmt.Sprintf("%s%d:%s", thumbPrefix, draftID, slideID)
}
