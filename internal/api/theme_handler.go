package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/service"
	"github.com/yockii/deck_tools/pkg/deck"
	"github.com/yockii/deck_tools/pkg/layout"
	"github.com/yockii/deck_tools/pkg/theme"
)

type ThemeHandler struct{}

func RegisterThemeHandler() {
	Handlers = append(Handlers, &ThemeHandler{})
}

func (h *ThemeHandler) RegisterRoutes(router fiber.Router, authMiddleware fiber.Handler) {
	r := router.Group("/theme")
	{
		r.Get("/list", h.List)
		r.Get("/get", h.Get)
		r.Get("/category", h.ByCategory)
		r.Get("/free", h.Free)
		r.Get("/premium", h.Premium)
		r.Get("/layouts", h.Layouts)
	}
}

func (h *ThemeHandler) List(c *fiber.Ctx) error {
	return c.JSON(service.OK(theme.All()))
}

func (h *ThemeHandler) Get(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	cfg, ok := theme.Get(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(service.Error(constant.ErrThemeNotFound))
	}
	return c.JSON(service.OK(cfg))
}

func (h *ThemeHandler) ByCategory(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(service.Error(constant.ErrInvalidParams))
	}
	return c.JSON(service.OK(theme.ByCategory(name)))
}

func (h *ThemeHandler) Free(c *fiber.Ctx) error {
	return c.JSON(service.OK(theme.Free()))
}

func (h *ThemeHandler) Premium(c *fiber.Ctx) error {
	return c.JSON(service.OK(theme.Premium()))
}

// Layouts 返回主题已实现的布局类型，编辑器据此隐藏不可用的布局
func (h *ThemeHandler) Layouts(c *fiber.Ctx) error {
	id := c.Query("id")
	set, ok := layout.SetFor(id)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(service.Error(constant.ErrThemeNotFound))
	}
	var types []deck.SlideType
	for _, t := range deck.AllTypes {
		if _, ok := set[t]; ok {
			types = append(types, t)
		}
	}
	return c.JSON(service.OK(types))
}
