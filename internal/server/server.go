package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	middlewareLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/yockii/deck_tools/internal/api"
	"github.com/yockii/deck_tools/internal/middleware"
	"github.com/yockii/deck_tools/internal/service"
	"github.com/yockii/deck_tools/pkg/config"
	"github.com/yockii/deck_tools/pkg/logger"
)

type Server struct {
	app *fiber.App

	// 各个service
	draftSrv      service.DraftService
	exportSrv     service.ExportService
	thumbnailSrv  service.ThumbnailService
	generationSrv service.GenerationService
	logSrv        service.LogService
}

func New() *Server {
	return &Server{}
}

func (s *Server) Start() error {
	// 创建Fiber实例
	s.app = fiber.New(fiber.Config{
		AppName:               config.GetString("server.app_name"),
		EnablePrintRoutes:     config.GetBool("server.print_routes"),
		DisableStartupMessage: true,
		BodyLimit:             32 * 1024 * 1024,
	})

	s.setupServices()

	// 配置中间件
	s.setupMiddleware()

	// 注册路由
	s.registerHandlers()
	s.setupRoutesV1()

	// 启动服务器
	addr := config.GetServerAddress()
	logger.Info("服务监听地址", logger.F("address", addr))

	// 优雅关闭
	go s.gracefulShutdown()

	if err := s.app.Listen(addr); err != nil {
		logger.Error("服务停止", logger.F("error", err))
		return err
	}
	return nil
}

func (s *Server) gracefulShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("服务关闭中...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		logger.Error("服务关闭失败", logger.F("error", err))
	}

	logger.Info("服务已关闭")
}

// setupServices 配置服务层
func (s *Server) setupServices() {
	thumbnailSrv := service.NewThumbnailService()
	draftSrv := service.NewDraftService(thumbnailSrv)
	thumbnailSrv.SetDraftService(draftSrv)

	s.thumbnailSrv = thumbnailSrv
	s.draftSrv = draftSrv
	s.exportSrv = service.NewExportService(draftSrv)
	s.generationSrv = service.NewGenerationService(draftSrv)
	s.logSrv = service.NewLogService()
}

// setupMiddleware 配置中间件
func (s *Server) setupMiddleware() {
	// 异常恢复
	s.app.Use(recover.New())

	// CORS
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: config.GetString("security.allowed_origins"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// 访问日志
	s.app.Use(middlewareLogger.New(middlewareLogger.Config{
		Format:     "[${ip}]-${time} ${status} ${latency} ${method} ${path} | ${error}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	// 限流
	if config.GetBool("rate_limit.enabled") {
		s.app.Use(middleware.RateLimit(
			config.GetInt("rate_limit.max_requests"),
			time.Duration(config.GetInt("rate_limit.duration"))*time.Second,
		))
	}
}

func (s *Server) registerHandlers() {
	api.RegisterThemeHandler()
	api.RegisterDraftHandler(
		s.draftSrv,
		s.generationSrv,
		s.thumbnailSrv,
		s.logSrv,
	)
	api.RegisterExportHandler(
		s.exportSrv,
		s.logSrv,
	)
	api.RegisterStatusHandler()
}

// setupRoutesV1 配置v1路由
func (s *Server) setupRoutesV1() {
	// 中间件
	authMiddleware := middleware.NewAuthMiddleware(nil)

	// API路由组
	apiGroup := s.app.Group("/api/v1")

	for _, handler := range api.Handlers {
		handler.RegisterRoutes(apiGroup, authMiddleware)
	}

	// 健康检查
	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
}
