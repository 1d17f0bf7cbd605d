package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/yockii/deck_tools/internal/service"
	"github.com/yockii/deck_tools/pkg/logger"
)

type StatusHandler struct {
	startTime time.Time
}

func RegisterStatusHandler() {
	Handlers = append(Handlers, &StatusHandler{startTime: time.Now()})
}

func (h *StatusHandler) RegisterRoutes(router fiber.Router, authMiddleware fiber.Handler) {
	r := router.Group("/status", authMiddleware)
	{
		r.Get("/system", h.System)
	}
}

// System 返回宿主机运行状态
func (h *StatusHandler) System(c *fiber.Ctx) error {
	info := fiber.Map{
		"uptime": time.Since(h.startTime).String(),
	}

	if hostInfo, err := host.Info(); err == nil {
		info["hostname"] = hostInfo.Hostname
		info["os"] = hostInfo.OS
		info["platform"] = hostInfo.Platform
	} else {
		logger.Warn("获取主机信息失败", logger.F("err", err))
	}

	if memInfo, err := mem.VirtualMemory(); err == nil {
		info["memoryTotal"] = memInfo.Total
		info["memoryUsed"] = memInfo.Used
		info["memoryPercent"] = memInfo.UsedPercent
	} else {
		logger.Warn("获取内存信息失败", logger.F("err", err))
	}

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		info["cpuPercent"] = percents[0]
	} else if err != nil {
		logger.Warn("获取CPU信息失败", logger.F("err", err))
	}

	return c.JSON(service.OK(info))
}
