package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yockii/deck_tools/internal/constant"
	"github.com/yockii/deck_tools/internal/service"
	"github.com/yockii/deck_tools/pkg/config"
	"github.com/yockii/deck_tools/pkg/logger"
)

// NewAuthMiddleware 创建认证中间件，解析Bearer JWT并将uid存入上下文
func NewAuthMiddleware(skipPaths []string) fiber.Handler {
	skipPathMap := make(map[string]bool)
	for _, path := range skipPaths {
		skipPathMap[path] = true
	}

	return func(c *fiber.Ctx) error {
		// 检查是否跳过认证
		if skipPathMap[c.Path()] {
			return c.Next()
		}

		// 获取token
		authorization := c.Get("Authorization")
		token := strings.TrimPrefix(authorization, "Bearer ")
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(service.NewResponse(nil, constant.ErrUnauthorized))
		}

		uid, err := parseToken(token)
		if err != nil {
			logger.Warn("token验证失败", logger.F("error", err))
			return c.Status(fiber.StatusUnauthorized).JSON(service.NewResponse(nil, constant.ErrInvalidToken))
		}

		// 将用户信息存入上下文
		c.Locals("uid", uid)

		return c.Next()
	}
}

func parseToken(tokenString string) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, constant.ErrInvalidToken
		}
		return config.GetJWTSecret(), nil
	})
	if err != nil || !token.Valid {
		return 0, constant.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, constant.ErrInvalidToken
	}
	uid := uint64(0)
	if sub, ok := claims["uid"].(float64); ok {
		uid = uint64(sub)
	}
	if uid == 0 {
		return 0, constant.ErrInvalidToken
	}
	return uid, nil
}

// UID 从上下文取当前用户ID
func UID(c *fiber.Ctx) uint64 {
	if uid, ok := c.Locals("uid").(uint64); ok {
		return uid
	}
	return 0
}

// Recovery 错误恢复中间件
func Recovery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					logger.F("error", r),
					logger.F("path", c.Path()),
					logger.F("method", c.Method()),
				)

				err, ok := r.(error)
				if !ok {
					err = fiber.ErrInternalServerError
				}

				c.Status(fiber.StatusInternalServerError).JSON(service.NewResponse(nil, err))
			}
		}()

		return c.Next()
	}
}

// RequestLogger 请求日志中间件
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 记录请求开始时间
		start := time.Now()

		// 处理请求
		err := c.Next()

		// 记录请求日志
		logger.Info("request completed",
			logger.F("method", c.Method()),
			logger.F("path", c.Path()),
			logger.F("status", c.Response().StatusCode()),
			logger.F("duration", time.Since(start)),
			logger.F("ip", c.IP()),
			logger.F("user-agent", c.Get("User-Agent")),
		)

		return err
	}
}
