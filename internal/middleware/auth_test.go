package middleware

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yockii/deck_tools/pkg/config"
)

func newAuthTestApp(t *testing.T, skipPaths []string) *fiber.App {
	// 配置文件缺失时仍可用默认值
	_ = config.Init("auth_test_missing.yaml")

	app := fiber.New()
	app.Use(NewAuthMiddleware(skipPaths))
	app.Get("/protected", func(c *fiber.Ctx) error {
		return c.SendString(fmt.Sprintf("uid=%d", UID(c)))
	})
	app.Get("/open", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func signToken(t *testing.T, uid uint64) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(config.GetJWTSecret())
	require.NoError(t, err)
	return signed
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := newAuthTestApp(t, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := newAuthTestApp(t, nil)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 42))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareBadToken(t *testing.T) {
	app := newAuthTestApp(t, nil)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareSkipPath(t *testing.T) {
	app := newAuthTestApp(t, []string{"/open"})

	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
