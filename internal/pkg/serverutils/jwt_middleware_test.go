package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, userId uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedApp(secret string, seen *uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(NewJwtMiddleware(secret))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		*seen = CallerID(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestJwtMiddlewareAcceptsConfiguredSecret(t *testing.T) {
	var seen uuid.UUID
	app := newProtectedApp("wired-secret", &seen)
	userId := uuid.New()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wired-secret", userId))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, userId, seen)
}

func TestJwtMiddlewareRejectsForeignSecret(t *testing.T) {
	var seen uuid.UUID
	app := newProtectedApp("wired-secret", &seen)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uuid.New()))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, uuid.Nil, seen)
}

func TestJwtMiddlewareMissingToken(t *testing.T) {
	var seen uuid.UUID
	app := newProtectedApp("wired-secret", &seen)

	resp, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
