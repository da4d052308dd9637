package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/autoconnect/backend/pkg/config"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.Jwt{Secret: "middleware-secret", Expiry: time.Hour}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Use(JwtProtected(testCfg))
	app.Get("/", func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendString(token.Claims.(jwt.MapClaims)["user_id"].(string))
	})
	return app
}

func sign(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "u-1",
		"exp":     exp.Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJwtProtected(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing token", "", fiber.StatusUnauthorized},
		{"malformed header", "Token abc", fiber.StatusUnauthorized},
		{"wrong secret", "Bearer " + sign(t, "other", time.Now().Add(time.Hour)), fiber.StatusUnauthorized},
		{"expired", "Bearer " + sign(t, testCfg.Secret, time.Now().Add(-time.Hour)), fiber.StatusUnauthorized},
		{"valid", "Bearer " + sign(t, testCfg.Secret, time.Now().Add(time.Hour)), fiber.StatusOK},
	}
	app := protectedApp()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close() //nolint: errcheck
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestJwtError_Invalid(t *testing.T) {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		return jwtError(c, errors.New("any other error"))
	})
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
