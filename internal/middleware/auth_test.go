package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"fraudtriage/internal/models"
	"fraudtriage/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newTestApp(permission string) *fiber.App {
	app := fiber.New()
	auth := NewAuthMiddleware(testSecret)
	app.Get("/alerts", auth.Handler, HasPermission(permission), func(c *fiber.Ctx) error {
		claims := c.Locals("claims").(*models.AnalystClaims)
		return c.SendString(claims.AnalystID)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateAnalystToken("analyst-7", "analyst", testSecret, time.Hour)
	require.NoError(t, err)
	expired, err := utils.GenerateAnalystToken("analyst-7", "analyst", testSecret, -time.Minute)
	require.NoError(t, err)
	wrongKey, err := utils.GenerateAnalystToken("analyst-7", "analyst", "other", time.Hour)
	require.NoError(t, err)
	noRole, err := utils.GenerateAnalystToken("analyst-7", "", testSecret, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"valid token", "Bearer " + valid, fiber.StatusOK},
		{"missing header", "", fiber.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, fiber.StatusUnauthorized},
		{"expired", "Bearer " + expired, fiber.StatusUnauthorized},
		{"wrong signature", "Bearer " + wrongKey, fiber.StatusUnauthorized},
		{"missing permission", "Bearer " + noRole, fiber.StatusForbidden},
	}

	app := newTestApp(models.PermissionAlertsRead)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/alerts", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestGenerateAnalystTokenValidation(t *testing.T) {
	_, err := utils.GenerateAnalystToken("a", "analyst", "", time.Hour)
	assert.Error(t, err)

	_, err = utils.GenerateAnalystToken("", "analyst", testSecret, time.Hour)
	assert.Error(t, err)
}

func TestParseClaims(t *testing.T) {
	token, err := utils.GenerateAnalystToken("lead-1", "lead", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := NewAuthMiddleware(testSecret).Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "lead-1", claims.AnalystID)
	assert.True(t, claims.HasPermission(models.PermissionAlertsAdmin))
	assert.Equal(t, "fraudtriage-api", claims.Issuer)
}
