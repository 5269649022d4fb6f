// ABOUTME: Tests for the service-token guard
// ABOUTME: Covers disabled mode, valid tokens, and rejection paths
package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-hub/config"
)

func authTestSetup(cfg config.AuthConfig) *echo.Echo {
	e := echo.New()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	e.Use(ServiceAuth(cfg, logger))
	e.POST("/admin/moderate", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	return e
}

func TestServiceAuth(t *testing.T) {
	cfg := config.AuthConfig{
		Enabled:       true,
		ServiceSecret: "test-secret",
		Issuer:        "news-hub",
	}

	t.Run("should pass everything through when disabled", func(t *testing.T) {
		e := authTestSetup(config.AuthConfig{Enabled: false})

		req := httptest.NewRequest(http.MethodPost, "/admin/moderate", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should accept a valid service token", func(t *testing.T) {
		e := authTestSetup(cfg)

		token, err := IssueServiceToken(cfg, "chat-gateway", time.Now().Add(time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/moderate", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should reject a missing token", func(t *testing.T) {
		e := authTestSetup(cfg)

		req := httptest.NewRequest(http.MethodPost, "/admin/moderate", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		e := authTestSetup(cfg)

		token, err := IssueServiceToken(cfg, "chat-gateway", time.Now().Add(-time.Minute))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/moderate", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a token signed with a different secret", func(t *testing.T) {
		e := authTestSetup(cfg)

		other := config.AuthConfig{Enabled: true, ServiceSecret: "other-secret", Issuer: "news-hub"}
		token, err := IssueServiceToken(other, "chat-gateway", time.Now().Add(time.Hour))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/moderate", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should reject a wrong issuer", func(t *testing.T) {
		e := authTestSetup(cfg)

		claims := jwt.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.ServiceSecret))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/admin/moderate", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
