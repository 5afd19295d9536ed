package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"jobify/api/internal/config"
	"jobify/api/internal/models"
	"jobify/api/internal/security"
)

const testCookieName = "jobify_session"

func testConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			JWTSecret:  "test-secret",
			SessionTTL: time.Hour,
			CookieName: testCookieName,
		},
	}
}

func newSessionRouter(t *testing.T, cfg *config.AppConfig, demoUserID string) (*gin.Engine, *security.DenyList) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	denyList := security.NewDenyList(client)

	router := gin.New()
	router.GET("/protected", Session(cfg, denyList, demoUserID), func(c *gin.Context) {
		identity, ok := CurrentIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{
			"userId": identity.UserID,
			"role":   string(identity.Role),
			"isDemo": identity.IsDemo,
		})
	})
	return router, denyList
}

func doRequest(router *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSessionMissingCookie(t *testing.T) {
	router, _ := newSessionRouter(t, testConfig(), "")

	rec := doRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "authentication required")
}

func TestSessionInvalidToken(t *testing.T) {
	router, _ := newSessionRouter(t, testConfig(), "")

	rec := doRequest(router, "garbage-token")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "authentication invalid")
}

func TestSessionExpiredToken(t *testing.T) {
	cfg := testConfig()
	router, _ := newSessionRouter(t, cfg, "")

	token, err := security.IssueSessionToken(cfg.Security.JWTSecret, "u1", models.UserRoleUser, -time.Minute)
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionValidTokenResolvesIdentity(t *testing.T) {
	cfg := testConfig()
	router, _ := newSessionRouter(t, cfg, "")

	token, err := security.IssueSessionToken(cfg.Security.JWTSecret, "u1", models.UserRoleAdmin, time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"userId":"u1"`)
	require.Contains(t, rec.Body.String(), `"role":"admin"`)
	require.Contains(t, rec.Body.String(), `"isDemo":false`)
}

func TestSessionFlagsDemoIdentity(t *testing.T) {
	cfg := testConfig()
	router, _ := newSessionRouter(t, cfg, "demo-user")

	token, err := security.IssueSessionToken(cfg.Security.JWTSecret, "demo-user", models.UserRoleUser, time.Hour)
	require.NoError(t, err)

	rec := doRequest(router, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"isDemo":true`)
}

func TestSessionRejectsRevokedToken(t *testing.T) {
	cfg := testConfig()
	router, denyList := newSessionRouter(t, cfg, "")

	token, err := security.IssueSessionToken(cfg.Security.JWTSecret, "u1", models.UserRoleUser, time.Hour)
	require.NoError(t, err)

	// Token works before logout.
	require.Equal(t, http.StatusOK, doRequest(router, token).Code)

	claims, err := security.ParseSessionToken(token, cfg.Security.JWTSecret)
	require.NoError(t, err)
	require.NoError(t, denyList.Revoke(context.Background(), claims.ID, time.Hour))

	// The raw token replayed after logout is refused.
	rec := doRequest(router, token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "authentication invalid")
}
