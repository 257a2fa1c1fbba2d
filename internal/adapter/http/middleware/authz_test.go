package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgourmethellas/catering-api/configs"
)

func authzTestConfig() configs.Config {
	var cfg configs.Config
	cfg.Security.JWTSecret = "test-secret"
	cfg.Security.Issuer = "catering-api"
	cfg.Security.Audience = "catering-clients"
	return cfg
}

func signToken(t *testing.T, cfg configs.Config, clientID string, perms []string) string {
	t.Helper()
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":      cfg.Security.Issuer,
		"aud":      cfg.Security.Audience,
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"exp":      now.Add(time.Minute).Unix(),
		"clientID": clientID,
		"perms":    perms,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.Security.JWTSecret))
	require.NoError(t, err)
	return signed
}

func TestRequireExposesClientID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := authzTestConfig()
	a := NewAuthz(cfg)

	var seenClient string
	r := gin.New()
	r.GET("/menu", a.Require("menu.read"), func(c *gin.Context) {
		seenClient = ClientID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, "portal-web", []string{"menu.read"}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "portal-web", seenClient)
}

func TestRequireRejectsMissingScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := authzTestConfig()
	a := NewAuthz(cfg)

	r := gin.New()
	r.PUT("/menu/items", a.Require("menu.write"), func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodPut, "/menu/items", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, cfg, "portal-web", []string{"menu.read"}))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	a := NewAuthz(authzTestConfig())

	r := gin.New()
	r.GET("/menu", a.Require("menu.read"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
