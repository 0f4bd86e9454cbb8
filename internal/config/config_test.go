package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "CATALOG_SOURCE", "TOKEN_MODE", "ALLOWED_ORIGINS", "CACHE_MAX_AGE", "JWT_EXPIRY_HOURS"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, CatalogSourceEmbedded, cfg.CatalogSource)
	assert.Equal(t, TokenModeMock, cfg.TokenMode)
	assert.Equal(t, 60, cfg.CacheMaxAge)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Nil(t, cfg.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("TOKEN_MODE", "JWT")
	t.Setenv("CACHE_MAX_AGE", "not-a-number")
	t.Setenv("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := Load()
	assert.Equal(t, "8081", cfg.ServerPort)
	assert.Equal(t, TokenModeJWT, cfg.TokenMode)
	assert.Equal(t, 60, cfg.CacheMaxAge)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoadClientTrimsAPIURL(t *testing.T) {
	t.Setenv("API_URL", "http://api.test:5000/")
	t.Setenv("SESSION_STORE", "Redis")

	cfg := LoadClient()
	assert.Equal(t, "http://api.test:5000", cfg.APIURL)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.NotEmpty(t, cfg.SessionFile)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "student-dashboard:auth", CacheKey.SessionKey(AuthSessionKey))
}
