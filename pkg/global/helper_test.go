package global

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"ENV", "PORT", "LOG_LEVEL", "CORS_ORIGINS", "CATALOG_SOURCE", "MONGODB_URI",
		"MONGODB_DATABASE", "REDIS_ADDRESS", "REDIS_PASSWORD", "CATALOG_CACHE_TTL", "SESSION_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, CatalogSourceStatic, cfg.CatalogSource)
	assert.Equal(t, "shopvibe", cfg.MongoDatabase)
	assert.Equal(t, 10*time.Minute, cfg.CatalogCacheTTL)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.CacheEnabled())
	assert.False(t, cfg.IsProduction())
	assert.Len(t, cfg.CORSOrigins, 2)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("CATALOG_SOURCE", "Mongo")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("CORS_ORIGINS", " https://shop.example , ,https://admin.example")
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("SESSION_TTL", "soon")

	cfg := LoadConfig()
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, CatalogSourceMongo, cfg.CatalogSource)
	assert.True(t, cfg.CacheEnabled())
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, cfg.CORSOrigins)
	assert.Equal(t, 90*time.Second, cfg.CatalogCacheTTL)
	assert.Equal(t, time.Hour, cfg.SessionTTL, "malformed durations fall back")
}

func TestGetDurationRejectsNonPositive(t *testing.T) {
	t.Setenv("SOME_TTL", "-5m")
	assert.Equal(t, time.Second, GetDurationOrDefault("SOME_TTL", time.Second))
}

func TestNewLoggerLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, NewLogger("debug").Level)
	assert.Equal(t, logrus.InfoLevel, NewLogger("chatty").Level)
}

func TestResponses(t *testing.T) {
	ok := SuccessResponse("data")
	assert.True(t, ok.Success)
	assert.Equal(t, "data", ok.Data)

	bad := ErrorResponse("nope", []ValidationError{{Field: "id", Message: "missing", Code: "required"}})
	assert.False(t, bad.Success)
	assert.Equal(t, "nope", bad.Message)
	assert.Len(t, bad.Errors, 1)
}
