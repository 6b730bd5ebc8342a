package global

import (
	"context"
	"os"
	"strings"
	"time"
)

const (
	CatalogSourceStatic = "static"
	CatalogSourceMongo  = "mongo"
)

// Config holds every runtime setting read from the environment.
type Config struct {
	Env             string
	Port            string
	LogLevel        string
	CORSOrigins     []string
	CatalogSource   string
	MongoURI        string
	MongoDatabase   string
	RedisAddress    string
	RedisPassword   string
	CatalogCacheTTL time.Duration
	SessionTTL      time.Duration
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// CacheEnabled reports whether a redis address was configured.
func (c Config) CacheEnabled() bool {
	return c.RedisAddress != ""
}

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetDurationOrDefault parses key with time.ParseDuration. Unset, malformed
// or non-positive values yield defaultValue.
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

// GetListOrDefault splits a comma separated value, dropping blanks.
func GetListOrDefault(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// LoadConfig reads the environment. Call it after godotenv has run.
func LoadConfig() Config {
	return Config{
		Env:      GetEnvOrDefault("ENV", "development"),
		Port:     GetEnvOrDefault("PORT", "8000"),
		LogLevel: GetEnvOrDefault("LOG_LEVEL", "info"),
		CORSOrigins: GetListOrDefault("CORS_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),
		CatalogSource:   strings.ToLower(GetEnvOrDefault("CATALOG_SOURCE", CatalogSourceStatic)),
		MongoURI:        os.Getenv("MONGODB_URI"),
		MongoDatabase:   GetEnvOrDefault("MONGODB_DATABASE", "shopvibe"),
		RedisAddress:    os.Getenv("REDIS_ADDRESS"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		CatalogCacheTTL: GetDurationOrDefault("CATALOG_CACHE_TTL", 10*time.Minute),
		SessionTTL:      GetDurationOrDefault("SESSION_TTL", time.Hour),
	}
}
