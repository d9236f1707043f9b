package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearTestEnvVars() {
	for _, key := range []string{
		"SERVER_HOST", "FEED_SERVICE_PORT", "MEDIA_SERVER_PORT",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"MONGO_HOST", "MONGO_PORT", "MONGO_USER", "MONGO_PASSWORD", "MONGO_DB",
		"REDIS_ADDR", "JWT_SECRET", "HASHID_SALT", "HASHID_MIN_LENGTH",
		"LOG_LEVEL", "LOG_FORMAT", "ENVIRONMENT",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	cfg := LoadConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "3306", cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.Equal(t, "7002", cfg.Server.FeedServicePort)
	assert.Equal(t, "8080", cfg.Server.MediaServerPort)

	// Caching defaults to off.
	assert.Empty(t, cfg.Redis.Addr)

	assert.Equal(t, 8, cfg.Hashid.MinLength)
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("DB_MAX_OPEN_CONNS", "50")
	os.Setenv("REDIS_ADDR", "cache.internal:6379")

	cfg := LoadConfig()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, "cache.internal:6379", cfg.Redis.Addr)
}

func TestDSN(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	cfg := LoadConfig()
	dsn := cfg.DSN()

	assert.Contains(t, dsn, "@tcp(localhost:3306)/")
	assert.Contains(t, dsn, "parseTime=True")
}

func TestGetMongoURI(t *testing.T) {
	clearTestEnvVars()
	defer clearTestEnvVars()

	cfg := LoadConfig()
	assert.Contains(t, cfg.GetMongoURI(), "mongodb://")

	cfg.MongoDB.Username = ""
	assert.Equal(t, "mongodb://localhost:27017", cfg.GetMongoURI())
}
