package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig

	// Database Configuration
	Database DatabaseConfig

	// MongoDB Configuration (GridFS media blobs)
	MongoDB MongoConfig

	// Redis Configuration (feed page cache)
	Redis RedisConfig

	// Session token verification
	Auth AuthConfig

	// Identifier obfuscation
	Hashid HashidConfig

	// Logging Configuration
	Logging LoggingConfig
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host            string
	FeedServicePort string
	MediaServerPort string
	ReadTimeout     int
	WriteTimeout    int
	Environment     string // development, staging, production
}

// DatabaseConfig contains MySQL connection configuration
type DatabaseConfig struct {
	Host         string
	Port         string
	Username     string
	Password     string
	DatabaseName string
	MaxOpenConns int
	MaxIdleConns int
}

// MongoConfig contains MongoDB connection configuration
type MongoConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
}

// RedisConfig contains the optional cache backend. An empty Addr disables
// caching entirely.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig contains session token verification settings
type AuthConfig struct {
	JWTSecret string
}

// HashidConfig controls the public identifier encoding
type HashidConfig struct {
	Salt      string
	MinLength int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// LoadConfig reads configuration from the environment, falling back to a
// local .env file when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Host:            getEnvOrDefault("SERVER_HOST", "0.0.0.0"),
			FeedServicePort: getEnvOrDefault("FEED_SERVICE_PORT", "7002"),
			MediaServerPort: getEnvOrDefault("MEDIA_SERVER_PORT", "8080"),
			ReadTimeout:     getEnvIntOrDefault("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:    getEnvIntOrDefault("SERVER_WRITE_TIMEOUT", 15),
			Environment:     getEnvOrDefault("ENVIRONMENT", "development"),
		},
		Database: DatabaseConfig{
			Host:         getEnvOrDefault("DB_HOST", "localhost"),
			Port:         getEnvOrDefault("DB_PORT", "3306"),
			Username:     getEnvOrDefault("DB_USER", "trailhead"),
			Password:     getEnvOrDefault("DB_PASSWORD", "trailhead123"),
			DatabaseName: getEnvOrDefault("DB_NAME", "trailhead"),
			MaxOpenConns: getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		},
		MongoDB: MongoConfig{
			Host:     getEnvOrDefault("MONGO_HOST", "localhost"),
			Port:     getEnvOrDefault("MONGO_PORT", "27017"),
			Username: getEnvOrDefault("MONGO_USER", "admin"),
			Password: getEnvOrDefault("MONGO_PASSWORD", "admin123"),
			Database: getEnvOrDefault("MONGO_DB", "trailhead"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", ""),
			Password: getEnvOrDefault("REDIS_PASSWORD", ""),
			DB:       getEnvIntOrDefault("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrDefault("JWT_SECRET", "dev-secret-change-me"),
		},
		Hashid: HashidConfig{
			Salt:      getEnvOrDefault("HASHID_SALT", "trailhead"),
			MinLength: getEnvIntOrDefault("HASHID_MIN_LENGTH", 8),
		},
		Logging: LoggingConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}
}

// DSN builds the MySQL connection string.
func (cfg *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DatabaseName,
	)
}

// GetMongoURI builds the MongoDB connection string.
func (cfg *Config) GetMongoURI() string {
	if cfg.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s", cfg.MongoDB.Host, cfg.MongoDB.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s/?authSource=admin",
		cfg.MongoDB.Username,
		cfg.MongoDB.Password,
		cfg.MongoDB.Host,
		cfg.MongoDB.Port,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
