package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort string
	ServerHost string

	// Catalog source. A local file wins over S3 when both are set.
	CatalogPath     string
	CatalogS3Bucket string
	CatalogS3Key    string
	AWSRegion       string

	// Optional S3-compatible endpoint (R2, MinIO) with static credentials.
	CatalogS3Endpoint  string
	CatalogS3AccessKey string
	CatalogS3SecretKey string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisURL      string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT configuration
	JWTSecret string

	// Searches allowed per client per minute. Zero disables the limit.
	SearchRateLimit int

	// Logging
	LogLevel  string
	LogFormat string
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	// A missing .env file is normal outside local development.
	_ = godotenv.Load()

	env := GetEnvironment()
	cfg := &Config{Environment: env}

	// Load configuration based on environment
	switch env {
	case CI:
		if err := loadCIConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to load CI configuration: %w", err)
		}
	case Development, Test:
		loadDevConfig(cfg)
	case Production:
		loadProdConfig(cfg)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := loadCommon(cfg); err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCIConfig loads configuration for CI environment using ONLY environment variables
func loadCIConfig(cfg *Config) error {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.DBDriver = getEnv("DB_DRIVER", DriverPostgres)
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = os.Getenv("DB_PORT")
	cfg.DBUser = os.Getenv("DB_USER")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = os.Getenv("REDIS_PORT")

	// GitHub Actions secrets - use environment variables directly
	cfg.DBPassword = os.Getenv("TEST_DB_PASSWORD")
	if cfg.DBPassword == "" && cfg.DBDriver == DriverPostgres {
		return fmt.Errorf("TEST_DB_PASSWORD environment variable is required in CI environment")
	}
	cfg.JWTSecret = os.Getenv("TEST_JWT_SECRET")
	cfg.RedisPassword = os.Getenv("TEST_REDIS_PASSWORD")
	cfg.RedisURL = os.Getenv("TEST_REDIS_URL")

	return nil
}

// loadDevConfig loads configuration for development and test environments.
// Environment variables win; Docker secrets fill the gaps.
func loadDevConfig(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "localhost")
	cfg.DBDriver = getEnv("DB_DRIVER", DriverSQLite)
	cfg.DBHost = getEnv("DB_HOST", "localhost")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = envOrSecret("DB_USER", "db_user")
	cfg.DBPassword = envOrSecret("DB_PASSWORD", "db_password")
	cfg.DBName = getEnv("DB_NAME", "nutrilog")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "disable")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = envOrSecret("REDIS_PASSWORD", "redis_password")
	cfg.RedisURL = os.Getenv("REDIS_URL")
	cfg.JWTSecret = envOrSecret("JWT_SECRET", "jwt_secret")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-only-secret"
	}
}

// loadProdConfig loads configuration for production environment; sensitive
// values come from Docker secrets only.
func loadProdConfig(cfg *Config) {
	cfg.ServerPort = getEnv("SERVER_PORT", "8080")
	cfg.ServerHost = getEnv("SERVER_HOST", "0.0.0.0")
	cfg.DBDriver = getEnv("DB_DRIVER", DriverPostgres)
	cfg.DBHost = os.Getenv("DB_HOST")
	cfg.DBPort = getEnv("DB_PORT", "5432")
	cfg.DBUser = readSecret("db_user")
	cfg.DBPassword = readSecret("db_password")
	cfg.DBName = os.Getenv("DB_NAME")
	cfg.DBSSLMode = getEnv("DB_SSL_MODE", "require")
	cfg.RedisHost = os.Getenv("REDIS_HOST")
	cfg.RedisPort = getEnv("REDIS_PORT", "6379")
	cfg.RedisPassword = readSecret("redis_password")
	cfg.RedisURL = readSecret("redis_url")
	cfg.JWTSecret = readSecret("jwt_secret")
}

// loadCommon reads the settings that do not depend on the environment.
func loadCommon(cfg *Config) error {
	cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	cfg.CatalogS3Bucket = os.Getenv("CATALOG_S3_BUCKET")
	cfg.CatalogS3Key = os.Getenv("CATALOG_S3_KEY")
	cfg.AWSRegion = os.Getenv("AWS_REGION")
	cfg.CatalogS3Endpoint = os.Getenv("CATALOG_S3_ENDPOINT")
	cfg.CatalogS3AccessKey = envOrSecret("CATALOG_S3_ACCESS_KEY", "catalog_s3_access_key")
	cfg.CatalogS3SecretKey = envOrSecret("CATALOG_S3_SECRET_KEY", "catalog_s3_secret_key")
	cfg.SQLitePath = getEnv("SQLITE_PATH", "nutrilog.db")
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")
	cfg.LogFormat = os.Getenv("LOG_FORMAT")
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
		if cfg.Environment == Production {
			cfg.LogFormat = "json"
		}
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return err
	}
	if cfg.SearchRateLimit, err = getEnvInt("SEARCH_RATE_LIMIT", 120); err != nil {
		return err
	}
	return nil
}

// RedisEnabled reports whether enough Redis settings are present to connect.
func (c *Config) RedisEnabled() bool {
	return c.RedisURL != "" || c.RedisHost != ""
}

// CatalogFromS3 reports whether the catalog should be fetched from S3.
func (c *Config) CatalogFromS3() bool {
	return c.CatalogPath == "" && c.CatalogS3Bucket != ""
}

// DSN returns the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func envOrSecret(key, secret string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return readSecret(secret)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
