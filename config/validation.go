package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every problem found by ValidateConfig.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, v := range e {
		lines[i] = v.Error()
	}
	return "configuration validation failed:\n" + strings.Join(lines, "\n")
}

// ValidateConfig checks if the configuration meets the requirements for its environment
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.ServerPort == "" {
		add("SERVER_PORT", "is required")
	}

	if cfg.CatalogPath == "" && cfg.CatalogS3Bucket == "" {
		add("CATALOG_PATH", "set CATALOG_PATH or CATALOG_S3_BUCKET")
	}
	if cfg.CatalogFromS3() && cfg.CatalogS3Key == "" {
		add("CATALOG_S3_KEY", "is required when CATALOG_S3_BUCKET is set")
	}
	if (cfg.CatalogS3AccessKey == "") != (cfg.CatalogS3SecretKey == "") {
		add("CATALOG_S3_SECRET_KEY", "access key and secret key must be set together")
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DBHost == "" {
			add("DB_HOST", "is required for the postgres driver")
		}
		if cfg.DBName == "" {
			add("DB_NAME", "is required for the postgres driver")
		}
		if cfg.DBPassword == "" && cfg.Environment == Production {
			add("db_password", "secret is required in production")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			add("SQLITE_PATH", "is required for the sqlite driver")
		}
	default:
		add("DB_DRIVER", "unsupported driver %q", cfg.DBDriver)
	}

	if cfg.JWTSecret == "" {
		if cfg.Environment == CI {
			add("JWT_SECRET", "environment variable is required in CI environment")
		} else {
			add("jwt_secret", "secret is required")
		}
	}

	if cfg.SearchRateLimit < 0 {
		add("SEARCH_RATE_LIMIT", "must not be negative")
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		add("LOG_LEVEL", "unknown level %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		add("LOG_FORMAT", "must be text or json")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
