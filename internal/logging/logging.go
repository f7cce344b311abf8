// Package logging configures the structured logger shared by every component.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/pageza/nutrilog/backend/config"
)

const contextKey = "logger"

// New returns a logger configured from cfg, writing to stdout.
func New(cfg *config.Config) *logrus.Logger {
	return NewWithOutput(cfg.LogLevel, cfg.LogFormat, os.Stdout)
}

// NewWithOutput builds a logger with an explicit level, format and sink. An
// unknown level falls back to info.
func NewWithOutput(level, format string, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.Out = out

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.Level = lvl

	if format == "json" {
		log.Formatter = &logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "severity",
				logrus.FieldKeyMsg:   "message",
			},
		}
	} else {
		log.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	}
	return log
}

// WithComponent tags every entry from the returned logger with component.
func WithComponent(log logrus.FieldLogger, component string) *logrus.Entry {
	return log.WithField("component", component)
}

// Middleware attaches a request-scoped logger to the gin context and logs
// every completed request.
func Middleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.WithFields(logrus.Fields{
			"http.req.id":     uuid.NewString(),
			"http.req.path":   c.Request.URL.Path,
			"http.req.method": c.Request.Method,
		})
		c.Set(contextKey, reqLog)

		c.Next()

		entry := reqLog.WithFields(logrus.Fields{
			"http.resp.status":  c.Writer.Status(),
			"http.resp.took_ms": time.Since(start).Milliseconds(),
			"http.resp.bytes":   c.Writer.Size(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("error", c.Errors.String())
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("request complete")
		case status >= 400:
			entry.Warn("request complete")
		default:
			entry.Debug("request complete")
		}
	}
}

// FromContext returns the request-scoped logger, or fallback when the
// middleware did not run.
func FromContext(c *gin.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if v, ok := c.Get(contextKey); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	return fallback
}
