package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// responseRecorder is a custom ResponseWriter to capture status and body
type responseRecorder struct {
	http.ResponseWriter
	statusCode  int
	body        string
	wroteHeader bool
	rewrite     bool
}

func isJSON(h http.Header) bool {
	return strings.HasPrefix(h.Get("Content-Type"), "application/json")
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.wroteHeader {
		return
	}
	r.wroteHeader = true
	r.statusCode = statusCode
	if statusCode >= 400 && !isJSON(r.Header()) {
		r.rewrite = true
		r.Header().Set("Content-Type", "application/json")
		r.Header().Del("Content-Length")
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.WriteHeader(http.StatusOK)
	}
	// Plain-text error bodies are rewritten as JSON once the handler returns.
	if r.rewrite {
		r.body += string(b)
		return len(b), nil
	}
	return r.ResponseWriter.Write(b)
}

// ErrorHandler is a middleware that recovers panics and turns plain-text error
// responses into JSON error bodies
func ErrorHandler(log logrus.FieldLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		defer func() {
			if err := recover(); err != nil {
				log.WithFields(logrus.Fields{
					"panic":  err,
					"path":   r.URL.Path,
					"method": r.Method,
				}).Error("recovered from panic")
				if !rec.wroteHeader {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal Server Error"})
				}
				return
			}
			if rec.rewrite {
				json.NewEncoder(w).Encode(ErrorResponse{Error: strings.TrimSpace(rec.body)})
			}
		}()

		next.ServeHTTP(rec, r)
	})
}
