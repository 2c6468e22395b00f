package config

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func Init() {
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	log.SetLevel(logrus.InfoLevel)
}

func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithError(err).Warnf("Unknown log level %q, keeping %s", level, log.GetLevel())
		return
	}
	log.SetLevel(parsed)
}

// SetOutput redirects all log output, used by the CLI to keep stdout clean.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Logger() *logrus.Logger {
	return log
}

// WithContext returns a log entry carrying the chi request id when one is
// present in the context.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(log)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("Failed to encode response body")
	}
}
