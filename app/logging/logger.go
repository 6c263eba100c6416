package logging

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger creates the structured application logger. Set LOG_DEBUG=true
// for a human-readable development logger.
func NewLogger(serviceName string) (*zap.Logger, error) {
	if os.Getenv("LOG_DEBUG") == "true" {
		return zap.NewDevelopment()
	}

	config := zap.NewProductionConfig()
	config.InitialFields = map[string]interface{}{
		"service": serviceName,
	}
	return config.Build()
}

// WithRequestID returns a logger with a request_id field attached.
func WithRequestID(logger *zap.Logger, requestID string) *zap.Logger {
	return logger.With(zap.String("request_id", requestID))
}
