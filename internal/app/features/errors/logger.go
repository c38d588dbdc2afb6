// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger pairs error logging with the shared rendering helpers so
// handlers report failures in one line.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger over the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// Internal logs the error under op and writes a 500 response.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, op string, err error) {
	e.log.Error(op,
		zap.String("path", r.URL.Path),
		zap.Error(err))
	RenderInternal(w, r)
}
