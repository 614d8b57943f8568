package app

import (
	"log/slog"

	"github.com/treykane/typewriter/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// It is pre-configured with the component tag "app". The log level is
// controlled by the TYPEWRITER_LOG_LEVEL environment variable (see the logging
// package for details).
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// simultaneously logs a structured error entry with full context.
//
// The status parameter is displayed verbatim in the UI, while the err and any
// additional key-value attrs are included only in the log entry.
//
// Usage:
//
//	m.setStatusError("Error saving file", err, "path", path)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	m.statusIsError = true
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
