package app

import (
	"log/slog"

	"github.com/treykane/cipher-nexus/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// The level comes from CIPHER_NEXUS_LOG_LEVEL and records go to the rotating
// log file, never to the terminal the UI is drawn on.
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// logs the error with any extra slog-style key/value attrs.
//
//	m.setStatusError("Clipboard copy failed", err)
//	m.setStatusError("Remix failed", err, "seq", seq)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
