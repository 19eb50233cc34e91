package odp

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// WarningKind classifies non-fatal problems found while decoding API data.
type WarningKind string

const (
	// WarningMalformedValue is logged when a scalar cannot be parsed (bad date, wrong JSON type).
	WarningMalformedValue WarningKind = "malformed_value"
	// WarningUnknownEnum is logged when an enumerated field holds an unrecognized value.
	WarningUnknownEnum WarningKind = "unknown_enum"
	// WarningDataMismatch is logged when a lookup returns a record for a different identifier.
	WarningDataMismatch WarningKind = "data_mismatch"
)

// WarningKey is the slog attribute key carrying the WarningKind.
const WarningKey = "warning"

var pkgLogger atomic.Pointer[slog.Logger]

// SetLogger sets the logger used for decode warnings. A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	pkgLogger.Store(l)
}

func logger() *slog.Logger {
	if l := pkgLogger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

func warn(kind WarningKind, msg string, args ...any) {
	warnTo(logger(), kind, msg, args...)
}

func warnTo(l *slog.Logger, kind WarningKind, msg string, args ...any) {
	l.Log(context.Background(), slog.LevelWarn, msg, append([]any{slog.String(WarningKey, string(kind))}, args...)...)
}
