package seed

import "github.com/decred/slog"

// log is a package-level logger that is disabled by default. The caller
// enables it with UseLogger.
var log = slog.Disabled

// DisableLog disables all library log output.
func DisableLog() {
	log = slog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger slog.Logger) {
	log = logger
}
