// SPDX-License-Identifier: Apache-2.0

// Package log sets up the engine's default structured logger. There is
// no CLI here to own main()'s setup, so an embedding application calls
// New once at startup and passes the *slog.Logger to the one place that
// logs, the authorizer (via authorizer.WithLogger); authorizer.New calls
// New itself when no logger is given.
package log

import (
	"log/slog"
	"os"
	"strings"

	"github.com/policycore/engine/constants"
)

// New builds a JSON slog.Logger with its level read from
// constants.EnvLogLevel (DEBUG/INFO/WARN/ERROR, default INFO).
func New() *slog.Logger {
	var level slog.LevelVar
	switch strings.ToUpper(os.Getenv(constants.EnvLogLevel)) {
	case "DEBUG":
		level.Set(slog.LevelDebug)
	case "INFO":
		level.Set(slog.LevelInfo)
	case "WARN":
		level.Set(slog.LevelWarn)
	case "ERROR":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     &level,
	}).WithAttrs([]slog.Attr{slog.String("component", "policycore")})

	return slog.New(handler)
}
