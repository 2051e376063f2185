// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package log builds the [slog.Handler] used by the tasking runtime
// from environment configuration.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	JSONFormat = "json"
	TextFormat = "text"
)

// Environment variables read by [NewWithCurrentConfig].
const (
	EnvLevel  = "FESYNC_LOG_LEVEL"
	EnvFormat = "FESYNC_LOG_FORMAT"
)

// NewWithCurrentConfig creates a [slog.Logger] writing to stderr, configured
// by FESYNC_LOG_LEVEL and FESYNC_LOG_FORMAT.
func NewWithCurrentConfig() *slog.Logger {
	h := CreateHandler(os.Stderr, os.Getenv(EnvLevel), os.Getenv(EnvFormat))

	return slog.New(h)
}

// CreateHandler creates a [slog.Handler] by strings.
func CreateHandler(w io.Writer, logLevel, logFormat string) slog.Handler {
	opts := &slog.HandlerOptions{Level: GetLevel(logLevel)}

	switch strings.ToLower(logFormat) {
	case JSONFormat:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// GetLevel maps a level name to a [slog.Level]. Unknown names are Warn:
// the runtime only logs diagnostics worth seeing by default.
func GetLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "fatal", "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info":
		return slog.LevelInfo
	case "debug", "trace":
		return slog.LevelDebug
	default:
		return slog.LevelWarn
	}
}
