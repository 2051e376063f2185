// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

import (
	"errors"
	"log/slog"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"

	"code.hybscloud.com/fesync/internal/log"
)

// EnvCores overrides the core count used for thread limits.
const EnvCores = "FESYNC_CORES"

// MaxCores is the largest core count for which MaxThreadsLimit fits in
// an int32. Larger counts are clamped to it.
const MaxCores = math.MaxInt32 / 104

// config is the resolved Init configuration.
type config struct {
	logger *slog.Logger
	cores  int
	exit   func(code int)
}

// Option configures Init.
type Option func(*config)

// WithLogger sets the logger for runtime diagnostics.
// The default is built from FESYNC_LOG_LEVEL and FESYNC_LOG_FORMAT.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCores sets the core count used by MaxThreads and MaxThreadsLimit.
// Values below one are ignored; values above MaxCores are clamped.
func WithCores(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.cores = min(n, MaxCores)
		}
	}
}

// WithExitFunc replaces os.Exit as the process-terminating step of a
// fatal error. If f returns, the fatal error still panics.
func WithExitFunc(f func(code int)) Option {
	return func(c *config) {
		if f != nil {
			c.exit = f
		}
	}
}

func defaultConfig() config {
	return config{
		logger: log.NewWithCurrentConfig(),
		cores:  coresFromEnv(),
		exit:   os.Exit,
	}
}

func coresFromEnv() int {
	if s := os.Getenv(EnvCores); s != "" {
		n, err := strconv.Atoi(s)
		if err == nil && n > 0 {
			return min(n, MaxCores)
		}
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(s, "-") {
			return MaxCores
		}
	}
	return min(runtime.NumCPU(), MaxCores)
}
