// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"code.hybscloud.com/fesync"
)

// blockWindow is how long a goroutine must stay blocked for a test to
// treat it as waiting.
const blockWindow = 20 * time.Millisecond

// newTasking returns a runtime logging to buf whose fatal path records
// the exit code instead of terminating the test binary.
func newTasking(tb testing.TB, opts ...fesync.Option) (*fesync.Tasking, *bytes.Buffer, *int) {
	tb.Helper()
	var buf bytes.Buffer
	code := -1
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	opts = append([]fesync.Option{
		fesync.WithLogger(logger),
		fesync.WithExitFunc(func(c int) { code = c }),
	}, opts...)
	return fesync.Init(opts...), &buf, &code
}

// stillBlocked reports whether done stays open for blockWindow.
func stillBlocked(done <-chan struct{}) bool {
	select {
	case <-done:
		return false
	case <-time.After(blockWindow):
		return true
	}
}

// waitDone fails the test if done is not closed within a generous bound.
func waitDone(tb testing.TB, done <-chan struct{}, what string) {
	tb.Helper()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		tb.Fatalf("%s did not finish", what)
	}
}
