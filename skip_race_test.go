// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package fesync_test

import "testing"

// skipRace skips tests that drive a TaskList. Its lfq.SPSC ring orders
// slot handoff with atomix, which the race detector does not
// instrument.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("skip: lfq SPSC ordering is not visible to the race detector")
}
