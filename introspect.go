// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// The Go scheduler owns the goroutines behind Begin, so these counts
// are fixed placeholders rather than measurements.

// NumQueuedTasks always returns 0.
func (tk *Tasking) NumQueuedTasks() uint32 { return 0 }

// NumRunningTasks always returns 1.
func (tk *Tasking) NumRunningTasks() uint32 { return 1 }

// NumBlockedTasks returns -1: blocked tasks are not tracked.
func (tk *Tasking) NumBlockedTasks() int32 { return -1 }

// NumThreads always returns 1.
func (tk *Tasking) NumThreads() uint32 { return 1 }

// NumIdleThreads always returns 0.
func (tk *Tasking) NumIdleThreads() uint32 { return 0 }

// MaxThreads returns the advisory thread count, 100 per core.
func (tk *Tasking) MaxThreads() int32 {
	return int32(tk.cores * 100)
}

// MaxThreadsLimit returns the hard thread limit, 104 per core.
func (tk *Tasking) MaxThreadsLimit() int32 {
	return int32(tk.cores * 104)
}
