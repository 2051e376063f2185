// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// ThreadID identifies a task. IDs are assigned from a per-runtime
// monotonic counter; the main task is 0.
type ThreadID = uint64

// Task is the context of one running task. Begin hands a fresh Task to
// every concurrently started function, and the function passes it on
// to any Begin it issues.
//
// A Task belongs to the goroutine running it and must not be shared.
type Task struct {
	tk     *Tasking
	id     ThreadID
	serial *bool
}

// ID returns the task's thread ID.
func (t *Task) ID() ThreadID {
	return t.id
}

// Tasking returns the runtime the task belongs to.
func (t *Task) Tasking() *Tasking {
	return t.tk
}

// newTask allocates the context for a task about to start.
func (tk *Tasking) newTask() *Task {
	return &Task{tk: tk, id: tk.ids.Add(1)}
}
