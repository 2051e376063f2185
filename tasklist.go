// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

import "code.hybscloud.com/lfq"

// taskListCapacity bounds the pending entries of a TaskList before Add
// flushes them.
const taskListCapacity = 64

// TaskList collects begin requests from one owner task and starts them
// together. The owner is the only producer and the only consumer of the
// underlying SPSC queue, so a TaskList must not be shared.
type TaskList struct {
	tk    *Tasking
	owner *Task
	q     lfq.SPSC[func(*Task)]
	n     int
}

// NewTaskList returns an empty list owned by owner.
func (tk *Tasking) NewTaskList(owner *Task) *TaskList {
	l := &TaskList{tk: tk, owner: owner}
	l.q.Init(taskListCapacity)
	return l
}

// Add queues fn. A full queue is processed first, so Add never blocks.
func (l *TaskList) Add(fn func(*Task)) {
	for l.q.Enqueue(&fn) != nil {
		l.Process()
	}
	l.n++
}

// Len returns the number of queued entries.
func (l *TaskList) Len() int {
	return l.n
}

// Process begins every queued entry on behalf of the owner.
func (l *TaskList) Process() {
	started := 0
	for {
		fn, err := l.q.Dequeue()
		if err != nil {
			break
		}
		l.n--
		started++
		l.tk.Begin(l.owner, fn, false)
	}
	if started > 0 {
		l.tk.logger.Debug("task list processed", "thread", l.owner.id, "started", started)
	}
}

// Execute runs every entry still queued inline on the owner.
func (l *TaskList) Execute() {
	for {
		fn, err := l.q.Dequeue()
		if err != nil {
			return
		}
		l.n--
		fn(l.owner)
	}
}

// Free begins the entries still queued and releases the list. Queued
// work is never dropped; Exit waits for it like any other begin.
func (l *TaskList) Free() {
	if l.n > 0 {
		l.tk.logger.Debug("task list freed with pending entries", "thread", l.owner.id, "pending", l.n)
	}
	l.Process()
}
