// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

import (
	"log/slog"

	"code.hybscloud.com/atomix"
)

// Tasking is the runtime owning the completion gate, the thread ID
// counter and the main task. Create one with Init at process start and
// call Exit before the process returns.
type Tasking struct {
	gate Gate
	ids  atomix.Uint64
	main Task

	logger    *slog.Logger
	cores     int
	exit      func(code int)
	newSerial func() *bool
}

// Init creates a runtime with only the main task running.
func Init(opts ...Option) *Tasking {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	tk := &Tasking{
		logger:    c.logger,
		cores:     c.cores,
		exit:      c.exit,
		newSerial: func() *bool { return new(bool) },
	}
	tk.main = Task{tk: tk}
	tk.gate.Init()
	tk.logger.Debug("tasking initialized", "cores", tk.cores)
	return tk
}

// Main returns the context of the task that called Init.
func (tk *Tasking) Main() *Task {
	return &tk.main
}

// Exit blocks until every task started by Begin has finished.
// It blocks forever if one never does.
func (tk *Tasking) Exit() {
	tk.logger.Debug("waiting for outstanding tasks", "outstanding", tk.gate.Outstanding())
	tk.gate.Wait()
	tk.logger.Debug("tasking exit")
}

// Begin starts fn as a fire-and-forget task on behalf of parent.
//
// If parent is serial and ignoreSerial is false, fn runs inline on
// parent before Begin returns and the gate is not touched. Otherwise fn
// runs concurrently with a fresh Task and Exit waits for it. No handle
// is returned: the task cannot be joined.
func (tk *Tasking) Begin(parent *Task, fn func(*Task), ignoreSerial bool) {
	if parent == nil {
		panic("fesync: Begin with nil parent task")
	}
	if !ignoreSerial && parent.Serial() {
		fn(parent)
		return
	}
	tk.gate.enter()
	child := tk.newTask()
	go func() {
		defer tk.gate.leave()
		fn(child)
	}()
}

// Outstanding returns a snapshot of the number of unfinished Begin tasks.
func (tk *Tasking) Outstanding() int64 {
	return tk.gate.Outstanding()
}

// Cancel is not supported. It terminates the process.
func (tk *Tasking) Cancel(id ThreadID) {
	tk.fatal(ErrUnsupported, "op", "cancel", "thread", id)
}

// Join is not supported. It terminates the process.
func (tk *Tasking) Join(id ThreadID) {
	tk.fatal(ErrUnsupported, "op", "join", "thread", id)
}

// fatal logs err and terminates the process. It never returns.
func (tk *Tasking) fatal(err error, args ...any) {
	tk.logger.Error(err.Error(), args...)
	tk.exit(1)
	panic(err)
}
