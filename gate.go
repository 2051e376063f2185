// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

import "code.hybscloud.com/iox"

// Gate counts outstanding fire-and-forget tasks and lets the exit path
// wait until none remain.
//
// canExit is Empty while at least one task is outstanding. The
// increment or decrement that crosses zero decides, from its own
// return value, who flips the cell.
type Gate struct {
	beginCount word64
	canExit    Cell[bool]
}

// Init resets the gate to no outstanding tasks.
func (g *Gate) Init() {
	g.beginCount.store(0)
	g.canExit.Put(true)
}

// enter registers a task about to start. It must be called before the
// task can run, so the task's own leave is ordered after the purge.
func (g *Gate) enter() {
	if g.beginCount.add(1) == 1 {
		g.canExit.Purge()
	}
}

// leave deregisters a finished task.
func (g *Gate) leave() {
	if g.release() {
		g.open()
	}
}

// release decrements the count and reports whether it reached zero.
// The caller that sees true must open the gate.
func (g *Gate) release() bool {
	return g.beginCount.add(-1) == 0
}

// open publishes canExit. By the time it runs the count may already be
// non-zero again, which Wait accounts for.
func (g *Gate) open() {
	g.canExit.Put(true)
}

// Wait blocks until no task is outstanding. It never consumes the Full
// state, so any number of callers may wait, any number of times.
//
// A decrement to zero can publish Full just after an unrelated spawn
// has taken the count back to one, so Full is re-checked against the
// counter before returning.
func (g *Gate) Wait() {
	var bo iox.Backoff
	for {
		if g.canExit.WaitFull() && g.beginCount.load() == 0 {
			return
		}
		bo.Wait()
	}
}

// Outstanding returns a snapshot of the number of unfinished tasks.
func (g *Gate) Outstanding() int64 {
	return g.beginCount.load()
}
