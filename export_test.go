// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// SetSerialAllocator replaces the serial flag allocator of tk.
func SetSerialAllocator(tk *Tasking, alloc func() *bool) {
	tk.newSerial = alloc
}

// GateEnter registers one task with g.
func GateEnter(g *Gate) { g.enter() }

// GateLeave deregisters one task from g.
func GateLeave(g *Gate) { g.leave() }

// GateRelease performs the decrement half of a leave without opening g.
func GateRelease(g *Gate) bool { return g.release() }

// GateOpen performs the open half of a leave.
func GateOpen(g *Gate) { g.open() }
