// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// Serial reports whether work begun by this task runs inline.
// A task that never set the flag is not serial.
func (t *Task) Serial() bool {
	if t.serial == nil {
		return false
	}
	return *t.serial
}

// SetSerial sets the serial flag, allocating its storage on first use.
// Failure to allocate is fatal.
func (t *Task) SetSerial(state bool) {
	if t.serial == nil {
		p := t.tk.newSerial()
		if p == nil {
			t.tk.fatal(ErrOutOfMemory, "thread", t.id)
		}
		t.serial = p
	}
	*t.serial = state
}
