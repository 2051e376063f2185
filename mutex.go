// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// Mutex is a Cell with no payload. Its tag is the lock state:
// Full means unlocked, Empty means locked.
//
// The zero value is locked. Call Init, or use NewMutex.
type Mutex struct {
	cell Cell[struct{}]
}

// NewMutex returns an unlocked Mutex.
func NewMutex() *Mutex {
	m := &Mutex{}
	m.Init()
	return m
}

// Init marks the mutex Full (unlocked).
func (m *Mutex) Init() {
	m.cell.Put(struct{}{})
}

// Lock takes the cell, waiting until it is Full.
func (m *Mutex) Lock() {
	m.cell.Take()
}

// TryLock takes the cell if it is Full. Reports whether the lock was acquired.
func (m *Mutex) TryLock() bool {
	_, err := m.cell.TryTake()
	return err == nil
}

// Unlock marks the mutex Full regardless of its previous state.
// Unlocking an unlocked mutex is not detected; callers must pair
// Lock and Unlock.
func (m *Mutex) Unlock() {
	m.Init()
}
