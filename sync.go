// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// SyncVar is a value with full/empty semantics built from three cells.
//
// The tag of isFull is the internal lock (Full = unlocked). The value
// stored in isFull is the externally visible full/empty state. The two
// signal cells are one-shot wake tokens: a waiter that finds the wrong
// state releases the lock and takes the matching token, then re-checks.
//
// The zero value must be initialized with Init before use.
type SyncVar[T any] struct {
	isFull      Cell[bool]
	signalFull  Cell[bool]
	signalEmpty Cell[bool]

	// held is the state read by Lock, restored by Unlock.
	// Only the lock holder touches it.
	held bool
	// state mirrors the visible full bit for the fast-path IsFull.
	state word32
	value T
}

// NewSyncVar returns an initialized, empty SyncVar.
func NewSyncVar[T any]() *SyncVar[T] {
	s := &SyncVar[T]{}
	s.Init()
	return s
}

// Init marks the variable empty and unlocked and clears both signals.
func (s *SyncVar[T]) Init() {
	s.isFull.Put(false)
	s.signalEmpty.Purge()
	s.signalFull.Purge()
	s.state.store(0)
}

// Destroy releases the variable. There is nothing to release.
func (s *SyncVar[T]) Destroy() {}

// Lock acquires the internal lock and records the visible state.
func (s *SyncVar[T]) Lock() {
	s.held = s.isFull.Take()
}

// Unlock releases the internal lock without changing the visible state.
func (s *SyncVar[T]) Unlock() {
	s.isFull.Put(s.held)
}

// WaitFullAndLock returns holding the lock with the variable full.
func (s *SyncVar[T]) WaitFullAndLock() {
	s.Lock()
	for !s.held {
		s.Unlock()
		s.signalFull.Take()
		s.Lock()
	}
}

// WaitEmptyAndLock returns holding the lock with the variable empty.
func (s *SyncVar[T]) WaitEmptyAndLock() {
	s.Lock()
	for s.held {
		s.Unlock()
		s.signalEmpty.Take()
		s.Lock()
	}
}

// MarkAndSignalFull arms the full token, then publishes the full state,
// which also releases the lock. The caller must hold the lock.
func (s *SyncVar[T]) MarkAndSignalFull() {
	s.signalFull.Put(true)
	s.held = true
	s.state.store(1)
	s.isFull.Put(true)
}

// MarkAndSignalEmpty arms the empty token, then publishes the empty
// state, which also releases the lock. The caller must hold the lock.
func (s *SyncVar[T]) MarkAndSignalEmpty() {
	s.signalEmpty.Put(true)
	s.held = false
	s.state.store(0)
	s.isFull.Put(false)
}

// IsFull reports the visible state without waiting for the lock.
// With fastPath it reads the state mirror; otherwise it peeks the value
// held in isFull. Either answer may be stale.
func (s *SyncVar[T]) IsFull(fastPath bool) bool {
	if fastPath {
		return s.state.load() != 0
	}
	full, _ := s.isFull.Peek()
	return full
}

// Value returns the payload. The caller must hold the lock.
func (s *SyncVar[T]) Value() T {
	return s.value
}

// SetValue replaces the payload. The caller must hold the lock.
func (s *SyncVar[T]) SetValue(v T) {
	s.value = v
}

// WriteEF waits until empty, stores v and leaves the variable full.
func (s *SyncVar[T]) WriteEF(v T) {
	s.WaitEmptyAndLock()
	s.value = v
	s.MarkAndSignalFull()
}

// ReadFE waits until full, reads the value and leaves the variable empty.
func (s *SyncVar[T]) ReadFE() T {
	s.WaitFullAndLock()
	v := s.value
	s.MarkAndSignalEmpty()
	return v
}

// ReadFF waits until full and reads the value, leaving it full.
func (s *SyncVar[T]) ReadFF() T {
	s.WaitFullAndLock()
	v := s.value
	s.Unlock()
	return v
}

// ReadXX reads the value regardless of state.
func (s *SyncVar[T]) ReadXX() T {
	s.Lock()
	v := s.value
	s.Unlock()
	return v
}

// WriteXF stores v regardless of state and leaves the variable full.
func (s *SyncVar[T]) WriteXF(v T) {
	s.Lock()
	s.value = v
	s.MarkAndSignalFull()
}

// Reset stores the zero value and leaves the variable empty.
func (s *SyncVar[T]) Reset() {
	s.Lock()
	var zero T
	s.value = zero
	s.MarkAndSignalEmpty()
}
