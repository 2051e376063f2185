// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

// SingleVar is a write-then-broadcast value. Readers only ever wait for
// full; writers may overwrite a full variable any number of times.
//
// The signal cell is never consumed by readers: WaitFull reads it
// without emptying it, so one signal releases every waiter.
//
// The zero value must be initialized with Init before use.
type SingleVar[T any] struct {
	isFull     Cell[bool]
	signalFull Cell[bool]

	held  bool
	state word32
	value T
}

// NewSingleVar returns an initialized, empty SingleVar.
func NewSingleVar[T any]() *SingleVar[T] {
	s := &SingleVar[T]{}
	s.Init()
	return s
}

// Init marks the variable empty and unlocked and clears the signal.
func (s *SingleVar[T]) Init() {
	s.isFull.Put(false)
	s.signalFull.Purge()
	s.state.store(0)
}

// Destroy releases the variable. There is nothing to release.
func (s *SingleVar[T]) Destroy() {}

// Lock acquires the internal lock and records the visible state.
func (s *SingleVar[T]) Lock() {
	s.held = s.isFull.Take()
}

// Unlock releases the internal lock without changing the visible state.
func (s *SingleVar[T]) Unlock() {
	s.isFull.Put(s.held)
}

// WaitFull blocks until the variable has been marked full.
// The lock is not held on return.
func (s *SingleVar[T]) WaitFull() {
	for !s.IsFull(false) {
		s.signalFull.WaitFull()
	}
}

// MarkAndSignalFull publishes the full state, releasing the lock, then
// arms the signal. The caller must hold the lock.
func (s *SingleVar[T]) MarkAndSignalFull() {
	s.held = true
	s.state.store(1)
	s.isFull.Put(true)
	s.signalFull.Put(true)
}

// IsFull reports the visible state without waiting for the lock.
// With fastPath it reads the state mirror; otherwise it peeks the value
// held in isFull.
func (s *SingleVar[T]) IsFull(fastPath bool) bool {
	if fastPath {
		return s.state.load() != 0
	}
	full, _ := s.isFull.Peek()
	return full
}

// Value returns the payload. The caller must hold the lock.
func (s *SingleVar[T]) Value() T {
	return s.value
}

// SetValue replaces the payload. The caller must hold the lock.
func (s *SingleVar[T]) SetValue(v T) {
	s.value = v
}

// WriteEF stores v if the variable has never been written.
// Returns ErrSingleFull, leaving the value unchanged, otherwise.
func (s *SingleVar[T]) WriteEF(v T) error {
	s.Lock()
	if s.held {
		s.Unlock()
		return ErrSingleFull
	}
	s.value = v
	s.MarkAndSignalFull()
	return nil
}

// WriteXF stores v and marks the variable full, overwriting any
// previous value.
func (s *SingleVar[T]) WriteXF(v T) {
	s.Lock()
	s.value = v
	s.MarkAndSignalFull()
}

// ReadFF waits until full and returns the current value.
func (s *SingleVar[T]) ReadFF() T {
	s.WaitFull()
	return s.ReadXX()
}

// ReadXX returns the current value regardless of state.
func (s *SingleVar[T]) ReadXX() T {
	s.Lock()
	v := s.value
	s.Unlock()
	return v
}
