// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

import "code.hybscloud.com/iox"

// Tag is the full/empty state carried alongside a Cell value.
type Tag uint32

const (
	// Empty means a Take must wait.
	Empty Tag = iota
	// Full means a value is available.
	Full

	// tagBusy is held for the few instructions an accessor needs to
	// read or write the payload. It is never observable through State.
	tagBusy
)

// String returns "empty" or "full".
func (t Tag) String() string {
	switch t {
	case Empty:
		return "empty"
	case Full:
		return "full"
	}
	return "busy"
}

// Cell is a memory slot with an atomic Empty/Full tag.
// The zero value is Empty and holds the zero V.
//
// The tag word is the only synchronization. Take waits for Full and
// leaves the cell Empty; Put stores and marks Full regardless of the
// previous tag (last write wins). A Cell must not be copied after
// first use.
//
// Every transition out of the busy state is a release store and every
// transition into it an acquire, so the payload written by one accessor
// is visible to the next.
type Cell[V any] struct {
	tag   word32
	value V
}

// acquire moves the tag to tagBusy and returns the state it replaced.
// Another accessor holds tagBusy only while it copies the payload.
func (c *Cell[V]) acquire() Tag {
	var bo iox.Backoff
	for {
		s := Tag(c.tag.load())
		if s != tagBusy && c.tag.cas(uint32(s), uint32(tagBusy)) {
			return s
		}
		bo.Wait()
	}
}

// TryTake reads the value and marks the cell Empty if it is Full.
// Non-blocking: returns iox.ErrWouldBlock if the cell is Empty or
// another accessor is mid-operation.
func (c *Cell[V]) TryTake() (V, error) {
	if !c.tag.cas(uint32(Full), uint32(tagBusy)) {
		var zero V
		return zero, iox.ErrWouldBlock
	}
	v := c.value
	c.tag.store(uint32(Empty))
	return v, nil
}

// Take blocks until the cell is Full, then atomically reads the
// value and marks the cell Empty.
func (c *Cell[V]) Take() V {
	var bo iox.Backoff
	for {
		v, err := c.TryTake()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// TryReadFull reads the value if the cell is Full and leaves it Full.
// Non-blocking: returns iox.ErrWouldBlock otherwise.
func (c *Cell[V]) TryReadFull() (V, error) {
	if !c.tag.cas(uint32(Full), uint32(tagBusy)) {
		var zero V
		return zero, iox.ErrWouldBlock
	}
	v := c.value
	c.tag.store(uint32(Full))
	return v, nil
}

// WaitFull blocks until the cell is Full and returns its value
// without consuming the Full state. Any number of waiters are released
// by a single Put.
func (c *Cell[V]) WaitFull() V {
	var bo iox.Backoff
	for {
		v, err := c.TryReadFull()
		if err == nil {
			return v
		}
		bo.Wait()
	}
}

// Put stores v and marks the cell Full. Never waits on the tag.
func (c *Cell[V]) Put(v V) {
	c.acquire()
	c.value = v
	c.tag.store(uint32(Full))
}

// Purge clears the value and marks the cell Empty.
func (c *Cell[V]) Purge() {
	c.acquire()
	var zero V
	c.value = zero
	c.tag.store(uint32(Empty))
}

// Peek returns a snapshot of the value and tag without changing the tag.
// The result may be stale by the time it is used.
func (c *Cell[V]) Peek() (V, Tag) {
	s := c.acquire()
	v := c.value
	c.tag.store(uint32(s))
	return v, s
}

// State returns the current tag without waiting.
// A cell caught mid-operation reports Empty.
func (c *Cell[V]) State() Tag {
	if Tag(c.tag.load()) == Full {
		return Full
	}
	return Empty
}
