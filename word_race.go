// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package fesync

import "sync/atomic"

// Under the race detector the words go through sync/atomic, which the
// detector models as synchronization. atomix's ordered loads and stores
// are not instrumented, so payload handoff through a Cell would be
// reported as a race even though it is ordered.

type word32 struct {
	v atomic.Uint32
}

func (w *word32) load() uint32 { return w.v.Load() }

func (w *word32) store(x uint32) { w.v.Store(x) }

func (w *word32) cas(old, new uint32) bool { return w.v.CompareAndSwap(old, new) }

type word64 struct {
	v atomic.Int64
}

func (w *word64) load() int64 { return w.v.Load() }

func (w *word64) store(x int64) { w.v.Store(x) }

func (w *word64) add(d int64) int64 { return w.v.Add(d) }
