// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package fesync

import "code.hybscloud.com/atomix"

// word32 is a tag or state word. Every store that publishes data written
// before it is a release; every load that admits a reader is an acquire.
type word32 struct {
	v atomix.Uint32
}

func (w *word32) load() uint32 { return w.v.LoadAcquire() }

func (w *word32) store(x uint32) { w.v.StoreRelease(x) }

// cas is acquire-release.
func (w *word32) cas(old, new uint32) bool { return w.v.CompareAndSwap(old, new) }

// word64 is a counter whose updates order the work done before them.
type word64 struct {
	v atomix.Int64
}

func (w *word64) load() int64 { return w.v.LoadAcquire() }

func (w *word64) store(x int64) { w.v.StoreRelease(x) }

// add is acquire-release and returns the new value.
func (w *word64) add(d int64) int64 { return w.v.Add(d) }
