// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package fesync provides tasking synchronization built on a single
// primitive: a memory cell carrying an atomic Empty/Full tag.
//
// # Architecture
//
//   - Cell: [Cell.Take] waits for Full and leaves Empty, [Cell.Put] stores and marks Full, [Cell.Peek] never waits.
//   - Locks: [Mutex] is a payload-less Cell whose Full state means unlocked.
//   - Sync variables: [SyncVar] pairs a state cell, used as its own lock, with one-shot wake tokens for full and empty.
//   - Single variables: [SingleVar] only waits for full and broadcasts with a non-consuming token.
//   - Tasks: [Tasking] owns a [Gate] counting fire-and-forget [Tasking.Begin] tasks; [Tasking.Exit] waits on it.
//   - Serial context: each [Task] carries a lazily allocated serial flag that makes Begin run inline.
//
// # Waiting
//
// Blocking operations wait with adaptive backoff ([code.hybscloud.com/iox.Backoff]).
// Non-blocking variants return [code.hybscloud.com/iox.ErrWouldBlock]. No
// wait has a timeout, and waiters are not served in any particular order.
//
// # Fatal errors
//
// [Tasking.Cancel] and [Tasking.Join] are unsupported: Begin tasks have no
// handle. Both log the error and terminate the process.
//
// # Example
//
//	tk := fesync.Init()
//	v := fesync.NewSyncVar[int]()
//	tk.Begin(tk.Main(), func(*fesync.Task) { v.WriteEF(42) }, false)
//	fmt.Println(v.ReadFE()) // 42
//	tk.Exit()
package fesync
