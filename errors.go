// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync

import "errors"

var (
	// ErrUnsupported is raised, fatally, by Cancel and Join. Begin tasks
	// have no handle and cannot be cancelled or joined.
	ErrUnsupported = errors.New("fesync: operation not supported on fire-and-forget tasks")

	// ErrOutOfMemory is raised, fatally, when serial state cannot be allocated.
	ErrOutOfMemory = errors.New("fesync: out of memory while creating serial state")

	// ErrSingleFull is returned by SingleVar.WriteEF when the variable is
	// already full.
	ErrSingleFull = errors.New("fesync: single variable is already full")
)
