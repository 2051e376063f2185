// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package fesync_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/fesync"
)

func TestSyncVarStartsEmpty(t *testing.T) {
	v := fesync.NewSyncVar[int]()
	assert.False(t, v.IsFull(true))
	assert.False(t, v.IsFull(false))
	assert.Equal(t, 0, v.ReadXX())
	v.Destroy()
}

func TestSyncVarWriteRead(t *testing.T) {
	v := fesync.NewSyncVar[string]()
	v.WriteEF("x")
	assert.True(t, v.IsFull(true))
	assert.True(t, v.IsFull(false))

	assert.Equal(t, "x", v.ReadFF())
	assert.True(t, v.IsFull(false), "ReadFF must leave the variable full")

	assert.Equal(t, "x", v.ReadFE())
	assert.False(t, v.IsFull(true))
	assert.False(t, v.IsFull(false))
}

func TestSyncVarWriteXFOverwrites(t *testing.T) {
	v := fesync.NewSyncVar[int]()
	v.WriteXF(1)
	v.WriteXF(2)
	assert.Equal(t, 2, v.ReadFE())
}

func TestSyncVarReset(t *testing.T) {
	v := fesync.NewSyncVar[int]()
	v.WriteEF(5)
	v.Reset()
	assert.False(t, v.IsFull(false))
	assert.Equal(t, 0, v.ReadXX())
}

func TestSyncVarUnlockKeepsState(t *testing.T) {
	v := fesync.NewSyncVar[int]()
	v.WriteEF(1)

	v.Lock()
	v.SetValue(2)
	v.Unlock()
	assert.True(t, v.IsFull(false))
	assert.Equal(t, 2, v.ReadFE())

	v.Lock()
	v.Unlock()
	assert.False(t, v.IsFull(false))
}

func TestSyncVarReadFEBlocksUntilWrite(t *testing.T) {
	v := fesync.NewSyncVar[int]()
	got := make(chan int, 1)
	done := make(chan struct{})
	go func() {
		got <- v.ReadFE()
		close(done)
	}()
	require.True(t, stillBlocked(done), "ReadFE must wait for full")

	v.WriteEF(42)
	waitDone(t, done, "ReadFE")
	assert.Equal(t, 42, <-got)
}

func TestSyncVarWriteEFBlocksWhileFull(t *testing.T) {
	v := fesync.NewSyncVar[int]()
	v.WriteEF(1)

	done := make(chan struct{})
	go func() {
		v.WriteEF(2)
		close(done)
	}()
	require.True(t, stillBlocked(done), "WriteEF must wait for empty")

	assert.Equal(t, 1, v.ReadFE())
	waitDone(t, done, "WriteEF")
	assert.Equal(t, 2, v.ReadFE())
}

func TestSyncVarAlternation(t *testing.T) {
	const rounds = 2000
	v := fesync.NewSyncVar[int]()
	// trace is appended while holding the variable's lock.
	var trace []bool
	var received []int

	var g errgroup.Group
	g.Go(func() error {
		for i := range rounds {
			v.WaitEmptyAndLock()
			v.SetValue(i)
			trace = append(trace, true)
			v.MarkAndSignalFull()
		}
		return nil
	})
	g.Go(func() error {
		for range rounds {
			v.WaitFullAndLock()
			received = append(received, v.Value())
			trace = append(trace, false)
			v.MarkAndSignalEmpty()
		}
		return nil
	})
	require.NoError(t, g.Wait())

	require.Len(t, trace, 2*rounds)
	for i, full := range trace {
		require.Equal(t, i%2 == 0, full, "transition %d out of order", i)
	}
	require.Len(t, received, rounds)
	for i, n := range received {
		require.Equal(t, i, n)
	}
}

func TestSyncVarManyProducersConsumers(t *testing.T) {
	const (
		producers = 4
		consumers = 4
		perWorker = 500
	)
	v := fesync.NewSyncVar[int]()
	sums := make(chan int, consumers)

	var g errgroup.Group
	for range producers {
		g.Go(func() error {
			for i := 1; i <= perWorker; i++ {
				v.WriteEF(i)
			}
			return nil
		})
	}
	for range consumers {
		g.Go(func() error {
			sum := 0
			for range perWorker * producers / consumers {
				sum += v.ReadFE()
			}
			sums <- sum
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(sums)

	total := 0
	for s := range sums {
		total += s
	}
	assert.Equal(t, producers*perWorker*(perWorker+1)/2, total)
	assert.False(t, v.IsFull(false))
}
