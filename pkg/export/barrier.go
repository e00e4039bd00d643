package export

import (
	"sync/atomic"
)

// barrier is a counting join over a fixed number of page slots. The goroutine
// that completes the last slot runs finalize; nobody blocks on it.
type barrier struct {
	remaining atomic.Int64
	slots     []atomic.Bool

	finalize func()
}

func newBarrier(n int, finalize func()) *barrier {
	b := &barrier{
		slots:    make([]atomic.Bool, n),
		finalize: finalize,
	}

	b.remaining.Store(int64(n))

	return b
}

// done marks slot i complete. Repeated calls for the same slot are ignored.
func (b *barrier) done(i int) {
	if !b.slots[i].CompareAndSwap(false, true) {
		return
	}

	if b.remaining.Add(-1) == 0 {
		b.finalize()
	}
}

func (b *barrier) pending() int {
	return int(b.remaining.Load())
}
