//go:build !tinygo

package hal

import (
	"sync"
	"time"
)

type hostTime struct {
	ch chan uint64

	mu  sync.Mutex
	seq uint64

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024)}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step converts elapsed wall time into 1 ms ticks.
func (t *hostTime) step() {
	now := time.Now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	const tickDur = time.Millisecond
	ticks := uint64(t.acc / tickDur)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % tickDur
	t.stepN(ticks)
}

// stepN publishes only the latest sequence number; the kernel jumps straight to it.
func (t *hostTime) stepN(n uint64) {
	t.mu.Lock()
	t.seq += n
	seq := t.seq
	t.mu.Unlock()
	select {
	case t.ch <- seq:
	default:
	}
}

func (t *hostTime) now() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.seq
}
