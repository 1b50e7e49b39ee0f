//go:build !tinygo

package hal

import "time"

// TickDuration is the host tick period.
const TickDuration = time.Millisecond

// hostTime turns wall-clock time between host steps into a tick stream.
type hostTime struct {
	ch  chan uint64
	seq uint64
	now func() time.Time

	last time.Time
	acc  time.Duration
}

func newHostTime() *hostTime {
	return &hostTime{ch: make(chan uint64, 1024), now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// step emits one tick per elapsed TickDuration since the previous call, or n
// ticks on the first call.
func (t *hostTime) step(n uint64) {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.stepN(n)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / TickDuration)
	if ticks == 0 {
		return
	}
	t.acc %= TickDuration
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for range n {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
