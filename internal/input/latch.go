// Package input latches directional movement input delivered by a host input source.
package input

import (
	"sync/atomic"

	"playermove/internal/geom"
)

// Latch holds the most recent movement vector. Writers and the tick reader may
// live on different goroutines; the last write before a read wins.
type Latch struct {
	value  atomic.Pointer[geom.Vec2]
	writes atomic.Uint64
}

func NewLatch() *Latch {
	l := &Latch{}
	l.value.Store(&geom.Vec2{})
	return l
}

// Set replaces the latched vector verbatim. Zero is a valid value.
func (l *Latch) Set(v geom.Vec2) {
	l.value.Store(&v)
	l.writes.Add(1)
}

// Load returns the latched vector.
func (l *Latch) Load() geom.Vec2 {
	if p := l.value.Load(); p != nil {
		return *p
	}
	return geom.Zero
}

// Writes counts Set calls since creation.
func (l *Latch) Writes() uint64 {
	return l.writes.Load()
}
