package core

import (
	"fmt"
	"math"
)

// Sink absorbs a computed result so the compiler cannot prove it unused.
// Benchmark methods call Consume once per independent value, in the order
// the values are computed.
type Sink interface {
	Consume(v float32)
}

// Blackhole is the sink used for timed runs. Each consume is an opaque,
// non-inlined call that folds the value into an accumulator.
// A Blackhole is owned by a single goroutine.
type Blackhole struct {
	acc   uint64
	count uint64
}

// NewBlackhole creates an empty blackhole
func NewBlackhole() *Blackhole {
	return &Blackhole{}
}

// Consume absorbs a single-precision result
//
//go:noinline
func (h *Blackhole) Consume(v float32) {
	h.acc = h.acc*31 ^ uint64(math.Float32bits(v))
	h.count++
}

// Count returns how many values were consumed
func (h *Blackhole) Count() uint64 {
	return h.count
}

// Sum returns the folded accumulator
func (h *Blackhole) Sum() uint64 {
	return h.acc
}

// Reset clears the blackhole
func (h *Blackhole) Reset() {
	h.acc = 0
	h.count = 0
}

// CheckingSink forwards to another sink and remembers the first
// non-finite value it sees. The runner passes every case through one
// before timing so a domain violation aborts the run instead of being
// measured.
type CheckingSink struct {
	next  Sink
	index int
	err   error
}

// NewCheckingSink wraps next; a nil next discards values
func NewCheckingSink(next Sink) *CheckingSink {
	return &CheckingSink{next: next}
}

// Consume implements Sink
func (c *CheckingSink) Consume(v float32) {
	if c.err == nil && (math.IsNaN(float64(v)) || math.IsInf(float64(v), 0)) {
		c.err = fmt.Errorf("%w: value #%d = %v", ErrNonFinite, c.index, v)
	}
	c.index++
	if c.next != nil {
		c.next.Consume(v)
	}
}

// Err returns the first non-finite value error, if any
func (c *CheckingSink) Err() error {
	return c.err
}

// Consumed returns the number of values seen
func (c *CheckingSink) Consumed() int {
	return c.index
}
