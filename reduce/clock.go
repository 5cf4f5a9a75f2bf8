// Package reduce implements the L² variant of LLL lattice basis reduction
// (spec.md §4.3), mutating a lattice.Basis in place under a wall-clock
// timeout and an early-exit predicate.
package reduce

import "time"

// Clock abstracts the host wall clock (spec.md §6 "Host clock"), returning
// seconds since an arbitrary epoch. Injecting it, rather than calling
// time.Now directly, is what makes P4 (determinism) and P8 (timeout
// monotonicity) testable against a scripted trace — the same
// dependency-injection shape gonum uses for pluggable PRNG sources, applied
// here to time (see DESIGN.md).
type Clock interface {
	Now() float64
}

// SystemClock reports real wall-clock time.
type SystemClock struct{}

// Now returns seconds since the Unix epoch.
func (SystemClock) Now() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}

// ScriptedClock replays a fixed sequence of readings, repeating the final
// one once exhausted. It lets tests exercise a deterministic "clock trace"
// (spec.md P4, P8) without depending on real elapsed time.
type ScriptedClock struct {
	ticks []float64
	next  int
}

// NewScriptedClock returns a ScriptedClock that yields ticks in order.
func NewScriptedClock(ticks ...float64) *ScriptedClock {
	if len(ticks) == 0 {
		ticks = []float64{0}
	}
	return &ScriptedClock{ticks: ticks}
}

// Now returns the next scripted reading, holding at the last one once the
// script is exhausted.
func (c *ScriptedClock) Now() float64 {
	v := c.ticks[c.next]
	if c.next < len(c.ticks)-1 {
		c.next++
	}
	return v
}
