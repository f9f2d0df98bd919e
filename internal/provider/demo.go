package provider

import (
	"context"
	"sync"
)

// Demo implements Provider without touching any backlight.
// All state changes are maintained in memory.
type Demo struct {
	current int
	max     int
	sets    []int
	mu      sync.Mutex

	// Fail, when set, is returned from every call
	Fail error
}

// NewDemo creates a demo provider at the given level.
// The level is clamped into [0, max].
func NewDemo(current, max int) *Demo {
	if current > max {
		current = max
	}
	if current < 0 {
		current = 0
	}
	return &Demo{current: current, max: max}
}

// NewDefaultDemo returns a demo provider resembling a typical laptop panel
func NewDefaultDemo() *Demo {
	return NewDemo(128, 255)
}

// Current returns the in-memory level
func (d *Demo) Current(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Fail != nil {
		return 0, &Error{Op: OpCurrent, Command: "demo", Err: d.Fail}
	}
	return d.current, nil
}

// Max returns the in-memory maximum
func (d *Demo) Max(ctx context.Context) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Fail != nil {
		return 0, &Error{Op: OpMax, Command: "demo", Err: d.Fail}
	}
	return d.max, nil
}

// Set stores the level and records the call
func (d *Demo) Set(ctx context.Context, level int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.Fail != nil {
		return &Error{Op: OpSet, Command: "demo", Err: d.Fail}
	}
	d.sets = append(d.sets, level)
	d.current = level
	return nil
}

// SetCalls returns every level passed to Set, oldest first
func (d *Demo) SetCalls() []int {
	d.mu.Lock()
	defer d.mu.Unlock()

	calls := make([]int, len(d.sets))
	copy(calls, d.sets)
	return calls
}
