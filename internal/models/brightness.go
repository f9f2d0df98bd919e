package models

import (
	"fmt"
	"strconv"
)

// StepMode selects the slider granularity
type StepMode string

const (
	// StepUnit moves one provider unit at a time
	StepUnit StepMode = "unit"
	// StepPercent moves roughly one percent of the range at a time
	StepPercent StepMode = "percent"
)

// Valid returns true for a known step mode
func (m StepMode) Valid() bool {
	return m == StepUnit || m == StepPercent
}

// State mirrors the provider's brightness. It is a value type; every
// change produces a new State.
type State struct {
	// Absolute brightness level in [0, Max]
	Current int
	// Provider-reported upper bound, always > 0
	Max int
	// Slider granularity in provider units
	Step int
	// Mode used to derive Step from Max
	Mode StepMode
}

// NewState builds a state, clamping current into [0, max]
func NewState(current, max int, mode StepMode) State {
	s := State{Max: max, Mode: mode}
	s.Step = StepFor(max, mode)
	s.Current = s.clamp(current)
	return s
}

// StepFor returns the slider step for a maximum level
func StepFor(max int, mode StepMode) int {
	if mode == StepPercent {
		if step := max / 100; step > 1 {
			return step
		}
	}
	return 1
}

// Percentage returns Current as a percentage of Max
func (s State) Percentage() float64 {
	if s.Max <= 0 {
		return 0
	}
	return float64(s.Current) / float64(s.Max) * 100
}

// WithLevel returns a copy at the given level, clamped into range
func (s State) WithLevel(level int) State {
	s.Current = s.clamp(level)
	return s
}

// WithMax returns a copy with a refreshed maximum. The level is
// re-clamped and the step recomputed.
func (s State) WithMax(max int) State {
	return NewState(s.Current, max, s.Mode)
}

// AtMax returns true when the level cannot increase
func (s State) AtMax() bool {
	return s.Current >= s.Max
}

// AtMin returns true when the level cannot decrease
func (s State) AtMin() bool {
	return s.Current <= 0
}

func (s State) clamp(level int) int {
	if level < 0 {
		return 0
	}
	if level > s.Max {
		return s.Max
	}
	return level
}

// FormatPercent renders a percentage with a fixed number of decimals,
// e.g. "25%" for precision 0 or "25.00%" for precision 2
func FormatPercent(pct float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(pct, 'f', precision, 64) + "%"
}

func (s State) String() string {
	return fmt.Sprintf("%d/%d", s.Current, s.Max)
}
