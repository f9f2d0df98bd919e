package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider reads and writes backlight brightness in the provider's own
// absolute units. It is the source of truth; callers only mirror it.
type Provider interface {
	// Current returns the current brightness level
	Current(ctx context.Context) (int, error)
	// Max returns the highest level the provider accepts
	Max(ctx context.Context) (int, error)
	// Set applies an absolute brightness level
	Set(ctx context.Context, level int) error
}

var (
	// ErrUnavailable means the provider could not be run or exited non-zero
	ErrUnavailable = errors.New("brightness provider unavailable")
	// ErrMalformedOutput means the provider answered with something that is
	// not a usable decimal integer
	ErrMalformedOutput = errors.New("malformed provider output")
)

// Op names a provider operation
type Op string

const (
	OpCurrent Op = "get"
	OpMax     Op = "max"
	OpSet     Op = "set"
)

// Error describes a failed provider operation
type Error struct {
	Op      Op
	Command string
	// Stderr holds whatever the provider wrote to stderr, if anything
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Command, e.Op, e.Err)
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}
