package provider

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// DefaultCommand is the brightness utility used when none is configured
const DefaultCommand = "brightnessctl"

// CommandConfig describes how to invoke the external brightness utility
type CommandConfig struct {
	// Path or name of the executable
	Command string
	// Arguments for reading the current level
	GetArgs []string
	// Arguments for reading the maximum level
	MaxArgs []string
	// Arguments for setting a level; the level is appended as the last argument
	SetArgs []string
	// Per-invocation timeout, zero means none
	Timeout time.Duration
}

// DefaultCommandConfig returns the brightnessctl short-form invocation
func DefaultCommandConfig() CommandConfig {
	return CommandConfig{
		Command: DefaultCommand,
		GetArgs: []string{"g"},
		MaxArgs: []string{"m"},
		SetArgs: []string{"s"},
	}
}

// Command is a Provider backed by an external command-line utility
type Command struct {
	cfg    CommandConfig
	logger *slog.Logger
}

// NewCommand creates a subprocess-backed provider
func NewCommand(cfg CommandConfig, logger *slog.Logger) *Command {
	if cfg.Command == "" {
		cfg.Command = DefaultCommand
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Command{cfg: cfg, logger: logger}
}

// Current returns the level reported by the get invocation
func (c *Command) Current(ctx context.Context) (int, error) {
	return c.query(ctx, OpCurrent, c.cfg.GetArgs)
}

// Max returns the level reported by the max invocation
func (c *Command) Max(ctx context.Context) (int, error) {
	level, err := c.query(ctx, OpMax, c.cfg.MaxArgs)
	if err != nil {
		return 0, err
	}
	if level <= 0 {
		return 0, &Error{
			Op:      OpMax,
			Command: c.cfg.Command,
			Err:     fmt.Errorf("%w: max level %d", ErrMalformedOutput, level),
		}
	}
	return level, nil
}

// Set applies the level; stdout is ignored
func (c *Command) Set(ctx context.Context, level int) error {
	args := append(append([]string{}, c.cfg.SetArgs...), strconv.Itoa(level))
	_, err := c.run(ctx, OpSet, args)
	return err
}

func (c *Command) query(ctx context.Context, op Op, args []string) (int, error) {
	out, err := c.run(ctx, op, args)
	if err != nil {
		return 0, err
	}
	return parseLevel(c.cfg.Command, op, out)
}

// run executes the utility and returns its stdout
func (c *Command) run(ctx context.Context, op Op, args []string) ([]byte, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.cfg.Command, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	c.logger.Debug("provider call",
		"op", string(op),
		"command", c.cfg.Command,
		"args", args,
		"duration", time.Since(start),
		"error", err,
	)
	if err != nil {
		return nil, &Error{
			Op:      op,
			Command: c.cfg.Command,
			Stderr:  stderr.String(),
			Err:     fmt.Errorf("%w: %w", ErrUnavailable, err),
		}
	}
	return stdout.Bytes(), nil
}

// parseLevel parses a single decimal integer, ignoring surrounding whitespace
func parseLevel(command string, op Op, out []byte) (int, error) {
	s := strings.TrimSpace(string(out))
	level, err := strconv.Atoi(s)
	if err != nil || level < 0 {
		return 0, &Error{
			Op:      op,
			Command: command,
			Err:     fmt.Errorf("%w: %q", ErrMalformedOutput, s),
		}
	}
	return level, nil
}

// IsNotFound reports whether err came from a missing executable
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound)
}
