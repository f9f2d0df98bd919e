package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/angristan/brighten/internal/controller"
	"github.com/angristan/brighten/internal/models"
	"github.com/angristan/brighten/internal/provider"
)

// newTestApp returns an app whose provider is an in-memory backlight and
// whose config search points at an empty temp directory
func newTestApp(t *testing.T, p provider.Provider) (*app, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	a := newApp()
	a.out = &out
	a.newProvider = func(*app) provider.Provider { return p }
	return a, &out
}

func execute(a *app, args ...string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.out)
	return root.ExecuteContext(context.Background())
}

func TestVersionFlag(t *testing.T) {
	a, out := newTestApp(t, provider.NewDefaultDemo())

	if err := execute(a, "--version"); err != nil {
		t.Fatalf("--version returned error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Errorf("Expected version %s in output, got %q", Version, out.String())
	}
}

func TestInfoPrintsPercentage(t *testing.T) {
	a, out := newTestApp(t, provider.NewDemo(50, 200))

	if err := execute(a, "info"); err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	if got := out.String(); got != "25%\n" {
		t.Errorf("Expected %q, got %q", "25%\n", got)
	}
}

func TestInfoPrecisionFromEnv(t *testing.T) {
	a, out := newTestApp(t, provider.NewDemo(50, 200))
	t.Setenv("BRIGHTEN_UI_PRECISION", "2")

	if err := execute(a, "info"); err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	if got := out.String(); got != "25.00%\n" {
		t.Errorf("Expected %q, got %q", "25.00%\n", got)
	}
}

func TestInfoNoControl(t *testing.T) {
	a, out := newTestApp(t, provider.NewDemo(1, 1))

	if err := execute(a, "info"); err != nil {
		t.Fatalf("info returned error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no output for max 1, got %q", out.String())
	}
}

func TestInfoProviderError(t *testing.T) {
	demo := provider.NewDemo(1, 10)
	demo.Fail = provider.ErrUnavailable
	a, _ := newTestApp(t, demo)

	if err := execute(a, "info"); !errors.Is(err, provider.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}

func TestNoOrUnknownSubcommand(t *testing.T) {
	for _, args := range [][]string{{}, {"frobnicate"}, {"frobnicate", "--demo"}} {
		a, out := newTestApp(t, provider.NewDefaultDemo())

		if err := execute(a, args...); err != nil {
			t.Errorf("args %v: expected no error, got %v", args, err)
		}
		if out.Len() != 0 {
			t.Errorf("args %v: expected no output, got %q", args, out.String())
		}
	}
}

func TestConfigCommand(t *testing.T) {
	a, out := newTestApp(t, provider.NewDefaultDemo())

	dir := t.TempDir()
	path := filepath.Join(dir, "brighten.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  theme: lavender\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if err := execute(a, "config", "--config", path); err != nil {
		t.Fatalf("config returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"# " + path, "command: brightnessctl", "theme: lavender", "width: 200"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output:\n%s", want, got)
		}
	}
}

func TestInvalidConfigFails(t *testing.T) {
	a, _ := newTestApp(t, provider.NewDefaultDemo())

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ui:\n  step: huge\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if err := execute(a, "info", "--config", path); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestDefaultProviderDemoFlag(t *testing.T) {
	a, _ := newTestApp(t, nil)
	a.demo = true
	if err := a.setup(); err != nil {
		t.Fatalf("setup returned error: %v", err)
	}

	if _, ok := defaultProvider(a).(*provider.Demo); !ok {
		t.Error("Expected demo provider with --demo")
	}

	a.demo = false
	if _, ok := defaultProvider(a).(*provider.Command); !ok {
		t.Error("Expected command provider without --demo")
	}
}

func TestRunUsesWindowRunner(t *testing.T) {
	a, _ := newTestApp(t, provider.NewDemo(128, 255))

	var gotSize models.Size
	var gotState models.State
	a.windowRunner = func(ctx context.Context, ctrl *controller.Controller, state models.State, size models.Size, logger *slog.Logger) error {
		gotSize, gotState = size, state
		return nil
	}

	if err := execute(a, "run"); err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if gotSize != (models.Size{Width: 200, Height: 50}) {
		t.Errorf("Expected 200x50 window, got %+v", gotSize)
	}
	if gotState.Current != 128 || gotState.Max != 255 {
		t.Errorf("Expected initial state 128/255, got %s", gotState)
	}
}

func TestRunFailsWhenProviderUnavailable(t *testing.T) {
	demo := provider.NewDefaultDemo()
	demo.Fail = provider.ErrUnavailable
	a, _ := newTestApp(t, demo)
	a.windowRunner = func(context.Context, *controller.Controller, models.State, models.Size, *slog.Logger) error {
		t.Error("Window should not open when the provider is unavailable")
		return nil
	}

	if err := execute(a, "run"); !errors.Is(err, provider.ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
}
