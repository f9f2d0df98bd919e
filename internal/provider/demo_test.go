package provider

import (
	"context"
	"errors"
	"testing"
)

func TestDemoProvider(t *testing.T) {
	d := NewDefaultDemo()
	ctx := context.Background()

	current, err := d.Current(ctx)
	if err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	max, _ := d.Max(ctx)
	if current != 128 || max != 255 {
		t.Errorf("Expected 128/255, got %d/%d", current, max)
	}

	if err := d.Set(ctx, 200); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if current, _ = d.Current(ctx); current != 200 {
		t.Errorf("Expected current 200 after Set, got %d", current)
	}

	calls := d.SetCalls()
	if len(calls) != 1 || calls[0] != 200 {
		t.Errorf("Expected one set-call with 200, got %v", calls)
	}
}

func TestDemoProviderClampsInitialLevel(t *testing.T) {
	d := NewDemo(500, 100)
	if current, _ := d.Current(context.Background()); current != 100 {
		t.Errorf("Expected clamped level 100, got %d", current)
	}
}

func TestDemoProviderFail(t *testing.T) {
	d := NewDefaultDemo()
	d.Fail = ErrUnavailable

	if _, err := d.Max(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if err := d.Set(context.Background(), 1); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Expected ErrUnavailable, got %v", err)
	}
	if len(d.SetCalls()) != 0 {
		t.Error("Failed Set should not be recorded")
	}
}
