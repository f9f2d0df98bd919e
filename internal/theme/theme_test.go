package theme

import (
	"image/color"
	"testing"
)

func TestPresetsParse(t *testing.T) {
	for _, id := range IDs {
		p := Lookup(id)
		for _, hex := range []string{p.Background, p.Surface, p.Text, p.Muted, p.Accent} {
			if _, err := RGBA(hex); err != nil {
				t.Errorf("Theme %s has invalid color: %v", id, err)
			}
		}
	}
}

func TestLookupFallback(t *testing.T) {
	if Lookup("neon") != Lookup(Default) {
		t.Error("Expected unknown theme to fall back to the default")
	}
	if ID("neon").Valid() {
		t.Error("Expected unknown theme to be invalid")
	}
}

func TestRGBA(t *testing.T) {
	got, err := RGBA("#C6A0F6")
	if err != nil {
		t.Fatalf("RGBA returned error: %v", err)
	}
	want := color.NRGBA{R: 0xC6, G: 0xA0, B: 0xF6, A: 0xff}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	for _, bad := range []string{"", "#FFF", "#GGGGGG"} {
		if _, err := RGBA(bad); err == nil {
			t.Errorf("Expected error for %q", bad)
		}
	}
}
