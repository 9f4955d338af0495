package ui

import (
	"testing"
)

func TestGreet(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"", "🗓 Hey there!"},
		{"Sam", "🗓 Hey Sam!"},
	}

	for _, tt := range tests {
		got := Greet(tt.name)
		if got != tt.expected {
			t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.expected)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this title is long", 8, "this ti…"},
		{"café au lait", 5, "café…"},
		{"abc", 1, "…"},
		{"abc", 0, "abc"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestIconConstants(t *testing.T) {
	icons := []string{
		IconPlan, IconTask, IconDone, IconOverdue, IconToday, IconFocus,
		IconClock, IconParty, IconWarn, IconError, IconOk, IconArrow, IconDot,
	}
	for i, icon := range icons {
		if icon == "" {
			t.Errorf("Icon at index %d is empty", i)
		}
	}
}

func TestWidthFallback(t *testing.T) {
	// Under `go test` stdout is usually not a terminal.
	if !IsStdoutTTY() && Width() != defaultWidth {
		t.Errorf("expected fallback width %d, got %d", defaultWidth, Width())
	}
}
