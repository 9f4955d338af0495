package task

import (
	"strings"
	"testing"
	"time"
)

var refDay = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in   string
		want Difficulty
	}{
		{"easy", Easy},
		{"E", Easy},
		{"medium", Medium},
		{"med", Medium},
		{" m ", Medium},
		{"HARD", Hard},
		{"h", Hard},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if err != nil {
			t.Errorf("ParseDifficulty(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDifficulty_Invalid(t *testing.T) {
	_, err := ParseDifficulty("brutal")
	if err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
	if !strings.Contains(err.Error(), "easy") {
		t.Errorf("error should list valid values, got %q", err)
	}
}

func TestParseDue(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"today", "2026-03-10"},
		{"tomorrow", "2026-03-11"},
		{"next-week", "2026-03-17"},
		{"+3", "2026-03-13"},
		{"+3d", "2026-03-13"},
		{"+0d", "2026-03-10"},
		{"2026-12-01", "2026-12-01"},
	}
	for _, tt := range tests {
		got, err := ParseDue(tt.in, refDay)
		if err != nil {
			t.Errorf("ParseDue(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseDue_Invalid(t *testing.T) {
	for _, in := range []string{"2026-02-30", "03/10/2026", "+x", "+-2d", "someday"} {
		if _, err := ParseDue(in, refDay); err == nil {
			t.Errorf("ParseDue(%q) should fail", in)
		}
	}
}

func TestDifficultyLabelAndIcon(t *testing.T) {
	for _, d := range Difficulties {
		if d.Label() == "?" {
			t.Errorf("%q has no label", d)
		}
		if d.Icon() == "⚪" {
			t.Errorf("%q has no icon", d)
		}
	}
	if Difficulty("x").Label() != "?" {
		t.Error("unknown difficulty should render as ?")
	}
}
