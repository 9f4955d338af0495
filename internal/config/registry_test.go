package config

import (
	"sort"
	"testing"
)

func TestValidKeyNames_Sorted(t *testing.T) {
	names := ValidKeyNames()
	if len(names) == 0 {
		t.Fatal("expected non-empty key list")
	}
	if !sort.StringsAreSorted(names) {
		t.Fatalf("expected sorted key names, got %v", names)
	}
}

func TestLookupKey_Unknown(t *testing.T) {
	if _, ok := LookupKey("not.a.real.key"); ok {
		t.Fatal("expected unknown key to return false")
	}
}

func TestIntKey_SetGetUnset(t *testing.T) {
	cfg := defaultConfig()
	entry, ok := LookupKey("planner.daily_budget")
	if !ok {
		t.Fatal("planner.daily_budget should be registered")
	}

	if got := entry.Get(cfg); got != "180" {
		t.Fatalf("default should render as 180, got %q", got)
	}
	if err := entry.Set(cfg, "240"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Planner.DailyBudget == nil || *cfg.Planner.DailyBudget != 240 {
		t.Fatalf("expected 240, got %v", cfg.Planner.DailyBudget)
	}
	entry.Unset(cfg)
	if cfg.Planner.DailyBudget != nil {
		t.Fatal("Unset should clear the override")
	}
}

func TestIntKey_RejectsNonPositive(t *testing.T) {
	cfg := defaultConfig()
	entry, _ := LookupKey("planner.max_slots")
	for _, v := range []string{"0", "-3", "abc", ""} {
		if err := entry.Set(cfg, v); err == nil {
			t.Errorf("Set(%q) should fail", v)
		}
	}
	if cfg.Planner.MaxSlots != nil {
		t.Fatal("failed Set must not modify config")
	}
}

func TestModeKey(t *testing.T) {
	cfg := defaultConfig()
	entry, _ := LookupKey("planner.mode")
	if err := entry.Set(cfg, " Section "); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Planner.Mode != ModeSection {
		t.Fatalf("got %q", cfg.Planner.Mode)
	}
	if err := entry.Set(cfg, "fancy"); err == nil {
		t.Fatal("unknown mode should be rejected")
	}
}

func TestLogLevelKey(t *testing.T) {
	cfg := defaultConfig()
	entry, _ := LookupKey("log.level")
	if err := entry.Set(cfg, "DEBUG"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("got %q", cfg.Log.Level)
	}
	if err := entry.Set(cfg, "trace"); err == nil {
		t.Fatal("unknown level should be rejected")
	}
}
