package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Scoring modes accepted by planner.mode.
const (
	ModePlanner = "planner"
	ModeSection = "section"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeInt    KeyType = "int"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	// Type is the value's data type.
	Type KeyType
	// Desc is a human-readable description shown in `planr config list`.
	Desc string
	// DefaultStr is the string representation of the default value.
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the authoritative registry of all settable config keys.
// Keys use dot-notation matching the TOML section structure.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:  KeyTypeString,
		Desc:  "Display name used in the dashboard greeting",
		get:   func(cfg *Config) string { return cfg.User.Name },
		set:   func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset: func(cfg *Config) { cfg.User.Name = "" },
	},
	"planner.daily_budget": intKey("Minutes available for the daily schedule", "180",
		func(cfg *Config) **int { return &cfg.Planner.DailyBudget }),
	"planner.slot_cap": intKey("Longest single schedule block, in minutes", "90",
		func(cfg *Config) **int { return &cfg.Planner.SlotCap }),
	"planner.max_slots": intKey("Maximum number of blocks in the daily schedule", "6",
		func(cfg *Config) **int { return &cfg.Planner.MaxSlots }),
	"planner.top_n": intKey("Number of tasks in the prioritized list", "5",
		func(cfg *Config) **int { return &cfg.Planner.TopN }),
	"planner.mode": {
		Type:       KeyTypeString,
		Desc:       "Scoring mode: planner (with similarity boost) or section",
		DefaultStr: ModePlanner,
		get:        func(cfg *Config) string { return cfg.Planner.Mode },
		set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != ModePlanner && v != ModeSection {
				return fmt.Errorf("invalid mode %q (use %s or %s)", v, ModePlanner, ModeSection)
			}
			cfg.Planner.Mode = v
			return nil
		},
		unset: func(cfg *Config) { cfg.Planner.Mode = ModePlanner },
	},
	"log.level": {
		Type:       KeyTypeString,
		Desc:       "Diagnostic log level: debug, info, warn, error",
		DefaultStr: "warn",
		get:        func(cfg *Config) string { return cfg.Log.Level },
		set: func(cfg *Config, v string) error {
			v = strings.ToLower(strings.TrimSpace(v))
			switch v {
			case "debug", "info", "warn", "error":
				cfg.Log.Level = v
				return nil
			}
			return fmt.Errorf("invalid log level %q (use debug, info, warn, error)", v)
		},
		unset: func(cfg *Config) { cfg.Log.Level = "warn" },
	},
}

// intKey builds a registry entry for an optional positive integer setting.
func intKey(desc, def string, field func(*Config) **int) *KeyEntry {
	return &KeyEntry{
		Type:       KeyTypeInt,
		Desc:       desc,
		DefaultStr: def,
		get: func(cfg *Config) string {
			if p := *field(cfg); p != nil {
				return strconv.Itoa(*p)
			}
			return def
		},
		set: func(cfg *Config, v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n <= 0 {
				return fmt.Errorf("expected a positive integer, got %q", v)
			}
			*field(cfg) = IntPtr(n)
			return nil
		},
		unset: func(cfg *Config) { *field(cfg) = nil },
	}
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}
