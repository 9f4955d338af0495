package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the top-level planr configuration.
type Config struct {
	User    UserConfig    `toml:"user"`
	Planner PlannerConfig `toml:"planner"`
	Log     LogConfig     `toml:"log"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// PlannerConfig overrides the planning engine's limits.
// A nil field means "use the engine default".
type PlannerConfig struct {
	DailyBudget *int   `toml:"daily_budget,omitempty"` // minutes available per day
	SlotCap     *int   `toml:"slot_cap,omitempty"`     // longest single block, minutes
	MaxSlots    *int   `toml:"max_slots,omitempty"`
	TopN        *int   `toml:"top_n,omitempty"` // size of the prioritized list
	Mode        string `toml:"mode,omitempty"`  // planner or section
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `toml:"level,omitempty"`
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	dataDir := envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
	stateDir := envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))

	appConfig := filepath.Join(configDir, "planr")
	appData := filepath.Join(dataDir, "planr")

	return Paths{
		ConfigDir:  appConfig,
		DataDir:    appData,
		StateDir:   filepath.Join(stateDir, "planr"),
		ConfigFile: filepath.Join(appConfig, "config.toml"),
		DBFile:     filepath.Join(appData, "planr.db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir, p.StateDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	paths := GetPaths()
	cfg := defaultConfig()

	data, err := os.ReadFile(paths.ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if a config file has been written.
func Initialized() bool {
	_, err := os.Stat(GetPaths().ConfigFile)
	return err == nil
}

// IntPtr returns a pointer to an int value.
func IntPtr(v int) *int {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		Planner: PlannerConfig{Mode: ModePlanner},
		Log:     LogConfig{Level: "warn"},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
