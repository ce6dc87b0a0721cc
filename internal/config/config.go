package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/logger"
	"github.com/LFroesch/rover/internal/search"
)

const (
	defaultStatusSeconds = 4
	maxStatusSeconds     = 30
)

// Config holds all rover configuration
type Config struct {
	Editor        string              `json:"editor"`      // falls back to $EDITOR, then vi
	Pager         string              `json:"pager"`       // falls back to $PAGER, then less
	Shell         string              `json:"shell"`       // falls back to $SHELL, then sh
	SearchMode    string              `json:"search_mode"` // prefix, fuzzy or glob
	StatusSeconds int                 `json:"status_seconds"`
	Keys          map[string][]string `json:"keys"`      // command name -> keys
	Sequences     map[string][]string `json:"sequences"` // key -> command names
}

func defaultConfig() *Config {
	return &Config{
		SearchMode:    string(search.Prefix),
		StatusSeconds: defaultStatusSeconds,
		Keys:          make(map[string][]string),
		Sequences:     make(map[string][]string),
	}
}

// Load reads config from path, or ~/.config/rover/rover-config.json when
// path is empty. A missing file is created with the defaults.
func Load(path string) *Config {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			logger.Error("Failed to get home directory: %v", err)
			return defaultConfig()
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		cfg := defaultConfig()
		if err := Save(cfg, path); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return cfg
	}

	cfg := defaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", path, err)
		return defaultConfig()
	}

	if cfg.Keys == nil {
		cfg.Keys = make(map[string][]string)
	}
	if cfg.Sequences == nil {
		cfg.Sequences = make(map[string][]string)
	}

	if cfg.StatusSeconds <= 0 {
		cfg.StatusSeconds = defaultStatusSeconds
	} else if cfg.StatusSeconds > maxStatusSeconds {
		logger.Warn("status_seconds too high (%d), using maximum of %d", cfg.StatusSeconds, maxStatusSeconds)
		cfg.StatusSeconds = maxStatusSeconds
	}

	if _, err := search.ParseStrategy(cfg.SearchMode); err != nil {
		logger.Warn("%v, using %s", err, search.Prefix)
		cfg.SearchMode = string(search.Prefix)
	}

	return cfg
}

// Save writes config to path as indented JSON
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", filepath.Dir(path), err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal config: %v", err)
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", path, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "rover", "rover-config.json"), nil
}

// StatusDuration is how long a status message stays visible
func (c *Config) StatusDuration() time.Duration {
	return time.Duration(c.StatusSeconds) * time.Second
}

// Strategy returns the configured search strategy
func (c *Config) Strategy() search.Strategy {
	s, _ := search.ParseStrategy(c.SearchMode)
	return s
}

func (c *Config) EditorCommand() string {
	return firstSet(c.Editor, os.Getenv("EDITOR"), "vi")
}

func (c *Config) PagerCommand() string {
	return firstSet(c.Pager, os.Getenv("PAGER"), "less")
}

func (c *Config) ShellCommand() string {
	return firstSet(c.Shell, os.Getenv("SHELL"), "sh")
}

// KeyMap applies the key overrides and sequences to the default key map.
// Bad entries are skipped and reported; the rest still apply.
func (c *Config) KeyMap() (command.KeyMap, []error) {
	km := command.DefaultKeyMap()
	var errs []error

	for _, name := range sortedKeys(c.Keys) {
		if err := km.Rebind(name, c.Keys[name]); err != nil {
			errs = append(errs, fmt.Errorf("keys: %w", err))
		}
	}
	for _, k := range sortedKeys(c.Sequences) {
		if err := km.AddSequence([]string{k}, c.Sequences[k]); err != nil {
			errs = append(errs, fmt.Errorf("sequences[%s]: %w", k, err))
		}
	}
	return km, errs
}

func firstSet(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func sortedKeys(m map[string][]string) []string {
	return slices.Sorted(maps.Keys(m))
}
