package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/LFroesch/rover/internal/command"
	"github.com/LFroesch/rover/internal/search"
)

func TestLoadDefaultConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", filepath.Join(tempDir, "home"))

	cfg := Load("")

	if cfg == nil {
		t.Fatal("Load() returned nil")
	}
	if cfg.Keys == nil || cfg.Sequences == nil {
		t.Error("maps not initialized")
	}
	if cfg.Strategy() != search.Prefix {
		t.Errorf("default strategy = %s, want prefix", cfg.Strategy())
	}
	if cfg.StatusDuration() != 4*time.Second {
		t.Errorf("default status duration = %v", cfg.StatusDuration())
	}

	path, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.json")

	cfg := &Config{
		Editor:        "nvim",
		Pager:         "bat",
		SearchMode:    "fuzzy",
		StatusSeconds: 10,
		Keys:          map[string][]string{"remove": {"delete"}},
		Sequences:     map[string][]string{"R": {"top", "rename"}},
	}
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded := Load(path)

	if loaded.Editor != "nvim" {
		t.Errorf("Editor mismatch: got %s", loaded.Editor)
	}
	if loaded.EditorCommand() != "nvim" {
		t.Errorf("EditorCommand = %s", loaded.EditorCommand())
	}
	if loaded.PagerCommand() != "bat" {
		t.Errorf("PagerCommand = %s", loaded.PagerCommand())
	}
	if loaded.Strategy() != search.Fuzzy {
		t.Errorf("Strategy = %s", loaded.Strategy())
	}
	if loaded.StatusSeconds != 10 {
		t.Errorf("StatusSeconds = %d", loaded.StatusSeconds)
	}
	if len(loaded.Keys["remove"]) != 1 {
		t.Errorf("Keys not loaded: %v", loaded.Keys)
	}
}

func TestLoadClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.json")
	data := `{"status_seconds": 500, "search_mode": "regex"}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)

	if cfg.StatusSeconds != maxStatusSeconds {
		t.Errorf("StatusSeconds = %d, want %d", cfg.StatusSeconds, maxStatusSeconds)
	}
	if cfg.SearchMode != string(search.Prefix) {
		t.Errorf("SearchMode = %s, want prefix", cfg.SearchMode)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rover.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.StatusSeconds != defaultStatusSeconds {
		t.Errorf("expected defaults on parse error, got %+v", cfg)
	}
}

func TestCommandFallbacks(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("PAGER", "most")
	t.Setenv("SHELL", "")

	cfg := defaultConfig()
	if got := cfg.EditorCommand(); got != "vi" {
		t.Errorf("EditorCommand = %s, want vi", got)
	}
	if got := cfg.PagerCommand(); got != "most" {
		t.Errorf("PagerCommand = %s, want most", got)
	}
	if got := cfg.ShellCommand(); got != "sh" {
		t.Errorf("ShellCommand = %s, want sh", got)
	}
}

func TestKeyMap(t *testing.T) {
	cfg := defaultConfig()
	cfg.Keys["remove"] = []string{"delete"}
	cfg.Keys["bogus"] = []string{"z"}
	cfg.Sequences["R"] = []string{"top", "rename"}
	cfg.Sequences["Q"] = []string{"rename", "top"}

	km, errs := cfg.KeyMap()

	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if got, ok := km.Resolve("delete"); !ok || got != (command.ModifySelected{Modification: command.Remove}) {
		t.Errorf("delete resolved to %v, %v", got, ok)
	}
	got, ok := km.Resolve("R")
	if !ok {
		t.Fatal("sequence not bound")
	}
	if _, isSeq := got.(command.Sequence); !isSeq {
		t.Errorf("R resolved to %T", got)
	}
}
