// Package config loads and saves the statusline display preferences. The
// file lives next to the host's own settings under ~/.claude and is JSONC
// so users can annotate it; unknown keys are ignored and missing keys keep
// their defaults.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"dario.cat/mergo"
	"github.com/tidwall/jsonc"

	"github.com/persona-dev/persona/internal/fileio"
)

// Path returns the preferences file location, ~/.claude/persona.jsonc.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".claude", "persona.jsonc"), nil
}

// ThemePath returns the per-color theme override file location.
func ThemePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "persona_theme.yaml")
}

// Load returns the defaults deep-merged with the preferences file. It
// never fails: a missing file yields the defaults, a malformed one is
// logged and otherwise ignored, since rendering must go on regardless.
func Load() Config {
	cfg := DefaultConfig()

	path, err := Path()
	if err != nil {
		slog.Debug("preferences unavailable, using defaults", "error", err)
		return cfg
	}
	m, err := loadJSONC(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Debug("unreadable preferences, using defaults", "path", path, "error", err)
		}
		return cfg
	}
	if err := mergeIntoConfig(&cfg, m); err != nil {
		slog.Debug("merging preferences failed, using defaults", "path", path, "error", err)
		return DefaultConfig()
	}
	return cfg
}

// Save writes the preferences under an advisory lock so concurrent
// `config set` runs do not clobber each other.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling preferences: %w", err)
	}
	data = append(data, '\n')
	return fileio.WithLock(path, fileio.DefaultLockTimeout, func() error {
		return fileio.AtomicWrite(path, data, 0644)
	})
}

// Set updates one preference by its JSON key. Boolean keys take
// true/false; separator and theme take free-form strings.
func (c *Config) Set(key, value string) error {
	switch key {
	case "separator":
		c.Separator = value
		return nil
	case "theme":
		c.Theme = value
		return nil
	}

	field, ok := boolField(c, key)
	if !ok {
		return fmt.Errorf("unknown preference %q (valid: %v)", key, Keys())
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("preference %q wants true or false, got %q", key, value)
	}
	*field = b
	return nil
}

// Keys lists the settable preference keys in stable order.
func Keys() []string {
	keys := []string{"separator", "theme"}
	for key := range boolFields(&Config{}) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func boolField(c *Config, key string) (*bool, bool) {
	f, ok := boolFields(c)[key]
	return f, ok
}

func boolFields(c *Config) map[string]*bool {
	return map[string]*bool{
		"show_personality":      &c.ShowPersonality,
		"show_activity":         &c.ShowActivity,
		"show_current_job":      &c.ShowCurrentJob,
		"show_current_dir":      &c.ShowCurrentDir,
		"show_model":            &c.ShowModel,
		"show_error_indicators": &c.ShowErrorIndicator,
		"show_update":           &c.ShowUpdate,
		"use_icons":             &c.UseIcons,
		"use_colors":            &c.UseColors,
	}
}

// loadJSONC reads a JSONC file and returns it as a map.
func loadJSONC(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	jsonData := jsonc.ToJSON(data)
	var m map[string]any
	if err := json.Unmarshal(jsonData, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}

// mergeIntoConfig marshals the config to a map, deep-merges the source map
// over it, then unmarshals back to the Config struct.
func mergeIntoConfig(cfg *Config, src map[string]any) error {
	cfgBytes, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	var dst map[string]any
	if err := json.Unmarshal(cfgBytes, &dst); err != nil {
		return err
	}
	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return err
	}
	merged, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	return json.Unmarshal(merged, cfg)
}
