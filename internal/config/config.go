// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML or TOML files chosen by extension; project values override global ones

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	LogLevel string        `yaml:"log_level,omitempty" toml:"log_level,omitempty"`
	Theme    string        `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Tooltip  VariantConfig `yaml:"tooltip,omitempty" toml:"tooltip,omitempty"`
	Dropdown VariantConfig `yaml:"dropdown,omitempty" toml:"dropdown,omitempty"`

	// Keys maps demo action names to key lists; see internal/keybindings.
	Keys map[string][]string `yaml:"keys,omitempty" toml:"keys,omitempty"`
}

// Load reads and merges the global settings file and the first project file
// found under projectRoot, then applies environment overrides.
// Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := LoadFile(GlobalConfigFile())
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	var project *Settings
	if path := ProjectConfigFile(projectRoot); path != "" {
		project, err = LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	}

	merged := merge(global, project)
	ApplyEnv(merged)
	return merged, nil
}

// LoadFile reads Settings from a .yaml, .yml or .toml file.
// Returns zero Settings alongside the error if the file does not exist.
func LoadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}

	var s Settings
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("parsing %s: unsupported config format %q", path, ext)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-empty project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		result := *global
		return &result
	}

	result := *global
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	result.Tooltip = result.Tooltip.merge(project.Tooltip)
	result.Dropdown = result.Dropdown.merge(project.Dropdown)
	result.Keys = mergeKeys(global.Keys, project.Keys)
	return &result
}

// mergeKeys replaces global bindings per action.
func mergeKeys(global, project map[string][]string) map[string][]string {
	if len(global) == 0 && len(project) == 0 {
		return nil
	}
	out := make(map[string][]string, len(global)+len(project))
	maps.Copy(out, global)
	maps.Copy(out, project)
	return out
}
