// ABOUTME: Environment overrides and ${VAR} expansion for settings
// ABOUTME: FLY_LOG_LEVEL and FLY_THEME win over files; unset vars expand to empty

package config

import (
	"os"
	"regexp"
)

const (
	EnvLogLevel = "FLY_LOG_LEVEL"
	EnvTheme    = "FLY_THEME"
)

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ApplyEnv applies FLY_* overrides, then expands ${VAR} references in
// string fields.
func ApplyEnv(s *Settings) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		s.LogLevel = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		s.Theme = v
	}

	s.Theme = expandEnv(s.Theme)
	for _, vc := range []*VariantConfig{&s.Tooltip, &s.Dropdown} {
		for _, p := range []*string{vc.Position, vc.BaseClass, vc.HideClass, vc.ExtraClass} {
			if p != nil {
				*p = expandEnv(*p)
			}
		}
	}
}

// expandEnv replaces ${VAR} with os.Getenv(VAR).
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}
