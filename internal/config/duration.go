// ABOUTME: Delay values in config: bare numbers are milliseconds, strings are Go durations
// ABOUTME: Decodes the same way from YAML and TOML so "300" never means 300ns

package config

import (
	"fmt"
	"math"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a config delay. `delay: 300` and `delay: "300ms"` are equal.
type Duration time.Duration

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	switch node.ShortTag() {
	case "!!int", "!!float":
		var ms float64
		if err := node.Decode(&ms); err != nil {
			return err
		}
		return d.setMillis(ms)
	case "!!str":
		return d.parse(node.Value)
	}
	return fmt.Errorf("line %d: delay must be milliseconds or a duration string, got %s", node.Line, node.ShortTag())
}

// UnmarshalTOML implements toml.Unmarshaler.
func (d *Duration) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		return d.setMillis(float64(v))
	case float64:
		return d.setMillis(v)
	case string:
		return d.parse(v)
	}
	return fmt.Errorf("delay must be milliseconds or a duration string, got %T", v)
}

func (d *Duration) setMillis(ms float64) error {
	if math.IsNaN(ms) || math.IsInf(ms, 0) {
		return fmt.Errorf("invalid delay %v", ms)
	}
	*d = Duration(ms * float64(time.Millisecond))
	return nil
}

func (d *Duration) parse(s string) error {
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parsing delay: %w", err)
	}
	*d = Duration(v)
	return nil
}
