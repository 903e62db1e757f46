// ABOUTME: Per-variant overlay settings and their conversion to instance options
// ABOUTME: Unset fields stay nil so they neither override nor get merged

package config

import (
	"github.com/mauromedda/fly-go/pkg/fly"
)

// VariantConfig holds optional overrides for one overlay variant.
type VariantConfig struct {
	Position     *string        `yaml:"position,omitempty" toml:"position,omitempty"`
	ArrowSize    *float64       `yaml:"arrow_size,omitempty" toml:"arrow_size,omitempty"`
	Delay        *Duration      `yaml:"delay,omitempty" toml:"delay,omitempty"`
	RedrawOnShow *bool          `yaml:"redraw_on_show,omitempty" toml:"redraw_on_show,omitempty"`
	BaseClass    *string        `yaml:"base_class,omitempty" toml:"base_class,omitempty"`
	HideClass    *string        `yaml:"hide_class,omitempty" toml:"hide_class,omitempty"`
	ExtraClass   *string        `yaml:"extra_class,omitempty" toml:"extra_class,omitempty"`
}

// Options converts the set fields into overlay options.
func (v VariantConfig) Options() []fly.Option {
	var opts []fly.Option
	if v.Position != nil {
		opts = append(opts, fly.WithPlacement(*v.Position))
	}
	if v.ArrowSize != nil {
		opts = append(opts, fly.WithArrowSize(*v.ArrowSize))
	}
	if v.Delay != nil {
		opts = append(opts, fly.WithDelay(v.Delay.Std()))
	}
	if v.RedrawOnShow != nil {
		opts = append(opts, fly.WithRedrawOnShow(*v.RedrawOnShow))
	}
	if v.BaseClass != nil {
		opts = append(opts, fly.WithBaseClass(*v.BaseClass))
	}
	if v.HideClass != nil {
		opts = append(opts, fly.WithHideClass(*v.HideClass))
	}
	if v.ExtraClass != nil {
		opts = append(opts, fly.WithExtraClass(*v.ExtraClass))
	}
	return opts
}

// ForVariant returns the section configuring the named variant.
func (s *Settings) ForVariant(name string) VariantConfig {
	switch name {
	case fly.TooltipName:
		return s.Tooltip
	case fly.DropdownName:
		return s.Dropdown
	}
	return VariantConfig{}
}

func (v VariantConfig) merge(over VariantConfig) VariantConfig {
	if over.Position != nil {
		v.Position = over.Position
	}
	if over.ArrowSize != nil {
		v.ArrowSize = over.ArrowSize
	}
	if over.Delay != nil {
		v.Delay = over.Delay
	}
	if over.RedrawOnShow != nil {
		v.RedrawOnShow = over.RedrawOnShow
	}
	if over.BaseClass != nil {
		v.BaseClass = over.BaseClass
	}
	if over.HideClass != nil {
		v.HideClass = over.HideClass
	}
	if over.ExtraClass != nil {
		v.ExtraClass = over.ExtraClass
	}
	return v
}
