// ABOUTME: JSON theme file loading with default fallback
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// jsonPalette is the JSON-friendly representation of a Palette.
type jsonPalette struct {
	Anchor      string `json:"anchor"`
	AnchorHover string `json:"anchor_hover"`

	TooltipText   string `json:"tooltip_text"`
	TooltipBorder string `json:"tooltip_border"`

	DropdownText   string `json:"dropdown_text"`
	DropdownBorder string `json:"dropdown_border"`

	Arrow string `json:"arrow"`
	Muted string `json:"muted"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme.
// Missing palette fields fall back to DefaultPalette values.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	return &Theme{
		Name:    jt.Name,
		Palette: convertPalette(jt.Palette, DefaultPalette()),
	}, nil
}

// Resolve returns the built-in theme called nameOrPath, or loads it as a
// JSON file when no built-in matches.
func Resolve(nameOrPath string) (*Theme, error) {
	if th := Builtin(nameOrPath); th != nil {
		return th, nil
	}
	return LoadFile(nameOrPath)
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	// Fields share names, so map them by reflection.
	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(jsonVal)))
		}
	}

	return p
}
