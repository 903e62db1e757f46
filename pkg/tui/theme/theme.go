// ABOUTME: Semantic color theme types for overlay rendering: Color, Palette, Theme
// ABOUTME: Colors are lipgloss color specs; Palette maps anchor and panel roles to colors

package theme

import "github.com/charmbracelet/lipgloss"

// Color is a lipgloss color spec: an ANSI index ("245") or a hex value ("#ff8800").
type Color struct {
	spec string
}

// NewColor creates a Color from a lipgloss color spec.
func NewColor(spec string) Color {
	return Color{spec: spec}
}

// Spec returns the raw color spec.
func (c Color) Spec() string {
	return c.spec
}

// Style returns a lipgloss style with this color as foreground.
// An empty color yields an unstyled style.
func (c Color) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.spec == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(c.spec))
}

// Apply renders text in this color. Empty colors return text unchanged.
func (c Color) Apply(text string) string {
	if c.spec == "" {
		return text
	}
	return c.Style().Render(text)
}

// Palette holds the colors used to draw anchors and overlay panels.
type Palette struct {
	// Anchors
	Anchor      Color
	AnchorHover Color

	// Tooltip panels
	TooltipText   Color
	TooltipBorder Color

	// Dropdown panels
	DropdownText   Color
	DropdownBorder Color

	Arrow Color
	Muted Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// PanelColors returns the text and border colors for a panel whose base
// class is base. Unknown classes use the tooltip colors.
func (t *Theme) PanelColors(base string) (text, border Color) {
	if base == "fly-dropdown" {
		return t.Palette.DropdownText, t.Palette.DropdownBorder
	}
	return t.Palette.TooltipText, t.Palette.TooltipBorder
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Anchor:      NewColor("252"),
		AnchorHover: NewColor("214"),

		TooltipText:   NewColor("230"),
		TooltipBorder: NewColor("244"),

		DropdownText:   NewColor("255"),
		DropdownBorder: NewColor("117"),

		Arrow: NewColor("244"),
		Muted: NewColor("240"),
	}
}
