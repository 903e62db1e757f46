// ABOUTME: Built-in overlay variants sized for terminal cells
// ABOUTME: Arrows take one cell instead of the pixel-scale default

package tui

import "github.com/mauromedda/fly-go/pkg/fly"

// CellArrowSize is the arrow gap in cells between an anchor and its panel.
const CellArrowSize = 1

// Variants returns the tooltip and dropdown variants with cell-sized arrows
// and no extra defaults otherwise.
func Variants() []*fly.Variant {
	vs := []*fly.Variant{fly.Tooltip(), fly.Dropdown()}
	for _, v := range vs {
		v.Defaults = append(v.Defaults, fly.WithArrowSize(CellArrowSize))
	}
	return vs
}
