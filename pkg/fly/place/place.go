// ABOUTME: Pure placement math: panel coordinates from anchor, panel, scroll and spec
// ABOUTME: Parses "<side> <arrow>" placement strings with fallback to bottom/center

package place

import (
	"fmt"
	"strings"

	"github.com/mauromedda/fly-go/pkg/fly/geom"
)

// Side is the anchor edge the panel attaches to.
type Side string

const (
	Bottom Side = "bottom"
	Top    Side = "top"
	Left   Side = "left"
	Right  Side = "right"
)

// Arrow is the panel edge the directional arrow is biased toward.
type Arrow string

const (
	ArrowCenter Arrow = "center"
	ArrowTop    Arrow = "top"
	ArrowBottom Arrow = "bottom"
	ArrowLeft   Arrow = "left"
	ArrowRight  Arrow = "right"
)

// Spec is a placement configuration.
type Spec struct {
	Side      Side
	Arrow     Arrow
	ArrowSize float64
}

// Default is the placement used when none is configured.
var Default = Spec{Side: Bottom, Arrow: ArrowCenter}

// Point is a document-relative panel position.
type Point struct {
	Top  float64
	Left float64
}

func (s Side) valid() bool {
	switch s {
	case Bottom, Top, Left, Right:
		return true
	}
	return false
}

func (a Arrow) valid() bool {
	switch a {
	case ArrowCenter, ArrowTop, ArrowBottom, ArrowLeft, ArrowRight:
		return true
	}
	return false
}

// Normalize replaces unknown values with defaults and clamps a negative
// arrow size to zero.
func (s Spec) Normalize() Spec {
	if !s.Side.valid() {
		s.Side = Bottom
	}
	if !s.Arrow.valid() {
		s.Arrow = ArrowCenter
	}
	if s.ArrowSize < 0 {
		s.ArrowSize = 0
	}
	return s
}

// String renders the spec in the "<side> <arrow>" form accepted by Parse.
func (s Spec) String() string {
	s = s.Normalize()
	return string(s.Side) + " " + string(s.Arrow)
}

// Parse reads a "<side> <arrow>" string. Missing or unknown tokens fall
// back to bottom and center; Parse never fails.
func Parse(v string) Spec {
	spec, _ := ParseStrict(v)
	return spec
}

// ParseStrict is Parse that also reports unknown tokens. The returned spec
// is always usable.
func ParseStrict(v string) (Spec, error) {
	fields := strings.Fields(strings.ToLower(v))
	spec := Default
	var bad []string

	if len(fields) > 0 {
		if s := Side(fields[0]); s.valid() {
			spec.Side = s
		} else {
			bad = append(bad, fields[0])
		}
	}
	if len(fields) > 1 {
		if a := Arrow(fields[1]); a.valid() {
			spec.Arrow = a
		} else {
			bad = append(bad, fields[1])
		}
	}
	if len(fields) > 2 {
		bad = append(bad, fields[2:]...)
	}

	if len(bad) > 0 {
		return spec, fmt.Errorf("placement %q: unknown tokens %v", v, bad)
	}
	return spec, nil
}

// Compute returns the panel's document-relative position. No clamping to
// the viewport is performed.
func Compute(anchor, panel geom.Rect, scroll geom.Offset, spec Spec) Point {
	spec = spec.Normalize()
	arr := spec.ArrowSize

	var a Point
	switch spec.Arrow {
	case ArrowTop:
		a.Top = anchor.Height/2 - arr*1.5
	case ArrowLeft:
		a.Left = anchor.Width/2 - arr*1.5
	case ArrowRight:
		a.Left = anchor.Width/2 - panel.Width + arr*1.5
	case ArrowBottom:
		a.Top = anchor.Height/2 - panel.Height + arr*1.5
	default:
		a.Top = (anchor.Height - panel.Height) / 2
		a.Left = (anchor.Width - panel.Width) / 2
	}

	var p Point
	switch spec.Side {
	case Left:
		p.Top = scroll.Top + anchor.Top + a.Top
		p.Left = scroll.Left + anchor.Left - panel.Width - arr
	case Right:
		p.Top = scroll.Top + anchor.Top + a.Top
		p.Left = scroll.Left + anchor.Left + anchor.Width + arr
	case Top:
		p.Top = scroll.Top + anchor.Top - panel.Height - arr
		p.Left = scroll.Left + anchor.Left + a.Left
	default:
		p.Top = scroll.Top + anchor.Top + anchor.Height + arr
		p.Left = scroll.Left + anchor.Left + a.Left
	}
	return p
}

// ModClasses returns the side and arrow modifier classes for a panel with
// the given base class, e.g. "fly-tooltip_bottom" and "fly-tooltip_arrow-center".
func ModClasses(base string, spec Spec) []string {
	spec = spec.Normalize()
	return []string{
		base + "_" + string(spec.Side),
		base + "_arrow-" + string(spec.Arrow),
	}
}
