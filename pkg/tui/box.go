// ABOUTME: Box is the terminal host element: a labelled anchor or an overlay panel
// ABOUTME: Panels leave their size unset and report it via OuterWidth/OuterHeight

package tui

import (
	"slices"
	"strings"

	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

// Kind distinguishes anchors from panels.
type Kind int

const (
	KindAnchor Kind = iota
	KindPanel
)

// Box is a node on a Screen. Positions are in document cells.
type Box struct {
	screen  *Screen
	kind    Kind
	em      *event.Emitter
	label   string
	content string
	x, y    float64
	classes []string
	removed bool

	// Panel class roles; the hide class takes the box out of rendering
	// and hit-testing, the base class prefixes the modifier classes.
	baseClass string
	hideClass string
}

func newBox(s *Screen, kind Kind) *Box {
	return &Box{screen: s, kind: kind, em: event.NewEmitter()}
}

// Events implements event.Target.
func (b *Box) Events() *event.Emitter { return b.em }

// Kind returns whether b is an anchor or a panel.
func (b *Box) Kind() Kind { return b.kind }

// Label returns the anchor text.
func (b *Box) Label() string { return b.label }

// Content returns the panel text.
func (b *Box) Content() string { return b.content }

// Position returns the document coordinates of the top-left cell.
func (b *Box) Position() (x, y float64) { return b.x, b.y }

// BoundingBox implements geom.Boxer. Anchors report their size; panels
// only report position and leave sizing to OuterWidth/OuterHeight.
func (b *Box) BoundingBox() (geom.Rect, bool) {
	scroll := b.screen.Scroll()
	r := geom.Rect{Top: b.y - scroll.Top, Left: b.x - scroll.Left}
	if b.kind == KindPanel {
		return r, false
	}
	r.Width, r.Height = float64(b.width()), float64(b.height())
	return r, true
}

// OuterWidth implements geom.OuterSizer.
func (b *Box) OuterWidth() float64 { return float64(b.width()) }

// OuterHeight implements geom.OuterSizer.
func (b *Box) OuterHeight() float64 { return float64(b.height()) }

func (b *Box) width() int {
	if b.kind == KindAnchor {
		return textWidth(b.label) + 2
	}
	w := 0
	for _, line := range b.lines() {
		w = max(w, textWidth(line))
	}
	// border plus one cell of padding on each side
	return w + 4
}

func (b *Box) height() int {
	if b.kind == KindAnchor {
		return 1
	}
	return len(b.lines()) + 2
}

func (b *Box) lines() []string {
	return strings.Split(b.content, "\n")
}

// AddClass adds class names, ignoring ones already present.
func (b *Box) AddClass(names ...string) {
	for _, n := range names {
		if n != "" && !b.HasClass(n) {
			b.classes = append(b.classes, n)
		}
	}
}

// RemoveClass removes class names.
func (b *Box) RemoveClass(names ...string) {
	b.classes = slices.DeleteFunc(b.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// HasClass reports whether the box carries name.
func (b *Box) HasClass(name string) bool {
	return slices.Contains(b.classes, name)
}

// Classes returns the classes in insertion order.
func (b *Box) Classes() []string {
	return slices.Clone(b.classes)
}

// SetContent replaces the panel text.
func (b *Box) SetContent(content string) {
	b.content = content
}

// MoveTo places the box at document coordinates.
func (b *Box) MoveTo(p place.Point) {
	b.x, b.y = p.Left, p.Top
}

// Contains reports whether other is a strict descendant. Boxes hold flat
// text, so nothing nests inside one.
func (b *Box) Contains(event.Target) bool {
	return false
}

// Remove detaches the box from its screen.
func (b *Box) Remove() {
	if b.removed {
		return
	}
	b.removed = true
	b.screen.detach(b)
}

// Visible reports whether the box is attached and does not carry its
// panel hide class.
func (b *Box) Visible() bool {
	if b.removed {
		return false
	}
	return b.hideClass == "" || !b.HasClass(b.hideClass)
}

// side returns the placement side encoded in the panel's modifier classes.
// Without a base class there are no modifier classes to read.
func (b *Box) side() (place.Side, bool) {
	if b.baseClass == "" {
		return "", false
	}
	for _, s := range []place.Side{place.Bottom, place.Top, place.Left, place.Right} {
		if b.HasClass(b.baseClass + "_" + string(s)) {
			return s, true
		}
	}
	return "", false
}

// arrow returns the arrow alignment encoded in the panel's modifier classes.
func (b *Box) arrow() place.Arrow {
	if b.baseClass != "" {
		prefix := b.baseClass + "_arrow-"
		for _, c := range b.classes {
			if a, ok := strings.CutPrefix(c, prefix); ok {
				return place.Arrow(a)
			}
		}
	}
	return place.ArrowCenter
}

// viewRect returns the box in integer viewport cells.
func (b *Box) viewRect() (x, y, w, h int) {
	r := geom.Measure(b)
	return roundCell(r.Left), roundCell(r.Top), roundCell(r.Width), roundCell(r.Height)
}
