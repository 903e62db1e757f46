// ABOUTME: Screen is the terminal host document: boxes, scroll, input dispatch, rendering
// ABOUTME: Mouse and key input are hit-tested and dispatched as overlay events

package tui

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/fly-go/pkg/fly"
	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
	"github.com/mauromedda/fly-go/pkg/fly/place"
	"github.com/mauromedda/fly-go/pkg/tui/theme"
)

// Screen is a terminal-sized document. It is not safe for concurrent use;
// drive it from a single event loop.
type Screen struct {
	width, height int
	scroll        geom.Offset
	em, win       *event.Emitter
	boxes         []*Box
	hovered       *Box
	theme         *theme.Theme
}

var _ fly.Document = (*Screen)(nil)

// NewScreen creates an empty screen of the given size in cells.
func NewScreen(width, height int) *Screen {
	return &Screen{
		width:  width,
		height: height,
		em:     event.NewEmitter(),
		win:    event.NewEmitter(),
	}
}

// Events implements event.Target for document-level events.
func (s *Screen) Events() *event.Emitter { return s.em }

// Window returns the target that receives resize events.
func (s *Screen) Window() event.Target { return s.win }

// Scroll returns the viewport offset.
func (s *Screen) Scroll() geom.Offset { return s.scroll }

// Size returns the viewport size in cells.
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// SetTheme overrides the global theme for this screen. Nil restores it.
func (s *Screen) SetTheme(t *theme.Theme) { s.theme = t }

// Theme returns the screen's theme, falling back to the global one.
func (s *Screen) Theme() *theme.Theme {
	if s.theme != nil {
		return s.theme
	}
	return theme.Current()
}

// NewAnchor adds a labelled anchor at document cell (x, y).
func (s *Screen) NewAnchor(label string, x, y int) *Box {
	b := newBox(s, KindAnchor)
	b.label = label
	b.x, b.y = float64(x), float64(y)
	s.boxes = append(s.boxes, b)
	return b
}

// CreatePanel implements fly.Document.
func (s *Screen) CreatePanel(roles fly.PanelClasses) fly.Element {
	b := newBox(s, KindPanel)
	b.baseClass, b.hideClass = roles.Base, roles.Hide
	s.boxes = append(s.boxes, b)
	return b
}

// Boxes returns the attached boxes in paint order.
func (s *Screen) Boxes() []*Box {
	return slices.Clone(s.boxes)
}

func (s *Screen) detach(b *Box) {
	s.boxes = slices.DeleteFunc(s.boxes, func(x *Box) bool { return x == b })
	if s.hovered == b {
		s.hovered = nil
	}
}

// HitTest returns the topmost visible box covering viewport cell (x, y).
func (s *Screen) HitTest(x, y int) *Box {
	for i := len(s.boxes) - 1; i >= 0; i-- {
		b := s.boxes[i]
		if !b.Visible() {
			continue
		}
		bx, by, bw, bh := b.viewRect()
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			return b
		}
	}
	return nil
}

// MouseMove updates the hovered box, emitting mouseleave then mouseenter
// when it changes.
func (s *Screen) MouseMove(x, y int) {
	hit := s.HitTest(x, y)
	if hit == s.hovered {
		return
	}
	prev := s.hovered
	s.hovered = hit
	if prev != nil {
		prev.em.Emit(event.Event{Type: event.MouseLeave, Target: prev})
	}
	if hit != nil {
		hit.em.Emit(event.Event{Type: event.MouseEnter, Target: hit})
	}
}

// Click dispatches a click to the box under (x, y), then to the document.
func (s *Screen) Click(x, y int) {
	ev := event.Event{Type: event.Click}
	if hit := s.HitTest(x, y); hit != nil {
		ev.Target = hit
		hit.em.Emit(ev)
	}
	s.em.Emit(ev)
}

// KeyDown dispatches a key press to the document.
func (s *Screen) KeyDown(key string) {
	s.em.Emit(event.Event{Type: event.KeyDown, Key: key})
}

// Resize changes the viewport size and notifies the window.
func (s *Screen) Resize(width, height int) {
	s.width, s.height = width, height
	s.win.Emit(event.Event{Type: event.Resize})
}

// ScrollTo moves the viewport. Positioned panels keep their document
// coordinates.
func (s *Screen) ScrollTo(top, left float64) {
	s.scroll = geom.Offset{Top: top, Left: left}
}

// Render paints the viewport: anchors first, then visible panels with their
// border and arrow.
func (s *Screen) Render() string {
	if s.width <= 0 || s.height <= 0 {
		return ""
	}
	th := s.Theme()
	c := newCanvas(s.width, s.height)
	anchor := c.style(th.Palette.Anchor.Style())
	hover := c.style(th.Palette.AnchorHover.Style().Bold(true))
	arrow := c.style(th.Palette.Arrow.Style())

	for _, b := range s.boxes {
		if b.kind != KindAnchor || !b.Visible() {
			continue
		}
		st := anchor
		if b == s.hovered {
			st = hover
		}
		x, y, _, _ := b.viewRect()
		c.put(x, y, " "+b.label+" ", st)
	}
	for _, b := range s.boxes {
		if b.kind != KindPanel || !b.Visible() {
			continue
		}
		base := ""
		if len(b.classes) > 0 {
			base = b.classes[0]
		}
		text, border := th.PanelColors(base)
		s.paintPanel(c, b, c.style(text.Style()), c.style(border.Style()), arrow)
	}
	return strings.Join(c.lines(), "\n")
}

func (s *Screen) paintPanel(c *canvas, b *Box, text, border, arrow int) {
	x, y, w, h := b.viewRect()
	if w < 2 || h < 2 {
		return
	}
	bd := lipgloss.RoundedBorder()
	inner := w - 2

	c.put(x, y, bd.TopLeft+strings.Repeat(bd.Top, inner)+bd.TopRight, border)
	for i, line := range b.lines() {
		row := y + 1 + i
		c.put(x, row, bd.Left, border)
		c.fill(x+1, row, inner, text)
		c.put(x+2, row, line, text)
		c.put(x+w-1, row, bd.Right, border)
	}
	c.put(x, y+h-1, bd.BottomLeft+strings.Repeat(bd.Bottom, inner)+bd.BottomRight, border)

	if side, ok := b.side(); ok {
		ax, ay, glyph := arrowCell(side, b.arrow(), x, y, w, h)
		c.put(ax, ay, glyph, arrow)
	}
}

// arrowCell returns where the arrow glyph sits: in the gap between the
// panel and its anchor, pointing at the anchor.
func arrowCell(side place.Side, a place.Arrow, x, y, w, h int) (ax, ay int, glyph string) {
	along := func(start, length int, near, far place.Arrow) int {
		switch a {
		case near:
			return start + 1
		case far:
			return start + length - 2
		}
		return start + length/2
	}
	switch side {
	case place.Top:
		return along(x, w, place.ArrowLeft, place.ArrowRight), y + h, "▼"
	case place.Left:
		return x + w, along(y, h, place.ArrowTop, place.ArrowBottom), "▶"
	case place.Right:
		return x - 1, along(y, h, place.ArrowTop, place.ArrowBottom), "◀"
	}
	return along(x, w, place.ArrowLeft, place.ArrowRight), y - 1, "▲"
}

func roundCell(v float64) int {
	return int(math.Round(v))
}
