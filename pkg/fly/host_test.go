// ABOUTME: In-memory fake host (elements, document, window) for overlay tests
// ABOUTME: Clicks bubble element-then-document; panels report size only as outer size

package fly

import (
	"testing"

	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
	"github.com/mauromedda/fly-go/pkg/fly/loop"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

type fakeElement struct {
	em      *event.Emitter
	rect    geom.Rect
	sized   bool
	outerW  float64
	outerH  float64
	classes map[string]bool
	content string
	pos     place.Point
	moves   int
	removed int
	parent  *fakeElement
	roles   PanelClasses
}

func newAnchor(r geom.Rect) *fakeElement {
	return &fakeElement{em: event.NewEmitter(), rect: r, sized: true, classes: map[string]bool{}}
}

func (f *fakeElement) Events() *event.Emitter { return f.em }

func (f *fakeElement) BoundingBox() (geom.Rect, bool) {
	if f.sized {
		return f.rect, true
	}
	return geom.Rect{Top: f.pos.Top, Left: f.pos.Left}, false
}

func (f *fakeElement) OuterWidth() float64  { return f.outerW }
func (f *fakeElement) OuterHeight() float64 { return f.outerH }

func (f *fakeElement) AddClass(names ...string) {
	for _, n := range names {
		f.classes[n] = true
	}
}

func (f *fakeElement) RemoveClass(names ...string) {
	for _, n := range names {
		delete(f.classes, n)
	}
}

func (f *fakeElement) HasClass(name string) bool { return f.classes[name] }

func (f *fakeElement) SetContent(c string) { f.content = c }

func (f *fakeElement) MoveTo(p place.Point) {
	f.pos = p
	f.moves++
}

func (f *fakeElement) Contains(other event.Target) bool {
	c, ok := other.(*fakeElement)
	if !ok {
		return false
	}
	for p := c.parent; p != nil; p = p.parent {
		if p == f {
			return true
		}
	}
	return false
}

func (f *fakeElement) Remove() { f.removed++ }

type fakeDoc struct {
	em     *event.Emitter
	win    *event.Emitter
	scroll geom.Offset
	panelW float64
	panelH float64
	panels []*fakeElement
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{em: event.NewEmitter(), win: event.NewEmitter(), panelW: 120, panelH: 40}
}

func (d *fakeDoc) Events() *event.Emitter { return d.em }
func (d *fakeDoc) Window() event.Target   { return d.win }
func (d *fakeDoc) Scroll() geom.Offset    { return d.scroll }

func (d *fakeDoc) CreatePanel(roles PanelClasses) Element {
	p := &fakeElement{em: event.NewEmitter(), outerW: d.panelW, outerH: d.panelH, classes: map[string]bool{}, roles: roles}
	d.panels = append(d.panels, p)
	return p
}

func (d *fakeDoc) click(el *fakeElement) {
	el.em.Emit(event.Event{Type: event.Click, Target: el})
	d.em.Emit(event.Event{Type: event.Click, Target: el})
}

func (d *fakeDoc) key(k string) {
	d.em.Emit(event.Event{Type: event.KeyDown, Key: k})
}

func (d *fakeDoc) resize() {
	d.win.Emit(event.Event{Type: event.Resize})
}

type harness struct {
	doc     *fakeDoc
	sched   *loop.Manual
	factory *Factory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	doc := newFakeDoc()
	sched := loop.NewManual()
	return &harness{doc: doc, sched: sched, factory: NewFactory(doc, sched)}
}

func (h *harness) create(t *testing.T, v *Variant, anchor *fakeElement, opts ...Option) *Overlay {
	t.Helper()
	o, err := h.factory.Create(v, anchor, opts...)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return o
}

// countEvents counts instance events named name.
func countEvents(o *Overlay, name string) *int {
	n := new(int)
	o.On(name, func(event.Event) { *n++ })
	return n
}

func panelOf(t *testing.T, o *Overlay) *fakeElement {
	t.Helper()
	p, ok := o.Root().(*fakeElement)
	if !ok {
		t.Fatalf("Root() = %T, want *fakeElement", o.Root())
	}
	return p
}

var testAnchorRect = geom.Rect{Top: 100, Left: 50, Width: 80, Height: 20}

// plainVariant is a trigger-less variant for state machine tests.
func plainVariant() *Variant {
	return &Variant{
		Name:     "plain",
		Defaults: []Option{WithBaseClass("fly-plain"), WithHideClass("fly-plain_hidden"), WithArrowSize(10)},
	}
}
