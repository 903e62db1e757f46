// ABOUTME: Tests for the dropdown variant: click toggle, autohide, resize repositioning
// ABOUTME: Verifies document/window listeners are scoped per instance and torn down

package fly

import (
	"testing"

	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
)

func openDropdown(t *testing.T, h *harness, anchor *fakeElement) *Overlay {
	t.Helper()
	o := h.create(t, Dropdown(), anchor, WithText("menu"))
	h.doc.click(anchor)
	h.sched.Flush()
	if o.Hidden() {
		t.Fatal("click on anchor did not open the dropdown")
	}
	return o
}

func TestDropdown_ClickToggles(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := openDropdown(t, h, anchor)

	h.doc.click(anchor)
	h.sched.Flush()

	if !o.Hidden() {
		t.Error("second click on anchor did not close the dropdown")
	}
}

func TestDropdown_OpeningClickDoesNotAutohide(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Dropdown(), anchor)
	hides := countEvents(o, event.Hide)

	h.doc.click(anchor)
	h.sched.Flush()

	if o.Hidden() || *hides != 0 {
		t.Error("the opening click reached the autohide listener")
	}
	if !o.Bound(h.doc) {
		t.Error("autohide listener not installed after deferral")
	}
}

func TestDropdown_OutsideClickHides(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := openDropdown(t, h, anchor)
	hides := countEvents(o, event.Hide)

	panel := panelOf(t, o)
	child := newAnchor(geom.Rect{})
	child.parent = panel

	h.doc.click(panel)
	h.doc.click(child)
	if *hides != 0 {
		t.Fatalf("click inside panel hid the dropdown (%d hide events)", *hides)
	}

	outside := newAnchor(geom.Rect{Top: 500})
	h.doc.click(outside)
	h.doc.click(outside)

	if *hides != 1 {
		t.Errorf("hide events = %d, want 1", *hides)
	}
	if h.doc.em.Count(event.Click) != 0 {
		t.Error("document click listener survived hide")
	}
}

func TestDropdown_EscapeHides(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	o := openDropdown(t, h, newAnchor(testAnchorRect))
	hides := countEvents(o, event.Hide)

	h.doc.key("a")
	if o.Hidden() {
		t.Fatal("non-escape key hid the dropdown")
	}

	h.doc.key(event.KeyEscape)
	h.doc.key(event.KeyEscape)

	if *hides != 1 {
		t.Errorf("hide events = %d, want 1", *hides)
	}
	if h.doc.em.Count(event.KeyDown) != 0 {
		t.Error("document keydown listener survived hide")
	}
}

func TestDropdown_HideBeforeDeferredInstall(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Dropdown(), anchor)

	o.Show()
	o.Hide()
	h.sched.Flush()

	if o.Bound(h.doc) || h.doc.em.Count(event.Click) != 0 {
		t.Error("autohide installed for a hidden dropdown")
	}
}

func TestDropdown_DestroyWhileVisible(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := openDropdown(t, h, anchor)

	o.Destroy()

	if h.doc.em.Count(event.Click) != 0 || h.doc.em.Count(event.KeyDown) != 0 {
		t.Error("document listeners survived destroy")
	}
	if h.doc.win.Count(event.Resize) != 0 {
		t.Error("window listener survived destroy")
	}
	if anchor.em.Count(event.Click) != 0 {
		t.Error("anchor listener survived destroy")
	}
}

func TestDropdown_ResizeRepositions(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	resolutions := 0
	o := h.create(t, Dropdown(), anchor, WithContent(Computed(func(*Overlay) string {
		resolutions++
		return "menu"
	})))

	h.doc.resize()
	if len(h.doc.panels) != 0 {
		t.Fatal("resize on a never-shown dropdown created a panel")
	}

	h.doc.click(anchor)
	h.sched.Flush()
	panel := panelOf(t, o)
	moves := panel.moves

	anchor.rect.Left = 0
	h.doc.resize()

	if panel.moves != moves+1 {
		t.Errorf("moves = %d, want %d", panel.moves, moves+1)
	}
	if panel.pos.Left != -20 {
		t.Errorf("left = %v, want -20", panel.pos.Left)
	}
	if resolutions != 1 {
		t.Errorf("resize re-rendered content (%d resolutions)", resolutions)
	}

	o.Hide()
	h.doc.resize()
	if panel.moves != moves+1 {
		t.Error("hidden dropdown was repositioned")
	}
}

func TestDropdown_NamespaceIsolation(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	a := h.create(t, Dropdown(), newAnchor(testAnchorRect))
	b := h.create(t, Dropdown(), newAnchor(geom.Rect{Top: 10, Left: 10, Width: 20, Height: 2}))
	a.Show()
	b.Show()
	h.sched.Flush()
	pa, pb := panelOf(t, a), panelOf(t, b)
	ma, mb := pa.moves, pb.moves

	h.doc.resize()
	if pa.moves != ma+1 || pb.moves != mb+1 {
		t.Errorf("resize moves = %d/%d, want one each", pa.moves-ma, pb.moves-mb)
	}

	a.Destroy()
	if h.doc.win.Count(event.Resize) != 1 {
		t.Errorf("window resize listeners = %d, want 1", h.doc.win.Count(event.Resize))
	}

	h.doc.resize()
	if pb.moves != mb+2 {
		t.Error("surviving dropdown lost its resize listener")
	}
}
