// ABOUTME: Tests for the tooltip variant's hover triggers and display delay
// ABOUTME: Uses the virtual clock to step through the delay timer

package fly

import (
	"testing"
	"time"

	"github.com/mauromedda/fly-go/pkg/fly/event"
)

func hover(a *fakeElement, typ string) {
	a.em.Emit(event.Event{Type: typ, Target: a})
}

func TestTooltip_ShowsAfterDelay(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Tooltip(), anchor, WithText("tip"))

	hover(anchor, event.MouseEnter)
	h.sched.Advance(299 * time.Millisecond)
	if !o.Hidden() {
		t.Fatal("tooltip shown before delay elapsed")
	}

	h.sched.Advance(time.Millisecond)
	if o.Hidden() {
		t.Fatal("tooltip not shown after delay")
	}
	if panelOf(t, o).content != "tip" {
		t.Errorf("content = %q, want %q", panelOf(t, o).content, "tip")
	}
}

func TestTooltip_LeaveBeforeDelayCancels(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Tooltip(), anchor, WithDelay(300*time.Millisecond))
	shows := countEvents(o, event.Show)

	hover(anchor, event.MouseEnter)
	h.sched.Advance(100 * time.Millisecond)
	hover(anchor, event.MouseLeave)
	h.sched.Advance(time.Second)

	if *shows != 0 {
		t.Errorf("show events = %d, want 0", *shows)
	}
	if h.sched.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", h.sched.Pending())
	}
}

func TestTooltip_LeaveHidesVisible(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Tooltip(), anchor, WithDelay(0))

	hover(anchor, event.MouseEnter)
	h.sched.Flush()
	hover(anchor, event.MouseLeave)
	hover(anchor, event.MouseLeave)

	if !o.Hidden() {
		t.Error("mouseleave did not hide the tooltip")
	}
}

func TestTooltip_DestroyClearsDelay(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Tooltip(), anchor)

	hover(anchor, event.MouseEnter)
	o.Destroy()
	h.sched.Advance(time.Second)

	if h.sched.Pending() != 0 {
		t.Errorf("pending timers = %d, want 0", h.sched.Pending())
	}
	if len(h.doc.panels) != 0 {
		t.Error("destroyed tooltip created a panel")
	}
}

func TestTooltip_ReenterRestartsDelay(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	anchor := newAnchor(testAnchorRect)
	o := h.create(t, Tooltip(), anchor)
	shows := countEvents(o, event.Show)

	hover(anchor, event.MouseEnter)
	h.sched.Advance(200 * time.Millisecond)
	hover(anchor, event.MouseEnter)
	h.sched.Advance(200 * time.Millisecond)
	if *shows != 0 {
		t.Fatal("first timer should have been replaced")
	}
	h.sched.Advance(100 * time.Millisecond)
	if *shows != 1 {
		t.Errorf("show events = %d, want 1", *shows)
	}
}
