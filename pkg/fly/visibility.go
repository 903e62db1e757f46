// ABOUTME: Visibility state machine: show/hide/toggle/redraw and content rendering
// ABOUTME: A generation token lets the latest show or hide win over late resolutions

package fly

import (
	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

// State is the visibility state of an overlay.
type State int

const (
	Hidden State = iota
	Rendering
	Visible
)

func (s State) String() string {
	switch s {
	case Rendering:
		return "rendering"
	case Visible:
		return "visible"
	default:
		return "hidden"
	}
}

// State returns the current visibility state.
func (o *Overlay) State() State { return o.state }

// Hidden reports whether the panel is hidden: never created, or carrying
// the hide class.
func (o *Overlay) Hidden() bool {
	return o.root == nil || o.root.HasClass(o.opts.HideClass)
}

// Show displays the panel, resolving content first when RedrawOnShow is
// set or nothing has been rendered yet.
func (o *Overlay) Show() {
	if o.destroyed {
		return
	}
	if !o.opts.RedrawOnShow && o.rendered {
		o.bump()
		o.reveal()
		return
	}

	gen := o.bump()
	o.state = Rendering
	o.opts.Content.Resolve(o, func(content string) {
		if o.stale(gen) {
			return
		}
		o.render(content)
		o.reveal()
	})
}

// ShowContent renders content without resolution and displays the panel.
func (o *Overlay) ShowContent(content string) {
	if o.destroyed {
		return
	}
	o.bump()
	o.render(content)
	o.reveal()
}

// Hide hides the panel. Hiding an already hidden panel emits nothing.
// A pending content resolution is invalidated.
func (o *Overlay) Hide() {
	if o.destroyed {
		return
	}
	if o.state == Rendering && o.opts.StaleGuard {
		o.bump()
		o.state = Hidden
	}
	if o.Hidden() {
		return
	}

	o.Trigger(event.Hide)
	if o.destroyed {
		return
	}
	o.root.AddClass(o.opts.HideClass)
	o.state = Hidden
}

// Toggle flips the panel's visibility.
func (o *Overlay) Toggle() {
	o.ToggleTo(o.Hidden())
}

// ToggleTo shows the panel when show is true and hides it otherwise.
func (o *Overlay) ToggleTo(show bool) {
	if show {
		o.Show()
		return
	}
	o.Hide()
}

// Redraw resolves and renders content regardless of visibility, then calls
// done with the content. The visibility state is unchanged.
func (o *Overlay) Redraw(done func(content string)) {
	if o.destroyed {
		return
	}
	o.opts.Content.Resolve(o, func(content string) {
		if o.destroyed {
			return
		}
		o.render(content)
		if done != nil {
			done(content)
		}
	})
}

// Reposition recomputes and applies the panel position of a visible panel
// without re-rendering.
func (o *Overlay) Reposition() {
	if o.destroyed || o.Hidden() {
		return
	}
	o.root.MoveTo(o.position())
}

func (o *Overlay) bump() uint64 {
	o.gen++
	return o.gen
}

func (o *Overlay) stale(gen uint64) bool {
	if o.destroyed {
		o.logger().Debug("content resolved after destroy, dropped", "ns", o.ns)
		return true
	}
	if o.opts.StaleGuard && gen != o.gen {
		o.logger().Debug("stale content resolution dropped", "ns", o.ns, "gen", gen, "current", o.gen)
		return true
	}
	return false
}

func (o *Overlay) render(content string) {
	o.Root().SetContent(content)
	o.rendered = true
}

func (o *Overlay) reveal() {
	o.Trigger(event.Show)
	if o.destroyed {
		return
	}

	root := o.Root()
	root.MoveTo(o.position())
	if o.opts.BaseClass != "" {
		root.AddClass(place.ModClasses(o.opts.BaseClass, o.placement())...)
	}
	root.RemoveClass(o.opts.HideClass)
	o.state = Visible
}
