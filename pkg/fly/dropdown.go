// ABOUTME: Dropdown variant: click toggles, resize repositions, outside click or Esc hides
// ABOUTME: Autohide listeners live on the document only while the panel is shown

package fly

import (
	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

// DropdownName is the registry name of the dropdown variant.
const DropdownName = "dropdown"

const autohideTimer = "autohide"

// Dropdown returns the dropdown variant.
func Dropdown() *Variant {
	return &Variant{
		Name: DropdownName,
		Defaults: []Option{
			WithBaseClass("fly-dropdown"),
			WithHideClass("fly-dropdown_hidden"),
			WithExtraClass(""),
			WithPosition(place.Default),
			WithArrowSize(10),
		},
		Actions: Actions{
			event.Click: Method("toggle"),
		},
		Init: initDropdown,
	}
}

func initDropdown(o *Overlay) {
	doc := o.Document()
	o.Bind(doc.Window(), Actions{event.Resize: Method("reposition")})

	// The install is deferred so the click that opened the panel does not
	// reach the document listener.
	o.On(event.Show, func(event.Event) {
		o.After(autohideTimer, 0, func() {
			if o.Hidden() {
				return
			}
			o.Bind(doc, Actions{
				event.Click:   Func(autohide),
				event.KeyDown: Func(autohide),
			})
		})
	})
	o.On(event.Hide, func(event.Event) {
		o.Cancel(autohideTimer)
		o.Unbind(doc)
	})
}

func autohide(o *Overlay, ev event.Event) {
	switch ev.Type {
	case event.KeyDown:
		if ev.Key == event.KeyEscape {
			o.Hide()
		}
	case event.Click:
		root := o.Root()
		if root == nil {
			return
		}
		if ev.Target != root && !root.Contains(ev.Target) {
			o.Hide()
		}
	}
}
