// ABOUTME: Tooltip variant: hover shows the panel after a delay, leaving hides it
// ABOUTME: The delay timer is cancelled on mouseleave and on destroy

package fly

import (
	"time"

	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

// TooltipName is the registry name of the tooltip variant.
const TooltipName = "tooltip"

const delayTimer = "delay"

// Tooltip returns the tooltip variant.
func Tooltip() *Variant {
	return &Variant{
		Name: TooltipName,
		Defaults: []Option{
			WithBaseClass("fly-tooltip"),
			WithHideClass("fly-tooltip_hidden"),
			WithExtraClass(""),
			WithPosition(place.Default),
			WithArrowSize(10),
			WithDelay(300 * time.Millisecond),
		},
		Actions: Actions{
			event.MouseEnter: Method("showDelayed"),
			event.MouseLeave: Method("hideNow"),
		},
		Methods: map[string]MethodFunc{
			"showDelayed": func(o *Overlay, _ event.Event) {
				o.After(delayTimer, o.opts.Delay, o.Show)
			},
			"hideNow": func(o *Overlay, _ event.Event) {
				o.Cancel(delayTimer)
				o.Hide()
			},
		},
	}
}
