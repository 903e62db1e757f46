// ABOUTME: Overlay options and the base < variant < instance override chain
// ABOUTME: Functional options layered over BaseDefaults; invalid values fall back

package fly

import (
	"time"

	"github.com/mauromedda/fly-go/pkg/fly/place"
)

// Options configures one overlay instance.
type Options struct {
	Content      Content
	RedrawOnShow bool

	BaseClass  string
	HideClass  string
	ExtraClass string

	Position  place.Spec
	ArrowSize float64

	// Delay is the tooltip display delay.
	Delay time.Duration

	// StaleGuard drops content resolutions superseded by a later show,
	// hide or explicit content. Disabling it restores the unguarded
	// behaviour where a late completion always reveals the panel.
	StaleGuard bool
}

// Option modifies Options.
type Option func(*Options)

// BaseDefaults returns the options every variant starts from.
func BaseDefaults() Options {
	return Options{
		Content:      Static(""),
		RedrawOnShow: true,
		BaseClass:    "fly",
		HideClass:    "fly_hidden",
		Position:     place.Default,
		StaleGuard:   true,
	}
}

// WithContent sets the content source.
func WithContent(c Content) Option {
	return func(o *Options) { o.Content = c }
}

// WithText sets static text content.
func WithText(s string) Option {
	return WithContent(Static(s))
}

// WithRedrawOnShow controls whether content is re-resolved on every show.
func WithRedrawOnShow(v bool) Option {
	return func(o *Options) { o.RedrawOnShow = v }
}

// WithBaseClass sets the panel's base class.
func WithBaseClass(c string) Option {
	return func(o *Options) { o.BaseClass = c }
}

// WithHideClass sets the class marking a hidden panel.
func WithHideClass(c string) Option {
	return func(o *Options) { o.HideClass = c }
}

// WithExtraClass sets an additional panel class.
func WithExtraClass(c string) Option {
	return func(o *Options) { o.ExtraClass = c }
}

// WithPosition sets the placement side and arrow alignment.
func WithPosition(spec place.Spec) Option {
	return func(o *Options) { o.Position = spec }
}

// WithPlacement sets the placement from a "<side> <arrow>" string.
func WithPlacement(s string) Option {
	return WithPosition(place.Parse(s))
}

// WithArrowSize sets the arrow size.
func WithArrowSize(n float64) Option {
	return func(o *Options) { o.ArrowSize = n }
}

// WithDelay sets the tooltip display delay.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

// WithStaleGuard toggles suppression of superseded content resolutions.
func WithStaleGuard(v bool) Option {
	return func(o *Options) { o.StaleGuard = v }
}

// Resolve applies each layer of options over BaseDefaults in order.
func Resolve(layers ...[]Option) Options {
	opts := BaseDefaults()
	for _, layer := range layers {
		for _, fn := range layer {
			if fn != nil {
				fn(&opts)
			}
		}
	}
	return opts
}

// normalize applies configuration fallbacks and reports what it changed.
func (o *Options) normalize() []string {
	var fixed []string
	if n := o.Position.Normalize(); n.Side != o.Position.Side || n.Arrow != o.Position.Arrow {
		fixed = append(fixed, "position "+string(o.Position.Side)+"/"+string(o.Position.Arrow)+" -> "+n.String())
		o.Position = n
	}
	if o.ArrowSize < 0 {
		fixed = append(fixed, "negative arrow size -> 0")
		o.ArrowSize = 0
	}
	if o.Delay < 0 {
		fixed = append(fixed, "negative delay -> 0")
		o.Delay = 0
	}
	return fixed
}
