// ABOUTME: Content sources for overlay panels: static, computed, or deferred
// ABOUTME: The kind is fixed by the constructor used, never inferred at call time

package fly

type contentKind int

const (
	contentStatic contentKind = iota
	contentComputed
	contentDeferred
)

// Content is the source of a panel's content.
type Content struct {
	kind     contentKind
	value    string
	computed func(o *Overlay) string
	deferred func(o *Overlay, done func(string))
}

// Static is content known up front.
func Static(s string) Content {
	return Content{kind: contentStatic, value: s}
}

// Computed is content produced synchronously on every resolution.
func Computed(fn func(o *Overlay) string) Content {
	return Content{kind: contentComputed, computed: fn}
}

// Deferred is content produced asynchronously. fn must call done exactly
// once; until it does the overlay stays in the Rendering state. There is
// no timeout and no retry.
func Deferred(fn func(o *Overlay, done func(string))) Content {
	return Content{kind: contentDeferred, deferred: fn}
}

// Resolve produces the content for o and hands it to done. Static and
// computed content complete before Resolve returns.
func (c Content) Resolve(o *Overlay, done func(string)) {
	switch c.kind {
	case contentComputed:
		if c.computed == nil {
			done("")
			return
		}
		done(c.computed(o))
	case contentDeferred:
		if c.deferred == nil {
			done("")
			return
		}
		c.deferred(o, done)
	default:
		done(c.value)
	}
}
