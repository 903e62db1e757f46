// ABOUTME: Variant definitions, the instance Factory, and the Overlay lifecycle
// ABOUTME: Create merges options and binds triggers; Destroy tears everything down

package fly

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
	"github.com/mauromedda/fly-go/pkg/fly/loop"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

var (
	// ErrNilAnchor is returned when creating an overlay without an anchor.
	ErrNilAnchor = errors.New("fly: nil anchor")
	// ErrNilVariant is returned when creating an overlay without a variant.
	ErrNilVariant = errors.New("fly: nil variant")
)

// Variant is the configuration record of one overlay kind.
type Variant struct {
	Name string
	// Defaults layer over BaseDefaults and under instance options.
	Defaults []Option
	// Actions are bound on the anchor.
	Actions Actions
	// Methods extend or override the built-in method table.
	Methods map[string]MethodFunc

	Init        func(o *Overlay)
	Destroy     func(o *Overlay)
	OnRootReady func(o *Overlay)
}

// Factory creates overlay instances against one host.
type Factory struct {
	doc   Document
	sched loop.Scheduler
	names NamespaceSource
	log   *log.Logger
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithLogger sets the logger used by the factory and its instances.
func WithLogger(l *log.Logger) FactoryOption {
	return func(f *Factory) { f.log = l }
}

// WithNamespaces sets the namespace source.
func WithNamespaces(src NamespaceSource) FactoryOption {
	return func(f *Factory) { f.names = src }
}

// NewFactory creates a Factory for doc whose timers run on sched.
func NewFactory(doc Document, sched loop.Scheduler, opts ...FactoryOption) *Factory {
	f := &Factory{doc: doc, sched: sched}
	for _, fn := range opts {
		fn(f)
	}
	if f.names == nil {
		f.names = NewCounter("ns")
	}
	if f.log == nil {
		f.log = log.New(io.Discard)
	}
	return f
}

// Overlay is one live overlay instance bound to an anchor.
type Overlay struct {
	variant *Variant
	factory *Factory
	ns      string
	opts    Options

	anchor Element
	root   Element

	emitter *event.Emitter
	own     *event.Group
	binder  *Binder
	methods map[string]MethodFunc
	timers  map[string]loop.Timer

	state     State
	rendered  bool
	gen       uint64
	destroyed bool
}

// Create builds a ready instance of v on anchor. opts form the instance
// layer of the option chain.
func (f *Factory) Create(v *Variant, anchor Element, opts ...Option) (*Overlay, error) {
	if v == nil {
		return nil, ErrNilVariant
	}
	if anchor == nil {
		return nil, fmt.Errorf("creating %s: %w", v.Name, ErrNilAnchor)
	}

	o := &Overlay{
		variant: v,
		factory: f,
		ns:      f.names.Next(),
		anchor:  anchor,
		emitter: event.NewEmitter(),
		timers:  make(map[string]loop.Timer),
	}
	o.own = event.NewGroup(o.ns)
	o.binder = newBinder(o)
	o.opts = Resolve(v.Defaults, opts)
	for _, fix := range o.opts.normalize() {
		f.log.Warn("invalid option, using default", "variant", v.Name, "ns", o.ns, "fix", fix)
	}
	o.methods = builtinMethods()
	for name, fn := range v.Methods {
		o.methods[name] = fn
	}

	o.binder.Bind(anchor, v.Actions)
	if v.OnRootReady != nil {
		o.On(event.RootReady, func(event.Event) { v.OnRootReady(o) })
	}
	if v.Init != nil {
		v.Init(o)
	}

	f.log.Debug("overlay created", "variant", v.Name, "ns", o.ns)
	return o, nil
}

func builtinMethods() map[string]MethodFunc {
	return map[string]MethodFunc{
		"show":       func(o *Overlay, _ event.Event) { o.Show() },
		"hide":       func(o *Overlay, _ event.Event) { o.Hide() },
		"toggle":     func(o *Overlay, _ event.Event) { o.Toggle() },
		"redraw":     func(o *Overlay, _ event.Event) { o.Redraw(nil) },
		"reposition": func(o *Overlay, _ event.Event) { o.Reposition() },
	}
}

func (o *Overlay) method(name string) MethodFunc {
	return o.methods[name]
}

func (o *Overlay) logger() *log.Logger {
	return o.factory.log
}

// Namespace returns the instance's unique namespace token.
func (o *Overlay) Namespace() string { return o.ns }

// Variant returns the variant the instance was created from.
func (o *Overlay) Variant() *Variant { return o.variant }

// Options returns the merged options.
func (o *Overlay) Options() Options { return o.opts }

// Document returns the host document.
func (o *Overlay) Document() Document { return o.factory.doc }

// Scheduler returns the scheduler timers and deferred content run on.
func (o *Overlay) Scheduler() loop.Scheduler { return o.factory.sched }

// Handle returns the anchor element.
func (o *Overlay) Handle() Element { return o.anchor }

// Destroyed reports whether Destroy has run.
func (o *Overlay) Destroyed() bool { return o.destroyed }

// Root returns the panel element, creating it on first use. The first
// creation emits rootready. Returns nil after Destroy.
func (o *Overlay) Root() Element {
	if o.destroyed {
		return nil
	}
	if o.root == nil {
		root := o.factory.doc.CreatePanel(PanelClasses{Base: o.opts.BaseClass, Hide: o.opts.HideClass})
		classes := make([]string, 0, 3)
		for _, c := range []string{o.opts.BaseClass, o.opts.ExtraClass, o.opts.HideClass} {
			if c != "" {
				classes = append(classes, c)
			}
		}
		root.AddClass(classes...)
		o.root = root
		o.Trigger(event.RootReady)
	}
	return o.root
}

// Events returns the instance's own emitter, making the Overlay a Target.
func (o *Overlay) Events() *event.Emitter { return o.emitter }

// On subscribes h to an instance event. The subscription ends at Destroy.
func (o *Overlay) On(name string, h event.Handler) *event.Registration {
	r := o.emitter.Subscribe(name, h)
	o.own.Add(r)
	return r
}

// Once subscribes h to the next instance event named name.
func (o *Overlay) Once(name string, h event.Handler) *event.Registration {
	r := o.emitter.Once(name, h)
	o.own.Add(r)
	return r
}

// Trigger emits an instance event.
func (o *Overlay) Trigger(name string) {
	o.emitter.Emit(event.Event{Type: name, Target: o})
}

// Bind attaches actions to target under this instance's namespace,
// replacing earlier bindings on the same target.
func (o *Overlay) Bind(target event.Target, actions Actions) {
	if o.destroyed {
		return
	}
	o.binder.Bind(target, actions)
}

// Unbind releases this instance's bindings on target.
func (o *Overlay) Unbind(target event.Target) {
	o.binder.Unbind(target)
}

// Bound reports whether this instance has bindings on target.
func (o *Overlay) Bound(target event.Target) bool {
	return o.binder.Bound(target)
}

// After runs fn after d, replacing any pending timer with the same key.
// Pending timers are cleared by Destroy.
func (o *Overlay) After(key string, d time.Duration, fn func()) {
	if o.destroyed {
		return
	}
	o.Cancel(key)
	var t loop.Timer
	t = o.factory.sched.AfterFunc(d, func() {
		if o.timers[key] == t {
			delete(o.timers, key)
		}
		fn()
	})
	o.timers[key] = t
}

// Cancel stops the pending timer with the given key. Cancelling a fired or
// unknown timer is a no-op.
func (o *Overlay) Cancel(key string) {
	if t, ok := o.timers[key]; ok {
		t.Stop()
		delete(o.timers, key)
	}
}

// Pending reports whether a timer with the given key is scheduled.
func (o *Overlay) Pending(key string) bool {
	_, ok := o.timers[key]
	return ok
}

// Destroy runs variant cleanup, removes the panel, clears timers and
// releases every binding. Safe to call more than once; the instance is
// unusable afterwards.
func (o *Overlay) Destroy() {
	if o.destroyed {
		return
	}
	if o.variant.Destroy != nil {
		o.variant.Destroy(o)
	}
	o.destroyed = true

	for key := range o.timers {
		o.Cancel(key)
	}
	if o.root != nil {
		o.root.Remove()
		o.root = nil
	}
	o.binder.UnbindAll()
	o.own.Release()
	o.state = Hidden

	o.logger().Debug("overlay destroyed", "variant", o.variant.Name, "ns", o.ns)
}

// placement returns the effective placement including the arrow size.
func (o *Overlay) placement() place.Spec {
	spec := o.opts.Position
	spec.ArrowSize = o.opts.ArrowSize
	return spec.Normalize()
}

// position measures anchor and panel afresh and computes panel coordinates.
func (o *Overlay) position() place.Point {
	return place.Compute(
		geom.Measure(o.anchor),
		geom.Measure(o.Root()),
		o.factory.doc.Scroll(),
		o.placement(),
	)
}
