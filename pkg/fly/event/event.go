// ABOUTME: Event substrate: named-event emitter with per-subscription release handles
// ABOUTME: Groups collect one instance's registrations so teardown is exact

package event

import "sync"

// Common event names.
const (
	Show       = "show"
	Hide       = "hide"
	RootReady  = "rootready"
	Click      = "click"
	KeyDown    = "keydown"
	MouseEnter = "mouseenter"
	MouseLeave = "mouseleave"
	Resize     = "resize"
)

// KeyEscape is the Key value of an Escape keydown.
const KeyEscape = "esc"

// Event is a single dispatched event.
type Event struct {
	Type string
	// Target is the element the event originated on, if any.
	Target Target
	// Key names the pressed key for keydown events.
	Key string
}

// Handler receives events.
type Handler func(Event)

// Target is anything events can be bound to: elements, the document, the
// window, or a component's own emitter.
type Target interface {
	Events() *Emitter
}

type entry struct {
	h    Handler
	once bool
	dead bool
}

// Emitter delivers named events to subscribers in subscription order.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string][]*entry
}

// NewEmitter creates an empty Emitter.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[string][]*entry)}
}

// Events lets an Emitter act as its own Target.
func (e *Emitter) Events() *Emitter {
	return e
}

// Subscribe registers h for events named typ.
func (e *Emitter) Subscribe(typ string, h Handler) *Registration {
	return e.add(typ, h, false)
}

// Once registers h for the next event named typ only.
func (e *Emitter) Once(typ string, h Handler) *Registration {
	return e.add(typ, h, true)
}

func (e *Emitter) add(typ string, h Handler, once bool) *Registration {
	en := &entry{h: h, once: once}

	e.mu.Lock()
	if e.handlers == nil {
		e.handlers = make(map[string][]*entry)
	}
	e.handlers[typ] = append(e.handlers[typ], en)
	e.mu.Unlock()

	return &Registration{release: func() { e.remove(typ, en) }}
}

func (e *Emitter) remove(typ string, en *entry) {
	e.mu.Lock()
	defer e.mu.Unlock()

	en.dead = true
	list := e.handlers[typ]
	for i, x := range list {
		if x == en {
			e.handlers[typ] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if len(e.handlers[typ]) == 0 {
		delete(e.handlers, typ)
	}
}

// Emit delivers ev to every handler subscribed to ev.Type. Handlers run
// synchronously; a handler released during delivery is skipped.
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()
	snapshot := make([]*entry, len(e.handlers[ev.Type]))
	copy(snapshot, e.handlers[ev.Type])
	e.mu.Unlock()

	for _, en := range snapshot {
		e.mu.Lock()
		dead := en.dead
		if en.once && !dead {
			en.dead = true
		}
		e.mu.Unlock()
		if dead {
			continue
		}
		if en.once {
			e.remove(ev.Type, en)
		}
		en.h(ev)
	}
}

// Count returns the number of live handlers for typ.
func (e *Emitter) Count(typ string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handlers[typ])
}

// Registration is the handle of one subscription.
type Registration struct {
	once    sync.Once
	release func()
}

// Release removes the subscription. Safe to call more than once and on nil.
func (r *Registration) Release() {
	if r == nil || r.release == nil {
		return
	}
	r.once.Do(r.release)
}

// Group collects the registrations of one owner under a label.
type Group struct {
	Name string
	regs []*Registration
}

// NewGroup creates an empty Group labelled name.
func NewGroup(name string) *Group {
	return &Group{Name: name}
}

// Add records r in the group.
func (g *Group) Add(r *Registration) {
	g.regs = append(g.regs, r)
}

// Len returns the number of registrations held.
func (g *Group) Len() int {
	return len(g.regs)
}

// Release releases every registration in the group and empties it.
func (g *Group) Release() {
	for _, r := range g.regs {
		r.Release()
	}
	g.regs = nil
}
