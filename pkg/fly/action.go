// ABOUTME: Action tables and the per-instance binder that attaches them to targets
// ABOUTME: Method names resolve once at bind time; teardown releases stored handles

package fly

import (
	"sort"

	"github.com/mauromedda/fly-go/pkg/fly/event"
)

// MethodFunc is an overlay method invocable from an action table.
type MethodFunc func(o *Overlay, ev event.Event)

type actionKind int

const (
	actionMethod actionKind = iota + 1
	actionFunc
)

// Action is a trigger handler: either a named overlay method or a function.
type Action struct {
	kind actionKind
	name string
	fn   MethodFunc
}

// Method refers to an overlay method by name ("show", "hide", "toggle",
// "redraw", "reposition", or a variant method).
func Method(name string) Action {
	return Action{kind: actionMethod, name: name}
}

// Func is an action given directly as a function.
func Func(fn MethodFunc) Action {
	return Action{kind: actionFunc, fn: fn}
}

// Actions maps event names to actions.
type Actions map[string]Action

// Binder attaches action tables to event targets on behalf of one overlay.
// Each target holds at most one binding group; binding a target again
// replaces the previous group.
type Binder struct {
	o      *Overlay
	groups map[event.Target]*event.Group
	order  []event.Target
}

func newBinder(o *Overlay) *Binder {
	return &Binder{o: o, groups: make(map[event.Target]*event.Group)}
}

// Bind subscribes every action in actions on target. Handlers run with the
// binder's overlay as receiver.
func (b *Binder) Bind(target event.Target, actions Actions) {
	b.Unbind(target)

	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)

	g := event.NewGroup(b.o.ns)
	em := target.Events()
	for _, name := range names {
		fn := b.resolve(actions[name])
		if fn == nil {
			b.o.logger().Warn("unknown action, skipped", "ns", b.o.ns, "event", name, "method", actions[name].name)
			continue
		}
		o := b.o
		g.Add(em.Subscribe(name, func(ev event.Event) { fn(o, ev) }))
	}

	b.groups[target] = g
	b.order = append(b.order, target)
}

func (b *Binder) resolve(a Action) MethodFunc {
	switch a.kind {
	case actionFunc:
		return a.fn
	case actionMethod:
		return b.o.method(a.name)
	}
	return nil
}

// Unbind releases the bindings on target, if any.
func (b *Binder) Unbind(target event.Target) {
	g, ok := b.groups[target]
	if !ok {
		return
	}
	g.Release()
	delete(b.groups, target)
	for i, t := range b.order {
		if t == target {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// UnbindAll releases every binding, most recent first.
func (b *Binder) UnbindAll() {
	for i := len(b.order) - 1; i >= 0; i-- {
		if g, ok := b.groups[b.order[i]]; ok {
			g.Release()
		}
	}
	b.groups = make(map[event.Target]*event.Group)
	b.order = nil
}

// Bound reports whether target currently has bindings.
func (b *Binder) Bound(target event.Target) bool {
	_, ok := b.groups[target]
	return ok
}
