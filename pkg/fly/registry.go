// ABOUTME: Per-element variant registry: apply (create/replace), instance lookup, destroy
// ABOUTME: Keeps at most one instance per variant and element

package fly

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownVariant is returned by Apply for an unregistered variant name.
var ErrUnknownVariant = errors.New("fly: unknown variant")

type regKey struct {
	name string
	el   Element
}

// Registry exposes variants per element by name.
type Registry struct {
	factory   *Factory
	variants  map[string]*Variant
	instances map[regKey]*Overlay
}

// NewRegistry creates a Registry creating instances with f.
func NewRegistry(f *Factory, variants ...*Variant) *Registry {
	r := &Registry{
		factory:   f,
		variants:  make(map[string]*Variant),
		instances: make(map[regKey]*Overlay),
	}
	for _, v := range variants {
		r.Register(v)
	}
	return r
}

// Register adds or replaces a variant under its name.
func (r *Registry) Register(v *Variant) {
	r.variants[v.Name] = v
}

// Names returns the registered variant names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.variants))
	for n := range r.variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Apply creates an instance of the named variant on el, destroying the
// element's previous instance of that variant first.
func (r *Registry) Apply(name string, el Element, opts ...Option) (*Overlay, error) {
	v, ok := r.variants[name]
	if !ok {
		return nil, fmt.Errorf("applying %q: %w", name, ErrUnknownVariant)
	}
	r.Destroy(name, el)

	o, err := r.factory.Create(v, el, opts...)
	if err != nil {
		return nil, err
	}
	r.instances[regKey{name, el}] = o
	return o, nil
}

// Instance returns the element's instance of the named variant, or nil.
func (r *Registry) Instance(name string, el Element) *Overlay {
	return r.instances[regKey{name, el}]
}

// Destroy destroys and forgets the element's instance of the named variant.
func (r *Registry) Destroy(name string, el Element) {
	k := regKey{name, el}
	if o, ok := r.instances[k]; ok {
		delete(r.instances, k)
		o.Destroy()
	}
}

// DestroyAll destroys every tracked instance.
func (r *Registry) DestroyAll() {
	for k, o := range r.instances {
		delete(r.instances, k)
		o.Destroy()
	}
}

// Len returns the number of tracked instances.
func (r *Registry) Len() int {
	return len(r.instances)
}
