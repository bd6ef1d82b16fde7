package estimator

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor builds an estimator from component attributes.
type Constructor func(attrs Attributes) (Estimator, error)

type entry struct {
	info Info
	ctor Constructor
}

// Registry maps class names and aliases to constructors.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*entry
	entries []*entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*entry)}
}

// Register adds a class under its name and aliases.
func (r *Registry) Register(info Info, ctor Constructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range info.Names() {
		if _, ok := r.byName[n]; ok {
			return fmt.Errorf("%s: %w", n, ErrDuplicateClass)
		}
	}
	e := &entry{info: info, ctor: ctor}
	for _, n := range info.Names() {
		r.byName[n] = e
	}
	r.entries = append(r.entries, e)
	return nil
}

// MustRegister is Register that panics on error.
func (r *Registry) MustRegister(info Info, ctor Constructor) {
	if err := r.Register(info, ctor); err != nil {
		panic(err)
	}
}

// New constructs the estimator registered under class.
func (r *Registry) New(class string, attrs Attributes) (Estimator, error) {
	r.mu.RLock()
	e, ok := r.byName[class]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%s: %w", class, ErrUnknownClass)
	}
	if attrs == nil {
		attrs = Attributes{}
	}
	est, err := e.ctor(attrs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", class, err)
	}
	return est, nil
}

// Lookup returns the Info registered under class.
func (r *Registry) Lookup(class string) (Info, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byName[class]
	if !ok {
		return Info{}, false
	}
	return e.info, true
}

// Classes returns the Info of every registered class, sorted by name.
func (r *Registry) Classes() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
