package scheme

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	// ErrUnknownScheme is returned when a lookup finds no scheme under the
	// given name.
	ErrUnknownScheme = errors.New("scheme: unknown cipher scheme")
	// ErrDuplicateScheme is returned when a name is registered twice.
	ErrDuplicateScheme = errors.New("scheme: name already registered")
	// ErrNilScheme is returned when a nil scheme is registered.
	ErrNilScheme = errors.New("scheme: nil scheme")
)

// Registry is a concurrency-safe index of cipher schemes by name. The zero
// value is ready to use.
type Registry struct {
	mu      sync.RWMutex
	schemes map[string]*Scheme
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{schemes: make(map[string]*Scheme)}
}

// Register adds a scheme under its name. Registering the same name twice
// fails with ErrDuplicateScheme; the first registration wins.
func (r *Registry) Register(s *Scheme) error {
	if s == nil {
		return ErrNilScheme
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.schemes == nil {
		r.schemes = make(map[string]*Scheme)
	}

	if _, ok := r.schemes[s.name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateScheme, s.name)
	}

	r.schemes[s.name] = s

	return nil
}

// Lookup returns the scheme registered under name.
func (r *Registry) Lookup(name string) (*Scheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
	}

	return s, nil
}

// Names returns every registered scheme name in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// defaultRegistry backs the package-level registration functions. Concrete
// cipher packages typically register here from their init functions.
var defaultRegistry = NewRegistry()

// Register adds a scheme to the default registry.
func Register(s *Scheme) error {
	return defaultRegistry.Register(s)
}

// Lookup finds a scheme in the default registry.
func Lookup(name string) (*Scheme, error) {
	return defaultRegistry.Lookup(name)
}

// Names lists the default registry in lexical order.
func Names() []string {
	return defaultRegistry.Names()
}
