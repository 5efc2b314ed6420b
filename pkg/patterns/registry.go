package patterns

import (
	"fmt"
	"strings"
	"sync"
)

// Format binds a matching rule to a machine name and a diagnostic label.
type Format struct {
	Name  string
	Label string
	Rule  *Rule
}

func (f Format) validate() error {
	switch {
	case strings.TrimSpace(f.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	case strings.TrimSpace(f.Label) == "":
		return fmt.Errorf("%w: label is required for %q", ErrInvalidDefinition, f.Name)
	case f.Rule == nil:
		return fmt.Errorf("%w: rule is required for %q", ErrInvalidDefinition, f.Name)
	}
	return nil
}

// Registry is a name to format mapping that preserves registration order.
type Registry struct {
	mu      sync.RWMutex
	formats map[string]Format
	order   []string
}

// NewRegistry creates a registry holding the given formats.
// It panics on invalid or duplicate entries.
func NewRegistry(formats ...Format) *Registry {
	r := &Registry{formats: make(map[string]Format, len(formats))}
	for _, f := range formats {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

// Default returns a new registry preloaded with the built-in formats.
func Default() *Registry {
	return NewRegistry(Builtin()...)
}

// Register adds a format. Names are case-insensitive.
func (r *Registry) Register(f Format) error {
	if err := f.validate(); err != nil {
		return err
	}
	key := normalizeName(f.Name)
	f.Name = key

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.formats == nil {
		r.formats = make(map[string]Format)
	}
	if _, exists := r.formats[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateFormat, key)
	}
	r.formats[key] = f
	r.order = append(r.order, key)
	return nil
}

// Lookup returns the format registered under name.
func (r *Registry) Lookup(name string) (Format, error) {
	key := normalizeName(name)

	r.mu.RLock()
	f, ok := r.formats[key]
	r.mu.RUnlock()

	if !ok {
		return Format{}, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return f, nil
}

// MustLookup is like Lookup but panics for unknown names.
func (r *Registry) MustLookup(name string) Format {
	f, err := r.Lookup(name)
	if err != nil {
		panic(err)
	}
	return f
}

// Formats returns all formats in registration order.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.formats[name])
	}
	return out
}

// Names returns the registered format names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
