package registry

import (
	"errors"
	"fmt"
	"sync"

	"fieldoverrides/internal/fieldconfig"
)

// ErrDuplicateProperty is returned when a property id is registered twice.
var ErrDuplicateProperty = errors.New("duplicate property")

// Registry is an ordered collection of properties with lookup by id.
type Registry struct {
	items []Property
	byID  map[string]Property
}

// NewRegistry creates a registry holding props in order.
func NewRegistry(props ...Property) (*Registry, error) {
	r := &Registry{byID: make(map[string]Property, len(props))}

	for _, p := range props {
		if err := r.Register(p); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register appends p to the registry.
func (r *Registry) Register(p Property) error {
	id := p.Info().ID
	if id == "" {
		return errors.New("property id is required")
	}

	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateProperty, id)
	}

	r.items = append(r.items, p)
	r.byID[id] = p

	return nil
}

// Get returns the property with the given id.
func (r *Registry) Get(id string) (Property, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// List returns the properties in registration order.
func (r *Registry) List() []Property {
	out := make([]Property, len(r.items))
	copy(out, r.items)

	return out
}

// IDs returns the property ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.items))
	for i, p := range r.items {
		ids[i] = p.Info().ID
	}

	return ids
}

// Len returns the number of registered properties.
func (r *Registry) Len() int {
	return len(r.items)
}

// DefaultFieldConfig builds a configuration from the registered default
// values.
func (r *Registry) DefaultFieldConfig() fieldconfig.FieldConfig {
	cfg := fieldconfig.FieldConfig{Standard: fieldconfig.Values{}}

	for _, p := range r.items {
		info := p.Info()
		if info.DefaultValue == nil {
			continue
		}

		cfg.Set(info.Path, info.IsCustom, info.DefaultValue)
	}

	return cfg
}

var standard = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(StandardProperties()...)
	if err != nil {
		panic(err)
	}

	return r
})

// Standard returns the shared registry of standard properties. It must not
// be modified; use NewStandardRegistry for an extensible copy.
func Standard() *Registry {
	return standard()
}

// NewStandardRegistry returns a new registry holding the standard
// properties, ready to be extended with custom ones.
func NewStandardRegistry() *Registry {
	r, _ := NewRegistry(StandardProperties()...)
	return r
}
