package matcher

import (
	"errors"
	"fmt"
	"sync"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

var (
	// ErrDuplicateMatcher is returned when a matcher id is registered twice.
	ErrDuplicateMatcher = errors.New("duplicate matcher")
	// ErrUnknownMatcher is returned when compiling an unregistered id.
	ErrUnknownMatcher = errors.New("unknown matcher")
	// ErrInvalidOptions is returned when a factory rejects its options.
	ErrInvalidOptions = errors.New("invalid matcher options")
)

// Predicate selects fields.
type Predicate func(f *frame.Field) bool

// Factory builds a predicate from matcher options.
type Factory func(options any) (Predicate, error)

// Info describes a registered matcher.
type Info struct {
	ID          string
	Name        string
	Description string
	Factory     Factory
}

// Registry maps matcher ids to factories.
type Registry struct {
	items []Info
	byID  map[string]Info
}

// NewRegistry creates a registry holding infos in order.
func NewRegistry(infos ...Info) (*Registry, error) {
	r := &Registry{byID: make(map[string]Info, len(infos))}

	for _, info := range infos {
		if err := r.Register(info); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Register adds a matcher.
func (r *Registry) Register(info Info) error {
	if info.ID == "" || info.Factory == nil {
		return errors.New("matcher id and factory are required")
	}

	if _, exists := r.byID[info.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMatcher, info.ID)
	}

	r.items = append(r.items, info)
	r.byID[info.ID] = info

	return nil
}

// Get returns the matcher registered under id.
func (r *Registry) Get(id string) (Info, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// List returns the matchers in registration order.
func (r *Registry) List() []Info {
	out := make([]Info, len(r.items))
	copy(out, r.items)

	return out
}

// IDs returns the matcher ids in registration order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.items))
	for i, info := range r.items {
		ids[i] = info.ID
	}

	return ids
}

// Compile resolves cfg to a predicate.
func (r *Registry) Compile(cfg fieldconfig.MatcherConfig) (Predicate, error) {
	info, ok := r.byID[cfg.ID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMatcher, cfg.ID)
	}

	pred, err := info.Factory(cfg.Options)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidOptions, cfg.ID, err)
	}

	return pred, nil
}

var standard = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(StandardMatchers()...)
	if err != nil {
		panic(err)
	}

	return r
})

// Standard returns the shared registry of standard matchers.
func Standard() *Registry {
	return standard()
}

// NewStandardRegistry returns a new, extensible registry holding the
// standard matchers.
func NewStandardRegistry() *Registry {
	r, _ := NewRegistry(StandardMatchers()...)
	return r
}
