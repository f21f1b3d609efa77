package fieldconfig

import (
	"maps"
	"strings"
)

// Values is a property bag addressed by dotted paths ("axis.placement").
// Nested levels are stored as map[string]any; nested Values are read the
// same way.
type Values map[string]any

func asMap(val any) (map[string]any, bool) {
	switch m := val.(type) {
	case Values:
		return m, true
	case map[string]any:
		return m, true
	default:
		return nil, false
	}
}

// Get returns the value at path.
func (v Values) Get(path string) (any, bool) {
	head, rest, nested := strings.Cut(path, ".")

	val, ok := v[head]
	if !ok || !nested {
		return val, ok
	}

	child, ok := asMap(val)
	if !ok {
		return nil, false
	}

	return Values(child).Get(rest)
}

// IsSet returns true if path holds a non-nil value.
func (v Values) IsSet(path string) bool {
	val, ok := v.Get(path)
	return ok && val != nil
}

// Set stores val at path, creating intermediate levels. Intermediate levels
// are replaced by copies, never written in place.
func (v Values) Set(path string, val any) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		v[head] = val
		return
	}

	child, _ := asMap(v[head])
	next := make(Values, len(child)+1)
	maps.Copy(next, child)
	next.Set(rest, val)
	v[head] = map[string]any(next)
}

// Unset removes the key at path. Missing levels make it a no-op.
func (v Values) Unset(path string) {
	head, rest, nested := strings.Cut(path, ".")
	if !nested {
		delete(v, head)
		return
	}

	child, ok := asMap(v[head])
	if !ok {
		return
	}

	if _, ok := Values(child).Get(rest); !ok {
		return
	}

	next := make(Values, len(child))
	maps.Copy(next, child)
	next.Unset(rest)
	v[head] = map[string]any(next)
}

// Clone returns a shallow copy of the top level.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}

	return maps.Clone(v)
}
