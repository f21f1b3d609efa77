package fieldconfig

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"fieldoverrides/internal/vars"
)

// Standard property paths.
const (
	PathTitle      = "title"
	PathUnit       = "unit"
	PathMin        = "min"
	PathMax        = "max"
	PathDecimals   = "decimals"
	PathNoValue    = "noValue"
	PathThresholds = "thresholds"
	PathMappings   = "mappings"
	PathLinks      = "links"
	PathColor      = "color"

	customKey = "custom"
)

// FieldConfig is the display configuration of one field.
type FieldConfig struct {
	// Standard holds the properties shared by every field.
	Standard Values
	// Custom holds plugin specific properties. Nil until one is set.
	Custom Values
	// ScopedVars are the variables visible to templated properties of this
	// field. Attached during resolution, never persisted.
	ScopedVars vars.ScopedVars
}

// Clone returns a copy whose top-level maps can be modified independently.
func (c FieldConfig) Clone() FieldConfig {
	std := c.Standard.Clone()
	if std == nil {
		std = Values{}
	}

	return FieldConfig{
		Standard:   std,
		Custom:     c.Custom.Clone(),
		ScopedVars: c.ScopedVars,
	}
}

// Namespace returns the map a property lives in.
func (c *FieldConfig) Namespace(custom bool) Values {
	if custom {
		return c.Custom
	}

	return c.Standard
}

// Get returns the value at path in the standard or custom namespace.
func (c *FieldConfig) Get(path string, custom bool) (any, bool) {
	ns := c.Namespace(custom)
	if ns == nil {
		return nil, false
	}

	return ns.Get(path)
}

// IsSet returns true if path holds a non-nil value.
func (c *FieldConfig) IsSet(path string, custom bool) bool {
	val, ok := c.Get(path, custom)
	return ok && val != nil
}

// Set stores val at path, creating the custom namespace when needed.
func (c *FieldConfig) Set(path string, custom bool, val any) {
	if custom {
		if c.Custom == nil {
			c.Custom = Values{}
		}

		c.Custom.Set(path, val)

		return
	}

	if c.Standard == nil {
		c.Standard = Values{}
	}

	c.Standard.Set(path, val)
}

// Unset removes the property at path.
func (c *FieldConfig) Unset(path string, custom bool) {
	if ns := c.Namespace(custom); ns != nil {
		ns.Unset(path)
	}
}

// Title returns the configured title.
func (c *FieldConfig) Title() string {
	s, _ := c.Standard[PathTitle].(string)
	return s
}

// Unit returns the configured unit.
func (c *FieldConfig) Unit() string {
	s, _ := c.Standard[PathUnit].(string)
	return s
}

// NoValue returns the text shown for missing values.
func (c *FieldConfig) NoValue() string {
	s, _ := c.Standard[PathNoValue].(string)
	return s
}

// Min returns the configured minimum when it is numeric.
func (c *FieldConfig) Min() (float64, bool) {
	return AsNumber(c.Standard[PathMin])
}

// Max returns the configured maximum when it is numeric.
func (c *FieldConfig) Max() (float64, bool) {
	return AsNumber(c.Standard[PathMax])
}

// SetMin stores a minimum.
func (c *FieldConfig) SetMin(v float64) { c.Set(PathMin, false, v) }

// SetMax stores a maximum.
func (c *FieldConfig) SetMax(v float64) { c.Set(PathMax, false, v) }

// Decimals returns the configured decimals when set.
func (c *FieldConfig) Decimals() (int, bool) {
	v, ok := AsNumber(c.Standard[PathDecimals])
	return int(v), ok
}

// Thresholds returns the threshold configuration, if any.
func (c *FieldConfig) Thresholds() *ThresholdsConfig {
	t, _ := c.Standard[PathThresholds].(*ThresholdsConfig)
	return t
}

// Color returns the color configuration, if any.
func (c *FieldConfig) Color() *ColorConfig {
	col, _ := c.Standard[PathColor].(*ColorConfig)
	return col
}

// Mappings returns the value mappings.
func (c *FieldConfig) Mappings() []ValueMapping {
	m, _ := c.Standard[PathMappings].([]ValueMapping)
	return m
}

// Links returns the data link templates.
func (c *FieldConfig) Links() []DataLink {
	l, _ := c.Standard[PathLinks].([]DataLink)
	return l
}

// AsNumber reports whether v is a (non-NaN) Go number and returns it.
// Numeric strings are not numbers here.
func AsNumber(v any) (float64, bool) {
	switch v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		f := cast.ToFloat64(v)
		if math.IsNaN(f) {
			return 0, false
		}

		return f, true
	default:
		return 0, false
	}
}

// UnmarshalYAML decodes a flat configuration map. Known standard keys are
// decoded into their typed form; "custom" becomes the custom namespace.
func (c *FieldConfig) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.Standard = Values{}
	c.Custom = nil

	for key, val := range raw {
		if key == customKey {
			m, ok := val.(map[string]any)
			if !ok && val != nil {
				return fmt.Errorf("custom: expected a map, got %T", val)
			}

			if m != nil {
				c.Custom = Values(m)
			}

			continue
		}

		if val == nil {
			continue
		}

		typed, err := DecodeStandard(key, val)
		if err != nil {
			return fmt.Errorf("field config %q: %w", key, err)
		}

		c.Standard[key] = typed
	}

	return nil
}

// MarshalYAML encodes the configuration as a flat map.
func (c FieldConfig) MarshalYAML() (any, error) {
	out := make(map[string]any, len(c.Standard)+1)
	for k, v := range c.Standard {
		out[k] = v
	}

	if c.Custom != nil {
		out[customKey] = map[string]any(c.Custom)
	}

	return out, nil
}
