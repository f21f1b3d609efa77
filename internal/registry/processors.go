package registry

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"fieldoverrides/internal/fieldconfig"
)

// StringSettings configures StringProcessor.
type StringSettings struct {
	Placeholder string
	// ExpandTemplateVars interpolates the field's scoped variables.
	ExpandTemplateVars bool
}

// NumberSettings configures NumberProcessor.
type NumberSettings struct {
	Placeholder string
	Min         *float64
	Max         *float64
	Integer     bool
}

// StringProcessor converts a value to a string. Empty strings are removals.
func StringProcessor(value any, ctx *Context, settings any) any {
	if value == nil {
		return nil
	}

	s, err := cast.ToStringE(value)
	if err != nil || s == "" {
		return nil
	}

	if st, ok := settings.(*StringSettings); ok && st.ExpandTemplateVars && ctx != nil && ctx.ReplaceVariables != nil {
		return ctx.ReplaceVariables(s, ctx.ScopedVars)
	}

	return s
}

// NumberProcessor parses a number. Unparseable values, NaN and empty
// strings are removals.
func NumberProcessor(value any, _ *Context, settings any) any {
	switch x := value.(type) {
	case nil, bool:
		return nil
	case string:
		if strings.TrimSpace(x) == "" {
			return nil
		}
	}

	v, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(v) {
		return nil
	}

	if ns, ok := settings.(*NumberSettings); ok {
		if ns.Integer {
			v = math.Trunc(v)
		}

		if ns.Min != nil && v < *ns.Min {
			v = *ns.Min
		}

		if ns.Max != nil && v > *ns.Max {
			v = *ns.Max
		}
	}

	return v
}

// BooleanProcessor parses a boolean.
func BooleanProcessor(value any, _ *Context, _ any) any {
	if value == nil {
		return nil
	}

	b, err := cast.ToBoolE(value)
	if err != nil {
		return nil
	}

	return b
}

// ThresholdsProcessor converts a raw value into a thresholds configuration.
func ThresholdsProcessor(value any, _ *Context, _ any) any {
	if value == nil {
		return nil
	}

	t, err := fieldconfig.ToThresholds(value)
	if err != nil {
		return nil
	}

	return t
}

// MappingsProcessor converts a raw value into value mappings.
func MappingsProcessor(value any, _ *Context, _ any) any {
	if value == nil {
		return nil
	}

	m, err := fieldconfig.ToMappings(value)
	if err != nil {
		return nil
	}

	return m
}

// LinksProcessor converts a raw value into data links.
func LinksProcessor(value any, _ *Context, _ any) any {
	if value == nil {
		return nil
	}

	l, err := fieldconfig.ToLinks(value)
	if err != nil {
		return nil
	}

	return l
}

// ColorProcessor converts a raw value into a color configuration.
func ColorProcessor(value any, _ *Context, _ any) any {
	if value == nil {
		return nil
	}

	c, err := fieldconfig.ToColor(value)
	if err != nil {
		return nil
	}

	return c
}

// IdentityProcessor returns the value unchanged.
func IdentityProcessor(value any, _ *Context, _ any) any {
	return value
}
