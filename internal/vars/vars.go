// Package vars holds scoped template variables and the default template
// interpolation used for titles and data links.
package vars

import (
	"fmt"
	"io"
	"maps"
	"net/url"
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"github.com/valyala/fasttemplate"
)

// Built-in variable names.
const (
	SeriesVar        = "__series"
	FieldVar         = "__field"
	ValueVar         = "__value"
	DataVar          = "__data"
	KeepTimeVar      = "__url_time_range"
	IncludeVarsVar   = "__all_variables"
	formatSeparator  = ":"
	percentEncodeFmt = "percentencode"
)

// ScopedVar is a single variable: a display text and a (possibly nested) value.
type ScopedVar struct {
	Text  string `yaml:"text"`
	Value any    `yaml:"value"`
}

// ScopedVars maps variable names to their scoped values.
type ScopedVars map[string]ScopedVar

// InterpolateFunc substitutes variables in a template.
type InterpolateFunc func(template string, scoped ScopedVars) string

// With returns a copy of s extended with other. Entries in other win.
func (s ScopedVars) With(other ScopedVars) ScopedVars {
	out := make(ScopedVars, len(s)+len(other))
	maps.Copy(out, s)
	maps.Copy(out, other)

	return out
}

// Lookup resolves a dotted variable reference such as "__series.name".
// A bare name resolves to the variable's value when it is a scalar and to
// its text otherwise.
func (s ScopedVars) Lookup(ref string) (string, bool) {
	name, rest, nested := strings.Cut(ref, ".")

	v, ok := s[name]
	if !ok {
		return "", false
	}

	if !nested {
		switch v.Value.(type) {
		case nil, map[string]any:
			return v.Text, true
		default:
			return cast.ToString(v.Value), true
		}
	}

	cur := v.Value
	for seg := range strings.SplitSeq(rest, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}

		if cur, ok = m[seg]; !ok {
			return "", false
		}
	}

	if cur == nil {
		return "", true
	}

	str, err := cast.ToStringE(cur)

	return str, err == nil
}

var bareVarPattern = regexp.MustCompile(`\$([A-Za-z_][\w.]*)`)

// Interpolate is the default InterpolateFunc. It replaces ${name},
// ${name.path}, ${name:percentencode} and bare $name references. Unknown
// references are left untouched.
func Interpolate(template string, scoped ScopedVars) string {
	if !strings.Contains(template, "$") {
		return template
	}

	template = bareVarPattern.ReplaceAllStringFunc(template, func(m string) string {
		if _, ok := scoped.Lookup(m[1:]); ok {
			return "${" + m[1:] + "}"
		}

		return m
	})

	return fasttemplate.ExecuteFuncString(template, "${", "}", func(w io.Writer, tag string) (int, error) {
		ref, format, _ := strings.Cut(tag, formatSeparator)

		val, ok := scoped.Lookup(ref)
		if !ok {
			return fmt.Fprintf(w, "${%s}", tag)
		}

		if format == percentEncodeFmt {
			val = url.QueryEscape(val)
		}

		return io.WriteString(w, val)
	})
}

// Identity is an InterpolateFunc that returns the template unchanged.
func Identity(template string, _ ScopedVars) string {
	return template
}
