package display

import (
	"fieldoverrides/internal/frame"
)

// FieldValue is the display of one field at one row.
type FieldValue struct {
	Raw     any
	Numeric float64
	Text    string
}

// Proxy exposes the display values of every field of a row by field name.
type Proxy map[string]FieldValue

// FieldsProxy displays every field of frame at row. Fields without a
// display processor get one from factory (NewProcessor when nil).
func FieldsProxy(f *frame.Frame, row int, factory Factory, theme Theme, timeZone string) Proxy {
	if factory == nil {
		factory = NewProcessor
	}

	out := make(Proxy, len(f.Fields))

	for _, fld := range f.Fields {
		proc := fld.Display
		if proc == nil {
			proc = factory(Options{Field: fld, Theme: theme, TimeZone: timeZone})
		}

		raw := fld.ValueAt(row)
		dv := proc(raw)
		out[fld.Name] = FieldValue{Raw: raw, Numeric: dv.Numeric, Text: dv.String()}
	}

	return out
}

// Scope converts the proxy into nested maps usable as a template variable
// value, e.g. ${__data.fields.cpu.text}.
func (p Proxy) Scope() map[string]any {
	out := make(map[string]any, len(p))
	for name, v := range p {
		out[name] = map[string]any{
			"raw":     v.Raw,
			"numeric": v.Numeric,
			"text":    v.Text,
		}
	}

	return out
}
