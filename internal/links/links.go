// Package links binds a field's data link templates to a lazily evaluated
// supplier. Links are only interpolated when a renderer asks for them,
// for a specific row or for a reduced value.
package links

import (
	"strings"

	"fieldoverrides/internal/common"
	"fieldoverrides/internal/display"
	"fieldoverrides/internal/frame"
	"fieldoverrides/internal/urlutil"
	"fieldoverrides/internal/vars"
)

const (
	targetBlank = "_blank"
	targetSelf  = "_self"
)

// Options holds the collaborators a supplier needs at evaluation time.
type Options struct {
	ReplaceVariables vars.InterpolateFunc
	Locator          urlutil.Locator
	Display          display.Factory
	Theme            display.Theme
	TimeZone         string
}

// NewSupplier returns the link supplier of field, a resolved field of f.
// scoped are the field's variables (__series, __field).
func NewSupplier(f *frame.Frame, field *frame.Field, scoped vars.ScopedVars, opts Options) frame.LinkSupplier {
	if opts.ReplaceVariables == nil {
		opts.ReplaceVariables = vars.Interpolate
	}

	if opts.Locator == nil {
		opts.Locator = urlutil.Static{}
	}

	return func(cfg frame.ValueLinkConfig) []frame.LinkModel {
		configured := field.Config.Links()
		if common.IsEmpty(configured) {
			return []frame.LinkModel{}
		}

		scope := linkScope(f, field, scoped, cfg, opts)
		out := make([]frame.LinkModel, 0, len(configured))

		for _, link := range configured {
			href := opts.Locator.AssureBaseURL(strings.ReplaceAll(link.URL, "\n", ""))
			href = opts.ReplaceVariables(href, scope)

			target := targetSelf
			if link.TargetBlank {
				target = targetBlank
			}

			out = append(out, frame.LinkModel{
				Href:   opts.Locator.ProcessURL(href),
				Title:  opts.ReplaceVariables(link.Title, scope),
				Target: target,
				Origin: field,
			})
		}

		return out
	}
}

// linkScope builds the variables visible to a link for one value context.
func linkScope(
	f *frame.Frame,
	field *frame.Field,
	scoped vars.ScopedVars,
	cfg frame.ValueLinkConfig,
	opts Options,
) vars.ScopedVars {
	timeRange := opts.Locator.TimeRangeURLParams()
	variables := opts.Locator.VariablesURLParams()

	extra := vars.ScopedVars{
		vars.KeepTimeVar:    {Text: timeRange, Value: timeRange},
		vars.IncludeVarsVar: {Text: variables, Value: variables},
	}

	valueVars := map[string]any{}

	switch {
	case cfg.ValueRowIndex != nil:
		row := *cfg.ValueRowIndex
		data := map[string]any{
			"name":   f.Name,
			"refId":  f.RefID,
			"fields": map[string]any{},
		}

		// A row outside the frame keeps the row context with empty values.
		if common.IsInRange(0, row, f.Length()-1) {
			proxy := display.FieldsProxy(f, row, opts.Display, opts.Theme, opts.TimeZone)

			valueVars["raw"] = field.ValueAt(row)
			if fv, ok := proxy[field.Name]; ok {
				valueVars["numeric"] = fv.Numeric
				valueVars["text"] = fv.Text
			}

			if tf, _, ok := f.TimeField(); ok {
				valueVars["time"] = tf.ValueAt(row)
			}

			data["fields"] = proxy.Scope()
		}

		extra[vars.DataVar] = vars.ScopedVar{Text: "Data", Value: data}
	case cfg.CalculatedValue != nil:
		valueVars["raw"] = cfg.CalculatedValue.Numeric
		valueVars["numeric"] = cfg.CalculatedValue.Numeric
		valueVars["text"] = cfg.CalculatedValue.String()
	}

	extra[vars.ValueVar] = vars.ScopedVar{Text: "Value", Value: valueVars}

	return scoped.With(extra)
}
