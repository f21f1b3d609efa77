package display

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"fieldoverrides/internal/fieldconfig"
	"fieldoverrides/internal/frame"
)

const timeLayout = "2006-01-02 15:04:05"

// Options configures a display processor.
type Options struct {
	Field    *frame.Field
	Theme    Theme
	TimeZone string
}

// Factory builds a display processor for a resolved field.
type Factory func(opts Options) frame.DisplayProcessor

// NewProcessor is the default Factory. It honours value mappings,
// decimals, percent units, thresholds-based color and the no-value text.
func NewProcessor(opts Options) frame.DisplayProcessor {
	field := opts.Field
	cfg := field.Config
	loc := location(opts.TimeZone)
	isTime := frame.EffectiveType(field) == frame.FieldTypeTime

	return func(value any) frame.DisplayValue {
		if text, ok := mapValue(cfg.Mappings(), value); ok {
			dv := frame.DisplayValue{Text: text, Numeric: math.NaN()}
			if n, ok := numeric(value); ok {
				dv.Numeric = n
				dv.Color = opts.Theme.Visualize(colorFor(&cfg, n))
			}

			return dv
		}

		if isTime {
			if t, ok := asTime(value); ok {
				return frame.DisplayValue{
					Text:    t.In(loc).Format(timeLayout),
					Numeric: float64(t.UnixMilli()),
				}
			}
		}

		n, isNum := numeric(value)
		if !isNum {
			if value == nil || isNaN(value) {
				return frame.DisplayValue{Text: cfg.NoValue(), Numeric: math.NaN()}
			}

			return frame.DisplayValue{Text: cast.ToString(value), Numeric: math.NaN()}
		}

		dv := formatNumber(&cfg, n)
		dv.Numeric = n
		dv.Color = opts.Theme.Visualize(colorFor(&cfg, n))

		return dv
	}
}

func formatNumber(cfg *fieldconfig.FieldConfig, n float64) frame.DisplayValue {
	unit := cfg.Unit()
	if unit == "percentunit" {
		n *= 100
	}

	prec := -1
	if d, ok := cfg.Decimals(); ok {
		prec = d
	}

	dv := frame.DisplayValue{Text: strconv.FormatFloat(n, 'f', prec, 64)}

	switch unit {
	case "", "none":
	case "percent", "percentunit":
		dv.Suffix = "%"
	default:
		dv.Suffix = " " + unit
	}

	return dv
}

// colorFor picks the color of n from the field's color policy.
func colorFor(cfg *fieldconfig.FieldConfig, n float64) string {
	col := cfg.Color()
	if col != nil && col.Mode == fieldconfig.ColorModeFixed {
		return col.FixedColor
	}

	if col != nil && col.Mode != fieldconfig.ColorModeThresholds {
		return ""
	}

	th := cfg.Thresholds()
	if th == nil || len(th.Steps) == 0 {
		return ""
	}

	v := n
	if th.Mode == fieldconfig.ThresholdsModePercentage {
		minV, okMin := cfg.Min()
		maxV, okMax := cfg.Max()
		if !okMin || !okMax || maxV == minV {
			return th.Steps[0].Color
		}

		v = (n - minV) / (maxV - minV) * 100
	}

	color := th.Steps[0].Color
	for _, step := range th.Steps[1:] {
		if v < step.Value {
			break
		}

		color = step.Color
	}

	return color
}

func mapValue(mappings []fieldconfig.ValueMapping, value any) (string, bool) {
	if len(mappings) == 0 || value == nil {
		return "", false
	}

	str := cast.ToString(value)
	n, isNum := numeric(value)

	for _, m := range mappings {
		switch m.Type {
		case fieldconfig.MappingTypeValue:
			if m.Value == str {
				return m.Text, true
			}

			if mv, err := strconv.ParseFloat(strings.TrimSpace(m.Value), 64); err == nil && isNum && mv == n {
				return m.Text, true
			}
		case fieldconfig.MappingTypeRange:
			if !isNum {
				continue
			}

			if (m.From == nil || n >= *m.From) && (m.To == nil || n <= *m.To) {
				return m.Text, true
			}
		}
	}

	return "", false
}

func numeric(value any) (float64, bool) {
	switch v := value.(type) {
	case nil, bool, time.Time:
		return 0, false
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil && !math.IsNaN(f)
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}

func isNaN(value any) bool {
	f, ok := value.(float64)
	return ok && math.IsNaN(f)
}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}

		return *v, true
	}

	if n, ok := numeric(value); ok {
		return time.UnixMilli(int64(n)), true
	}

	return time.Time{}, false
}

func location(tz string) *time.Location {
	switch strings.ToLower(tz) {
	case "", "utc":
		return time.UTC
	case "browser", "local":
		return time.Local
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}

	return loc
}
