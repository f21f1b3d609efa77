package overrides

import (
	"math"

	"fieldoverrides/internal/frame"
	"fieldoverrides/internal/stats"
)

// GlobalMinMax is the numeric range across every numeric field.
type GlobalMinMax struct {
	Min float64
	Max float64
}

// IsEmpty reports the degenerate range returned when no numeric value was
// found.
func (r GlobalMinMax) IsEmpty() bool {
	return r.Min > r.Max
}

// FindNumericFieldMinMax reduces every numeric field of frames and folds
// the results into one range. Without numeric values the result is
// {+MaxFloat64, -MaxFloat64}, which IsEmpty reports.
func FindNumericFieldMinMax(frames []*frame.Frame, reducer stats.Reducer) GlobalMinMax {
	if reducer == nil {
		reducer = stats.Default
	}

	out := GlobalMinMax{Min: math.MaxFloat64, Max: -math.MaxFloat64}
	ids := []stats.ReducerID{stats.ReducerMin, stats.ReducerMax}

	for _, f := range frames {
		if f == nil {
			continue
		}

		for _, field := range f.Fields {
			if field == nil || frame.EffectiveType(field) != frame.FieldTypeNumber {
				continue
			}

			calcs := reducer.Reduce(field, ids)
			if v, ok := calcs[stats.ReducerMin]; ok && v < out.Min {
				out.Min = v
			}

			if v, ok := calcs[stats.ReducerMax]; ok && v > out.Max {
				out.Max = v
			}
		}
	}

	return out
}
