// Package stats reduces a field's values to summary statistics.
package stats

import (
	"math"
	"strings"
	"time"

	"github.com/spf13/cast"

	"fieldoverrides/internal/frame"
)

// ReducerID names a statistic.
type ReducerID string

const (
	ReducerMin   ReducerID = "min"
	ReducerMax   ReducerID = "max"
	ReducerSum   ReducerID = "sum"
	ReducerMean  ReducerID = "mean"
	ReducerLast  ReducerID = "last"
	ReducerFirst ReducerID = "first"
	ReducerCount ReducerID = "count"
)

// Reducer computes statistics of a field.
type Reducer interface {
	Reduce(f *frame.Field, ids []ReducerID) map[ReducerID]float64
}

// ReducerFunc adapts a function to Reducer.
type ReducerFunc func(f *frame.Field, ids []ReducerID) map[ReducerID]float64

// Reduce implements Reducer.
func (fn ReducerFunc) Reduce(f *frame.Field, ids []ReducerID) map[ReducerID]float64 {
	return fn(f, ids)
}

// Default is the built-in Reducer. Null and non-numeric values are skipped.
var Default Reducer = ReducerFunc(Reduce)

// Reduce computes every requested statistic in a single pass. Without any
// numeric value min is +Inf, max is -Inf and mean, first and last are NaN.
func Reduce(f *frame.Field, ids []ReducerID) map[ReducerID]float64 {
	var (
		minV, maxV  = math.Inf(1), math.Inf(-1)
		sum         float64
		count       int
		first, last = math.NaN(), math.NaN()
	)

	for i := range f.Len() {
		v, ok := toNumber(f.Values.At(i))
		if !ok {
			continue
		}

		if count == 0 {
			first = v
		}

		last = v
		sum += v
		count++
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	out := make(map[ReducerID]float64, len(ids))

	for _, id := range ids {
		switch id {
		case ReducerMin:
			out[id] = minV
		case ReducerMax:
			out[id] = maxV
		case ReducerSum:
			out[id] = sum
		case ReducerCount:
			out[id] = float64(count)
		case ReducerFirst:
			out[id] = first
		case ReducerLast:
			out[id] = last
		case ReducerMean:
			if count == 0 {
				out[id] = math.NaN()
			} else {
				out[id] = sum / float64(count)
			}
		}
	}

	return out
}

func toNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case nil, bool:
		return 0, false
	case string:
		if strings.TrimSpace(val) == "" {
			return 0, false
		}

		v = strings.TrimSpace(val)
	case time.Time:
		return float64(val.UnixMilli()), true
	}

	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}

	return f, true
}
