package frame

import (
	"regexp"
	"strings"
	"time"
)

var numberPattern = regexp.MustCompile(`^\s*-?\d+(\.\d+)?([eE][-+]?\d+)?\s*$`)

// maxGuessSamples bounds how many leading null values are skipped.
const maxGuessSamples = 50

// GuessFieldType infers a concrete type from a field's name and values.
// It returns false when nothing conclusive was found.
func GuessFieldType(f *Field) (FieldType, bool) {
	if f.Name == "time" || f.Name == "Time" {
		return FieldTypeTime, true
	}

	n := min(f.Len(), maxGuessSamples)
	for i := range n {
		v := f.Values.At(i)
		if v == nil {
			continue
		}

		return GuessFieldTypeFromValue(v), true
	}

	return "", false
}

// GuessFieldTypeFromValue returns the field type a single value suggests.
func GuessFieldTypeFromValue(v any) FieldType {
	switch val := v.(type) {
	case float64, float32, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return FieldTypeNumber
	case bool:
		return FieldTypeBoolean
	case time.Time, *time.Time:
		return FieldTypeTime
	case string:
		if numberPattern.MatchString(val) {
			return FieldTypeNumber
		}

		lower := strings.ToLower(strings.TrimSpace(val))
		if lower == "true" || lower == "false" {
			return FieldTypeBoolean
		}

		return FieldTypeString
	default:
		return FieldTypeOther
	}
}

// EffectiveType returns the declared type, or a guessed one when the
// declared type is empty or "other".
func EffectiveType(f *Field) FieldType {
	if f.Type != "" && f.Type != FieldTypeOther {
		return f.Type
	}

	if t, ok := GuessFieldType(f); ok {
		return t
	}

	return f.Type
}

// TimeField returns the first time field of the frame and its index.
func (f *Frame) TimeField() (*Field, int, bool) {
	for i, fld := range f.Fields {
		if EffectiveType(fld) == FieldTypeTime {
			return fld, i, true
		}
	}

	return nil, -1, false
}
