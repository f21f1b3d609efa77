package frame

import (
	"fieldoverrides/internal/common"
	"fieldoverrides/internal/fieldconfig"
)

// FieldType is the semantic type of a field's values.
type FieldType string

const (
	FieldTypeNumber  FieldType = "number"
	FieldTypeString  FieldType = "string"
	FieldTypeTime    FieldType = "time"
	FieldTypeBoolean FieldType = "boolean"
	FieldTypeOther   FieldType = "other"
)

// IsValid returns true if the type is one of the known field types.
func (t FieldType) IsValid() bool {
	switch t {
	case FieldTypeNumber, FieldTypeString, FieldTypeTime, FieldTypeBoolean, FieldTypeOther:
		return true
	default:
		return false
	}
}

// Vector is read access to a column of values.
type Vector interface {
	Len() int
	At(i int) any
}

// ArrayVector is a Vector backed by a slice.
type ArrayVector []any

// Len implements Vector.
func (v ArrayVector) Len() int { return len(v) }

// At implements Vector.
func (v ArrayVector) At(i int) any { return v[i] }

// Field is a single named, typed column plus its display configuration.
type Field struct {
	Name   string
	Type   FieldType
	Labels map[string]string
	Config fieldconfig.FieldConfig
	Values Vector

	// Display is set by the resolver and formats a raw value of this field.
	Display DisplayProcessor
	// GetLinks is set by the resolver and lazily builds the field's data links.
	GetLinks LinkSupplier
}

// Len returns the number of values in the field.
func (f *Field) Len() int {
	if f.Values == nil {
		return 0
	}

	return f.Values.Len()
}

// ValueAt returns the value at row i, or nil when out of range.
func (f *Field) ValueAt(i int) any {
	if i < 0 || i >= f.Len() {
		return nil
	}

	return f.Values.At(i)
}

// Frame is an ordered set of fields sharing a row count.
type Frame struct {
	Name   string
	RefID  string
	Meta   map[string]any
	Fields []*Field
}

// Length returns the row count of the frame (the length of its first field).
func (f *Frame) Length() int {
	first, ok := common.First(f.Fields)
	if !ok {
		return 0
	}

	return first.Len()
}

// FieldByName returns the first field with the given name.
func (f *Frame) FieldByName(name string) (*Field, bool) {
	return common.FirstMatch(f.Fields, func(fld *Field) bool { return fld.Name == name })
}
