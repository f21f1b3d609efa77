package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGuessFieldType(t *testing.T) {
	leadingNulls := make(ArrayVector, 60)
	leadingNulls[59] = 1.0

	tests := []struct {
		name     string
		field    *Field
		expected FieldType
		ok       bool
	}{
		{name: "time by name", field: &Field{Name: "time", Values: ArrayVector{"x"}}, expected: FieldTypeTime, ok: true},
		{name: "Time by name", field: &Field{Name: "Time"}, expected: FieldTypeTime, ok: true},
		{name: "float", field: &Field{Name: "v", Values: ArrayVector{nil, 1.5}}, expected: FieldTypeNumber, ok: true},
		{name: "int", field: &Field{Name: "v", Values: ArrayVector{int64(3)}}, expected: FieldTypeNumber, ok: true},
		{name: "numeric string", field: &Field{Name: "v", Values: ArrayVector{" -1.5e3 "}}, expected: FieldTypeNumber, ok: true},
		{name: "bool", field: &Field{Name: "v", Values: ArrayVector{true}}, expected: FieldTypeBoolean, ok: true},
		{name: "bool string", field: &Field{Name: "v", Values: ArrayVector{"False"}}, expected: FieldTypeBoolean, ok: true},
		{name: "string", field: &Field{Name: "v", Values: ArrayVector{"abc"}}, expected: FieldTypeString, ok: true},
		{name: "time value", field: &Field{Name: "v", Values: ArrayVector{time.Now()}}, expected: FieldTypeTime, ok: true},
		{name: "other", field: &Field{Name: "v", Values: ArrayVector{[]int{1}}}, expected: FieldTypeOther, ok: true},
		{name: "all nil", field: &Field{Name: "v", Values: ArrayVector{nil, nil}}},
		{name: "no values", field: &Field{Name: "v"}},
		{name: "too many leading nulls", field: &Field{Name: "v", Values: leadingNulls}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GuessFieldType(tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEffectiveType(t *testing.T) {
	assert.Equal(t, FieldTypeString, EffectiveType(&Field{Type: FieldTypeString, Values: ArrayVector{1}}))
	assert.Equal(t, FieldTypeNumber, EffectiveType(&Field{Values: ArrayVector{1}}))
	assert.Equal(t, FieldTypeNumber, EffectiveType(&Field{Type: FieldTypeOther, Values: ArrayVector{"2"}}))
	assert.Equal(t, FieldTypeOther, EffectiveType(&Field{Type: FieldTypeOther}))
}

func TestFrameHelpers(t *testing.T) {
	f := &Frame{Fields: []*Field{
		{Name: "v", Type: FieldTypeNumber, Values: ArrayVector{1, 2, 3}},
		{Name: "ts", Values: ArrayVector{time.Now(), time.Now(), time.Now()}},
	}}

	assert.Equal(t, 3, f.Length())
	assert.Zero(t, (&Frame{}).Length())

	got, ok := f.FieldByName("v")
	assert.True(t, ok)
	assert.Same(t, f.Fields[0], got)

	_, ok = f.FieldByName("missing")
	assert.False(t, ok)

	tf, idx, ok := f.TimeField()
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Same(t, f.Fields[1], tf)

	_, idx, ok = (&Frame{Fields: f.Fields[:1]}).TimeField()
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	assert.Nil(t, f.Fields[0].ValueAt(3))
	assert.Nil(t, f.Fields[0].ValueAt(-1))
	assert.Equal(t, 2, f.Fields[0].ValueAt(1))
	assert.Zero(t, (&Field{}).Len())
}

func TestFieldTypeIsValid(t *testing.T) {
	assert.True(t, FieldTypeBoolean.IsValid())
	assert.False(t, FieldType("decimal").IsValid())
	assert.False(t, FieldType("").IsValid())
}

func TestLinkConfigs(t *testing.T) {
	row := RowLink(4)
	assert.Equal(t, 4, *row.ValueRowIndex)
	assert.Nil(t, row.CalculatedValue)

	calc := CalculatedLink(DisplayValue{Text: "1", Prefix: "$", Suffix: "k"})
	assert.Nil(t, calc.ValueRowIndex)
	assert.Equal(t, "$1k", calc.CalculatedValue.String())
}
