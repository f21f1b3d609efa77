package registry

import (
	"fieldoverrides/internal/frame"
	"fieldoverrides/internal/vars"
)

// Context is passed to processors while a field is being resolved.
type Context struct {
	// Field is the original (unresolved) field.
	Field *frame.Field
	// Data is every frame of the resolution call.
	Data []*frame.Frame
	// FrameIndex is the index of Field's frame in Data.
	FrameIndex int
	// ReplaceVariables interpolates templates. Never nil.
	ReplaceVariables vars.InterpolateFunc
	// ScopedVars are the variables of the field being resolved.
	ScopedVars vars.ScopedVars
}

// Info describes a property.
type Info struct {
	ID          string
	Name        string
	Description string
	// Path is the dotted path of the property inside its namespace.
	Path string
	// IsCustom routes the property to the custom namespace.
	IsCustom bool
	// DefaultValue is the value a new panel starts with, if any.
	DefaultValue any
	Category     []string
}

// Property is a configurable field property.
type Property interface {
	Info() Info
	// ShouldApply reports whether the property is meaningful for f.
	ShouldApply(f *frame.Field) bool
	// Process converts a raw value. A nil result removes the property.
	Process(value any, ctx *Context) any
}

// ProcessFunc converts a raw value using the item's settings.
type ProcessFunc func(value any, ctx *Context, settings any) any

// Item is the standard Property implementation.
type Item struct {
	Meta      Info
	Settings  any
	Processor ProcessFunc
	// Applies defaults to "every field" when nil.
	Applies func(f *frame.Field) bool
}

// Info implements Property.
func (i *Item) Info() Info { return i.Meta }

// ShouldApply implements Property.
func (i *Item) ShouldApply(f *frame.Field) bool {
	if i.Applies == nil {
		return true
	}

	return i.Applies(f)
}

// Process implements Property.
func (i *Item) Process(value any, ctx *Context) any {
	if i.Processor == nil {
		return value
	}

	return i.Processor(value, ctx, i.Settings)
}
