// Package registry provides the ordered registry of configurable field
// properties and the processors that normalize raw property values.
//
// A property declares where it lives in a FieldConfig (a dotted path, in
// the standard or the custom namespace), which fields it applies to and how
// a raw value is converted. A processor returning nil means "remove the
// property", not "set it to nil".
//
// Registries are built once and only read afterwards; concurrent reads are
// safe, concurrent Register calls are not.
package registry
