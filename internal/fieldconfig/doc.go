// Package fieldconfig defines the per-field display configuration, the
// panel-level override source and the normalization that restores the
// configuration invariants.
//
// A FieldConfig keeps its properties in two explicit maps: Standard for the
// properties every field understands (unit, min, max, thresholds, ...) and
// Custom for plugin specific properties. Both maps are addressed by dotted
// paths; nested levels are copied before they are written, so a cloned
// configuration never writes through to the configuration it was cloned from.
//
// # Invariants
//
//   - Custom is nil until a custom property is set.
//   - After Validate, a non-empty threshold sequence starts at -Inf.
//   - After Validate, min <= max whenever both are numeric.
//   - After Validate, a color block always has a mode, and a scheme name only
//     in scheme mode.
package fieldconfig
