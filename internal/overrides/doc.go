// Package overrides resolves the effective configuration of every field of
// a set of frames.
//
// Resolution merges, per field, the field's own configuration, the panel
// defaults and the override rules whose matcher selects the field. Rules
// apply in order, so for a given property the last matching rule wins.
// The result is a new set of frames whose fields carry the merged
// configuration, a display processor and a lazy link supplier; the input
// frames are never modified.
//
// Unknown matcher and property ids are skipped. They can be reported
// through Options.Diagnostics without changing the result.
package overrides
