// Package diagnostic collects structured findings about a field
// configuration: unknown matcher and property ids, rejected matcher
// options and malformed frames.
//
// Findings never stop resolution. They are reported next to the result so
// a caller can surface configuration mistakes that would otherwise have no
// visible effect.
package diagnostic
