// Package suggest finds registered ids close to a misspelled one.
//
// Ids are compared after normalization (case folding, separator removal)
// using the Levenshtein edit distance, so "by-name", "ByName" and "byname"
// all suggest the "byName" matcher.
package suggest
