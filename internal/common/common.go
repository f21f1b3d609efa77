// Package common holds small helpers shared across the resolver packages.
package common

// UnknownStr is the String() value of enum members outside their known range.
const UnknownStr = "unknown"
