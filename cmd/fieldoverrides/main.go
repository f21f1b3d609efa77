// Package main provides the CLI entrypoint for fieldoverrides.
//
// fieldoverrides resolves panel documents (data frames plus a field
// configuration of defaults and override rules) and prints the effective
// configuration of every field:
//   - resolve: apply defaults and overrides, print the resolved frames
//   - check: report structural problems and unknown ids
//   - properties, matchers: list the registered properties and matchers
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
