// Package main provides the CLI entrypoint for mixer.
//
// mixer checks merge schemas against stub targets without running real
// member implementations:
//   - check: lint and dry-run plan files, reporting member chains
//   - strategies: list the composition strategies and their facets
package main

import "os"

func main() {
	if err := New().Execute(); err != nil {
		os.Exit(1)
	}
}
