// Package main provides the CLI entrypoint for aliasctl.
//
// aliasctl loads a YAML alias table and:
//   - resolves terms (arguments or stdin lines) to their representatives
//   - reports whether terms are known
//   - checks a table for collisions and shadowed aliases
//   - dumps the derived lookup table
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
