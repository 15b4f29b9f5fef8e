// Package main provides the CLI entrypoint for bitenum-generator.
//
// bitenum-generator reads Go packages, finds the types annotated with
// "//bitenum:enum uN[, exhaustive: ...]" and generates for each of them:
//   - a RawValue method packing a variant into an N-bit unsigned integer
//   - a New<Type>WithRawValue constructor mapping such integers back
//
// Run "bitenum-generator help" for the commands.
package main

import (
	"os"

	"bitenum-generator/internal/app"
)

func main() {
	app.RunApp(os.Args)
}
