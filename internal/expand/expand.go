// Package expand runs the expansion pipeline: directive arguments are parsed,
// the width is resolved, the variants are analyzed and the code is generated.
//
// Every expansion owns its records exclusively. Expansions of different types
// share nothing mutable, so Runner executes them concurrently.
package expand

import (
	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/config"
	"bitenum-generator/internal/diagnostic"
	"bitenum-generator/internal/gen"
	"bitenum-generator/internal/width"
)

// Result is the outcome of expanding one annotated type.
type Result struct {
	Analysis *analyze.Analysis
	// Files is empty when only the analysis was requested.
	Files []gen.GeneratedFile
}

// Analyze parses the directive of desc, resolves its width and checks its
// variants. Failures are returned as *diagnostic.Diagnostic.
func Analyze(desc *analyze.EnumDescriptor) (*analyze.Analysis, error) {
	cfg, err := config.Parse(desc.Directive)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.CodeInvalidDirective, desc.Pos, desc.Name, err)
	}

	profile, err := width.Resolve(cfg.Bits)
	if err != nil {
		return nil, diagnostic.Wrap(diagnostic.CodeInvalidDirective, desc.Pos, desc.Name, err)
	}

	return analyze.Analyze(desc, cfg, profile)
}

// Expand turns desc into generated files. It either returns every file of
// the type or an error; there is no partial output.
func Expand(desc *analyze.EnumDescriptor, g *gen.Generator) (*Result, error) {
	a, err := Analyze(desc)
	if err != nil {
		return nil, err
	}

	files, err := g.Generate(a)
	if err != nil {
		return nil, diagnostic.Wrap(0, desc.Pos, desc.Name, err)
	}

	return &Result{Analysis: a, Files: files}, nil
}
