package expand

import (
	"context"
	"io"
	"runtime"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/diagnostic"
	"bitenum-generator/internal/gen"
)

// Runner expands the annotated types of packages.
type Runner struct {
	// Generator renders the files; nil runs the analysis only.
	Generator *gen.Generator
	// Types restricts the expansion to the named types when not empty.
	Types []string
	// Workers bounds the number of concurrent expansions; GOMAXPROCS if <= 0.
	Workers int
	// Log receives progress output; silent if nil.
	Log logrus.FieldLogger
}

// PackageResult is the outcome of expanding the types of one package.
type PackageResult struct {
	Package *analyze.Package
	// Annotated names every annotated type of the package, selected or not.
	Annotated []string
	// Results holds the successful expansions in declaration order.
	Results []*Result
	// Diagnostics holds extraction problems and failed expansions.
	Diagnostics diagnostic.Diagnostics
}

// OK reports whether every type of the package was expanded.
func (r *PackageResult) OK() bool {
	return !r.Diagnostics.HasErrors()
}

// Files returns the generated files of all results.
func (r *PackageResult) Files() []gen.GeneratedFile {
	var files []gen.GeneratedFile
	for _, res := range r.Results {
		files = append(files, res.Files...)
	}

	return files
}

// Package expands every annotated type of pkg. Expansion failures are
// reported in the result's diagnostics; the returned error is only set when
// ctx is done.
func (r *Runner) Package(ctx context.Context, pkg *analyze.Package) (*PackageResult, error) {
	log := r.log().WithField("package", pkg.Path)
	res := &PackageResult{Package: pkg}

	enums := analyze.Extract(pkg, &res.Diagnostics)
	for _, e := range enums {
		res.Annotated = append(res.Annotated, e.Name)
	}

	if len(r.Types) > 0 {
		enums = slices.DeleteFunc(enums, func(e *analyze.EnumDescriptor) bool {
			return !slices.Contains(r.Types, e.Name)
		})
	}

	log.WithField("types", len(enums)).Debug("Extracted annotated types.")

	results := make([]*Result, len(enums))
	errs := make([]error, len(enums))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i, desc := range enums {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[i], errs[i] = r.expand(desc)

			fields := logrus.Fields{"type": desc.Name, "file": desc.Pos.Filename}
			if errs[i] != nil {
				log.WithFields(fields).WithError(errs[i]).Debug("Expansion failed.")
			} else {
				log.WithFields(fields).Debug("Expanded.")
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range enums {
		if errs[i] != nil {
			res.Diagnostics.AddError(errs[i])
			continue
		}

		res.Results = append(res.Results, results[i])
	}

	res.Diagnostics.Sort()

	return res, nil
}

func (r *Runner) expand(desc *analyze.EnumDescriptor) (*Result, error) {
	if r.Generator == nil {
		a, err := Analyze(desc)
		if err != nil {
			return nil, err
		}

		return &Result{Analysis: a}, nil
	}

	return Expand(desc, r.Generator)
}

func (r *Runner) workers() int {
	if r.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return r.Workers
}

func (r *Runner) log() logrus.FieldLogger {
	if r.Log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)

		return silent
	}

	return r.Log
}
