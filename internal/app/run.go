package app

import (
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"

	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/diagnostic"
	"bitenum-generator/internal/expand"
	"bitenum-generator/internal/gen"
	"bitenum-generator/internal/match"
	"bitenum-generator/options"
)

// expandPackages loads the packages named by the arguments, "." if there are
// none, and expands their annotated types. A nil generator only analyzes.
func expandPackages(c *cli.Context, opts *options.Options, g *gen.Generator) ([]*expand.PackageResult, error) {
	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		patterns = []string{"."}
	}

	loader := analyze.NewLoader(opts.DefinitionTag, logrus.StandardLogger())
	loader.Dir = c.String("dir")

	pkgs, err := loader.Load(c.Context, patterns...)
	if err != nil {
		return nil, errors.Errorf("could not load packages, reason: %w", err)
	}

	runner := &expand.Runner{
		Generator: g,
		Types:     opts.Types,
		Workers:   opts.Workers,
		Log:       logrus.StandardLogger(),
	}

	results := make([]*expand.PackageResult, 0, len(pkgs))
	for _, pkg := range pkgs {
		res, err := runner.Package(c.Context, pkg)
		if err != nil {
			return nil, err
		}

		printDiagnostics(c.App.ErrWriter, res.Diagnostics)
		results = append(results, res)
	}

	warnUnknownTypes(c.App.ErrWriter, opts.Types, results)

	return results, nil
}

// warnUnknownTypes reports the requested types that no package annotates.
func warnUnknownTypes(w io.Writer, types []string, results []*expand.PackageResult) {
	var annotated []string
	for _, res := range results {
		annotated = append(annotated, res.Annotated...)
	}

	for _, name := range types {
		if slices.Contains(annotated, name) {
			continue
		}

		logrus.WithField("type", name).Debug("Requested type not found.")
		fmt.Fprintf(w, "%s no annotated type %s%s\n", color.YellowString("warning:"), name, match.Hint(name, annotated))
	}
}

// failure summarizes the errors of a package that did not expand completely.
func failure(res *expand.PackageResult) error {
	if res.OK() {
		return nil
	}

	return errors.Newf("%s: %d annotated type(s) failed", res.Package.Path, len(res.Diagnostics.Errors))
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fmt.Fprintln(w, color.YellowString("warning:"), d)
	}
	for _, d := range diags.Errors {
		fmt.Fprintln(w, color.RedString("error:"), d)
	}
}
