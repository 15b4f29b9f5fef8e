package app

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"

	"bitenum-generator/internal/common"
	"bitenum-generator/internal/expand"
	"bitenum-generator/internal/gen"
)

func generate(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}

	opts, err := loadOptions(c)
	if err != nil {
		return err
	}

	cfg := opts.GeneratorConfig()
	cfg.DebugDir = c.String("debug-dir")
	g := gen.NewGenerator(cfg)

	results, err := expandPackages(c, opts, g)
	if err != nil {
		return err
	}

	var (
		multiErr error
		written  int
	)
	for _, res := range results {
		// A package is written completely or not at all.
		if err := failure(res); err != nil {
			multiErr = errors.NewMultiError(multiErr, errors.Errorf("%w, no files written", err))
			continue
		}

		n, err := writePackage(c, g, res)
		if err != nil {
			multiErr = errors.NewMultiError(multiErr, errors.Errorf("could not write files of %s, reason: %w", res.Package.Path, err))
			continue
		}
		written += n
	}

	if !c.Bool("dry-run") {
		fmt.Fprintf(c.App.Writer, "wrote %d file(s) in %d package(s)\n", written, len(results))
	}

	return multiErr
}

func writePackage(c *cli.Context, g *gen.Generator, res *expand.PackageResult) (int, error) {
	dir := res.Package.Dir
	files := res.Files()
	log := logrus.WithField("package", res.Package.Path)

	if c.Bool("dry-run") {
		for _, f := range files {
			fmt.Fprintf(c.App.Writer, "%s (%s)\n", filepath.Join(dir, f.Filename), humanize.Bytes(uint64(len(f.Content))))
		}
		return 0, nil
	}

	if common.IsEmpty(files) {
		log.Debug("No annotated types.")
		return 0, nil
	}

	if err := gen.WriteFiles(files, dir); err != nil {
		return 0, err
	}

	for _, r := range res.Results {
		removed, err := gen.RemoveStale(dir, g.BaseName(r.Analysis), r.Files)
		if err != nil {
			return len(files), err
		}
		for _, name := range removed {
			log.WithField("file", name).Info("Removed stale file.")
		}
	}

	log.WithField("files", len(files)).Info("Wrote files.")

	return len(files), nil
}
