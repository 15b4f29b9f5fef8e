package app

import (
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"

	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/common"
)

func dump(c *cli.Context) error {
	err := initAppAction(c)
	if err != nil {
		return err
	}

	opts, err := loadOptions(c)
	if err != nil {
		return err
	}

	results, err := expandPackages(c, opts, nil)
	if err != nil {
		return err
	}

	alias := common.PkgAlias(opts.Runtime)

	var (
		summaries []analyze.Summary
		multiErr  error
	)
	for _, res := range results {
		for _, r := range res.Results {
			summaries = append(summaries, r.Analysis.Summary(alias))
		}

		multiErr = errors.NewMultiError(multiErr, failure(res))
	}

	out, err := analyze.MarshalSummaries(summaries)
	if err != nil {
		return errors.Errorf("could not serialize the analysis, reason: %w", err)
	}

	if _, err := c.App.Writer.Write(out); err != nil {
		return err
	}

	return multiErr
}
