package app

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"

	"bitenum-generator/internal/analyze"
	"bitenum-generator/internal/width"
)

// exactCapacityBits is the widest width whose value count is printed in
// full; wider ones are printed as a power of two.
const exactCapacityBits = 32

func check(c *cli.Context) error {
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

	var multiErr error
	for _, res := range results {
		for _, r := range res.Results {
			printAnalysis(c.App.Writer, r.Analysis)
		}

		multiErr = errors.NewMultiError(multiErr, failure(res))
	}

	return multiErr
}

// printAnalysis prints one line per type, e.g.
// "ok modes.Mode u3: 3 of 8 raw values mapped (37.5%), fallible".
func printAnalysis(w io.Writer, a *analyze.Analysis) {
	unconditional := len(a.Unconditional())

	details := []string{fmt.Sprintf("%s of %s raw values mapped (%s%%)",
		humanize.Comma(int64(unconditional)),
		capacityString(a.Profile),
		humanize.Ftoa(math.Round(a.Coverage()*1000)/10),
	)}

	if conditional := len(a.Variants) - unconditional; conditional > 0 {
		details = append(details, fmt.Sprintf("%d conditional in %d group(s)", conditional, len(a.Groups)))
	}

	if a.Fallible {
		details = append(details, "fallible")
	} else {
		details = append(details, "exhaustive")
	}

	if a.Enum.Definition {
		details = append(details, "definition")
	}

	fmt.Fprintf(w, "%s %s.%s u%d: %s\n",
		color.GreenString("ok"),
		a.Enum.Package,
		a.Enum.Name,
		a.Profile.Bits,
		strings.Join(details, ", "),
	)
}

func capacityString(p width.Profile) string {
	n, ok := p.Capacity()
	if !ok || p.Bits > exactCapacityBits {
		return fmt.Sprintf("2^%d", p.Bits)
	}

	return humanize.Comma(int64(n))
}
