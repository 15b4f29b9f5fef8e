// Package app implements the bitenum-generator command line.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/targodan/go-errors"
	"github.com/urfave/cli/v2"

	"bitenum-generator/options"
)

var onExit func()

func initAppAction(c *cli.Context) error {
	if c.Bool("no-color") {
		color.NoColor = true
	}

	lvl, err := logrus.ParseLevel(c.String("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	switch c.String("log-path") {
	case "-":
		logrus.SetOutput(os.Stdout)
	case "--":
		logrus.SetOutput(os.Stderr)
	default:
		logfile, err := os.OpenFile(c.String("log-path"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Errorf("could not open logfile for writing, reason: %w", err)
		}
		logrus.SetOutput(logfile)
		logrus.StandardLogger().ExitFunc = func(code int) {
			if onExit != nil {
				onExit()
			}
			os.Exit(code)
		}
		onExit = func() {
			logfile.Close()
		}
	}
	logrus.WithField("arguments", os.Args).Debug("Program started.")
	return nil
}

// loadOptions reads the options file and applies the command line overrides.
// A missing file is only an error when --config was given explicitly.
func loadOptions(c *cli.Context) (*options.Options, error) {
	var (
		opts *options.Options
		err  error
	)

	if c.IsSet("config") {
		opts, err = options.LoadFile(c.String("config"))
	} else {
		opts, err = options.LoadOptional(filepath.Join(c.String("dir"), c.String("config")))
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("runtime") {
		opts.Runtime = c.String("runtime")
	}
	if types := c.StringSlice("type"); len(types) > 0 {
		opts.Types = types
	}
	if c.IsSet("workers") {
		opts.Workers = c.Int("workers")
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Errorf("invalid options, reason: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"runtime": opts.Runtime,
		"suffix":  opts.Suffix,
		"types":   opts.Types,
	}).Debug("Options loaded.")

	return opts, nil
}

// NewApp builds the command line application. Results are written to the
// app's Writer, diagnostics to its ErrWriter.
func NewApp() *cli.App {
	selectionFlags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   "only consider the named types, may be repeated",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "number of types expanded concurrently, 0 for one per CPU",
		},
	}

	return &cli.App{
		Name:        "bitenum-generator",
		HelpName:    "bitenum-generator",
		Usage:       "generates raw value conversions for enumerations of a fixed bit width",
		Description: "Types annotated with \"//bitenum:enum uN[, exhaustive: true|false|conditional]\" get a RawValue method returning an N-bit unsigned integer and a constructor mapping such integers back to the variants.",
		Version:     "0.1.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "one of [trace, debug, info, warn, error, fatal, panic]",
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:  "log-path",
				Usage: "path to the logfile, or \"-\" for stdout, or \"--\" for stderr",
				Value: "--",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the options file",
				Value:   options.DefaultFile,
			},
			&cli.StringFlag{
				Name:    "dir",
				Aliases: []string{"C"},
				Usage:   "directory the package patterns and the options file are resolved in",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "gen",
				Aliases:   []string{"generate"},
				Usage:     "generates the conversions of the annotated types and writes them next to the sources",
				ArgsUsage: "[packages...]",
				Action:    generate,
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "runtime",
						Usage: "import path of the bounded integer package used by generated code",
					},
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Usage:   "list the files that would be written without writing them",
					},
					&cli.StringFlag{
						Name:  "debug-dir",
						Usage: "directory receiving the unformatted source of files that fail to format",
					},
				}, selectionFlags...),
			},
			{
				Name:      "check",
				Usage:     "analyzes the annotated types without writing anything",
				ArgsUsage: "[packages...]",
				Action:    check,
				Flags:     selectionFlags,
			},
			{
				Name:      "dump",
				Usage:     "prints the analysis of the annotated types as YAML",
				ArgsUsage: "[packages...]",
				Action:    dump,
				Flags:     selectionFlags,
			},
		},
	}
}

// RunApp runs the command line with the given arguments and exits on error.
func RunApp(args []string) {
	app := NewApp()

	err := app.Run(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		logrus.Error(err)
		logrus.Fatal("Aborting.")
	}
	if onExit != nil {
		onExit()
	}
}
