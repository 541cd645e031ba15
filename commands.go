package main

import (
	"autotable/sources/configuration"
	"autotable/sources/expansion"
	"autotable/sources/external"
	"autotable/sources/platform"
	"autotable/sources/tracing"
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/fx"
)

type ExpandCmd struct {
	Titles      []string `arg:"" optional:"" help:"Title fragments such as 1-3 or 1、2、5-7. Read from --file or stdin when omitted."`
	File        string   `short:"f" type:"existingfile" help:"Read titles from a file, one per line."`
	Format      string   `short:"o" enum:"text,json,yaml" default:"text" help:"Report format: text, json or yaml."`
	StrictMixed bool     `help:"Reject mixed titles enumerated with the full-width comma."`
}

func (c *ExpandCmd) Run(cli *CLI) error {
	return c.run(cli.modules(), os.Stdin, os.Stdout)
}

func (c *ExpandCmd) run(modules fx.Option, stdin io.Reader, stdout io.Writer) error {
	format, err := expansion.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	raws, err := c.titles(stdin)
	if err != nil {
		return err
	}

	var expander *expansion.Expander
	app := fx.New(
		modules,
		expansion.Module,
		fx.Decorate(func(config *configuration.Config) *configuration.Config {
			if c.StrictMixed {
				config.Titles.StrictMixedSeparators = true
			}
			return config
		}),
		fx.Populate(&expander),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	outcomes := expander.ExpandAll(raws)
	if err := expansion.WriteReport(stdout, format, outcomes); err != nil {
		return err
	}

	if summary := expansion.Summarize(outcomes); summary.Failed > 0 {
		return fmt.Errorf("%d of %d titles could not be expanded", summary.Failed, summary.Titles)
	}
	return nil
}

// titles collects input from positional arguments, then --file, then stdin.
// Blank lines are skipped; every other line is one title.
func (c *ExpandCmd) titles(stdin io.Reader) ([]string, error) {
	if len(c.Titles) > 0 {
		return c.Titles, nil
	}

	source := stdin
	if c.File != "" {
		file, err := os.Open(c.File)
		if err != nil {
			return nil, fmt.Errorf("failed to open titles file: %w", err)
		}
		defer file.Close()
		source = file
	}

	var raws []string
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			raws = append(raws, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read titles: %w", err)
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("no titles given")
	}
	return raws, nil
}

type ServeCmd struct{}

func (c *ServeCmd) Run(cli *CLI) error {
	app := fx.New(
		cli.modules(),
		expansion.Module,
		external.Module,

		fx.Invoke(func(lc fx.Lifecycle, log *tracing.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(ctx context.Context) error {
					log.I("Autotable started successfully", "version", platform.GetAppVersion(), "build_time", platform.GetAppBuildTime())
					return nil
				},
				OnStop: func(ctx context.Context) error {
					log.I("Autotable stopped", "version", platform.GetAppVersion(), "uptime", platform.GetAppUptime().String())
					return nil
				},
			})
		}),
	)
	if err := app.Err(); err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	app.Run()
	return nil
}
