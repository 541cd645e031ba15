package main

import (
	"autotable/sources/configuration"
	"autotable/sources/metrics"
	"autotable/sources/platform"
	"autotable/sources/tracing"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"
)

var (
	version   = "0.0.0"
	buildTime = "1970-01-01"
)

type CLI struct {
	Config    string `help:"Path to the yaml configuration file. Falls back to the CONFIG_PATH variable, then config.yaml." type:"path"`
	LogLevel  string `help:"Log level: debug, info, warn or error." default:"warn" env:"LOG_LEVEL"`
	LogFormat string `help:"Log format." enum:"json,text" default:"text" env:"LOG_FORMAT"`

	Expand  ExpandCmd        `cmd:"" default:"withargs" help:"Expand title fragments into ordered index lists."`
	Serve   ServeCmd         `cmd:"" help:"Serve the expansion API together with health and metrics endpoints."`
	Version kong.VersionFlag `help:"Print version and exit."`
}

// modules is the ambient stack shared by every command.
func (c *CLI) modules() fx.Option {
	return fx.Options(
		fx.NopLogger,
		fx.Supply(&tracing.LoggerConfig{
			Level:  tracing.ParseLevel(c.LogLevel),
			Format: c.LogFormat,
			Output: os.Stderr,
		}),
		fx.Supply(configuration.NewSource(c.Config)),
		tracing.Module,
		configuration.Module,
		metrics.Module,
	)
}

func main() {
	platform.SetAppManifest(version, buildTime, time.Now())

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("autotable"),
		kong.Description("Classifies episode and chapter title markers and expands them into index lists."),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("autotable %s (built %s)", version, buildTime)},
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}
