package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/SH118415/insights-core/internal/conf"
	"github.com/SH118415/insights-core/internal/l10n"
)

func main() {
	app := &cli.App{
		Name:    "insights",
		Version: "1.0.0",
		Usage:   l10n.T("inspect and collect system configuration facts"),
		Before: func(c *cli.Context) error {
			level := conf.Configuration.LogLevel
			if c.Bool("debug") {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: l10n.T("log at debug level regardless of configuration"),
			},
		},
		Commands: []*cli.Command{
			inspectCommand(),
			collectCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, l10n.T("error: %v\n"), err)
		os.Exit(1)
	}
}
