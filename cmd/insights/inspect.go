package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/urfave/cli/v2"

	"github.com/SH118415/insights-core/internal/core"
	"github.com/SH118415/insights-core/internal/l10n"
	"github.com/SH118415/insights-core/internal/parsers"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     l10n.T("parse a configuration file and print its sections"),
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: l10n.T("canonical path selecting the parser, when PATH is a copy of the file"),
			},
		},
		Action: inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf(l10n.T("expected exactly one PATH argument"))
	}
	path := c.Args().First()

	canonical := c.String("type")
	if canonical == "" {
		canonical = path
	}
	factory, ok := parsers.For(canonical)
	if !ok {
		return fmt.Errorf(l10n.T("no parser registered for %s"), canonical)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(l10n.T("failed to read %s: %w"), path, err)
	}

	cfg := factory(core.Context{Path: canonical, Content: string(data)})
	printConfig(c.App.Writer, cfg)
	return nil
}

// printConfig writes sections in first-seen order with keys sorted, in
// the same dialect the file was written in.
func printConfig(w io.Writer, cfg parsers.ConfigFile) {
	for _, name := range cfg.Sections() {
		fmt.Fprintf(w, "[ %s ]\n", name)

		section, _ := cfg.Get(name)
		keys := make([]string, 0, len(section))
		for key := range section {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		for _, key := range keys {
			value, _ := section.Get(key)
			fmt.Fprintf(w, "%s = %s\n", key, value)
		}
		fmt.Fprintln(w)
	}
}
