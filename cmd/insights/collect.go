package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/SH118415/insights-core/internal/collect"
	"github.com/SH118415/insights-core/internal/conf"
	"github.com/SH118415/insights-core/internal/l10n"
)

func collectCommand() *cli.Command {
	return &cli.Command{
		Name:  "collect",
		Usage: l10n.T("collect configuration files and host facts into an archive"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "output",
				Usage: l10n.T("directory to write the archive into"),
			},
		},
		Action: collectAction,
	}
}

func collectAction(c *cli.Context) error {
	var spin *spinner.Spinner
	if term.IsTerminal(int(os.Stdout.Fd())) {
		spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond)
		spin.Suffix = " " + l10n.T("Collecting...")
		spin.Start()
		defer spin.Stop()
	}

	collector := collect.New(conf.Configuration)
	archive, err := collector.Run(c.Context)
	if err != nil {
		return fmt.Errorf(l10n.T("collection failed: %w"), err)
	}

	dir := c.String("output")
	if dir == "" {
		dir = conf.Configuration.ArchiveDir
	}
	path, err := archive.Write(dir)
	if err != nil {
		return err
	}

	if spin != nil {
		spin.Stop()
	}
	fmt.Fprintf(c.App.Writer, l10n.T("Archive written to %s.\n"), path)
	return nil
}
