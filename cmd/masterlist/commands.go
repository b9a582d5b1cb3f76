package main

import (
	"context"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"masterlist/common"
	"masterlist/config"
	"masterlist/generate"
	"masterlist/state"
)

const renderHelp = `
SOURCE:
    spreadsheet to read rows from, either
        a workbook file: "[path_to_file]file.xlsx"
        a workbook inside zip archive: "[path_to_archive]archive.zip/[path_in_archive]file.xlsx"

    Every sheet must have columns named by source.name_column and
    source.id_column in its first non-empty row.

DESTINATION:
    directory for pages, output.directory when absent

Flags given on command line win over configuration file values.
`

const bundleHelp = `
SOURCE_DIR:
    directory with PNG pages, pages go into PDF in natural name order

DESTINATION:
    PDF file, when absent output.pdf.name is expanded and put into SOURCE_DIR
`

const dumpHelp = `
DESTINATION:
    file to write configuration to, STDOUT when absent

Without --default prints configuration in effect: embedded defaults with
configuration file values laid over them.
`

func commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:               "render",
			Usage:              "Renders spreadsheet rows into PNG pages",
			OnUsageError:       usageError,
			Action:             generate.Run,
			Flags:              generate.RenderFlags(),
			ArgsUsage:          "SOURCE [DESTINATION]",
			CustomHelpTemplate: cli.CommandHelpTemplate + renderHelp,
		},
		{
			Name:         "bundle",
			Usage:        "Bundles previously rendered PNG pages into PDF",
			OnUsageError: usageError,
			Action:       generate.Bundle,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "prefix", Usage: "only use pages with file names starting with `PREFIX`"},
			},
			ArgsUsage:          "SOURCE_DIR [DESTINATION]",
			CustomHelpTemplate: cli.CommandHelpTemplate + bundleHelp,
		},
		{
			Name:  "dumpconfig",
			Usage: "Dumps either default or active configuration (YAML)",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
			},
			OnUsageError:       usageError,
			Action:             dumpConfig,
			ArgsUsage:          "[DESTINATION]",
			CustomHelpTemplate: cli.CommandHelpTemplate + dumpHelp,
		},
	}
}

func dumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		kind = "active"
		data []byte
		err  error
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	fname := cmd.Args().Get(0)
	var out io.Writer = env.Out
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return common.IO("unable to create destination file %q: %w", fname, err)
		}
		defer f.Close()
		out = f
	} else {
		fname = "STDOUT"
	}
	env.Log.Info("Writing configuration", zap.String("kind", kind), zap.String("file", fname))

	if _, err := out.Write(data); err != nil {
		return common.IO("unable to write configuration: %w", err)
	}
	return nil
}
