// Package command provides CLI command definitions for tasktrack.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "path",
				Usage:  "Print the resolved task file path",
				Action: configPath,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg := getConfig(c)

	switch format := outputFormat(c); format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(c.App.Writer, cfg)
	default:
		table := &output.Table{}
		table.SetHeaders("KEY", "VALUE")
		table.AddRow("store.path", cfg.Store.Path)
		table.AddRow("output.format", cfg.Output.Format)
		table.AddRow("log.level", cfg.Log.Level)
		table.AddRow("log.format", cfg.Log.Format)
		return table.Render(c.App.Writer)
	}
}

func configPath(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, getConfig(c).Store.Path)
	return nil
}
