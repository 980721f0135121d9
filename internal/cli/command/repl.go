// Package command provides CLI command definitions for tasktrack.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/repl"
)

// ReplCommand returns the interactive mode command.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Start interactive mode",
		Action: func(c *cli.Context) error {
			tracker, err := getTracker(c)
			if err != nil {
				return err
			}

			r := repl.New(tracker,
				repl.WithInput(c.App.Reader),
				repl.WithOutput(c.App.Writer),
			)
			return r.Run(c.Context)
		},
	}
}
