// Package command provides CLI command definitions for tasktrack.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/output"
)

// AddCommand returns the add command.
func AddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		ArgsUsage: "TITLE",
		Description: "Adds an open task with the given title. Quote the title\n" +
			"if it contains spaces.",
		Action: addAction,
	}
}

func addAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("task title required (exactly one argument)")
	}

	tracker, err := getTracker(c)
	if err != nil {
		return err
	}

	task, err := tracker.Add(c.Context, c.Args().First())
	if err != nil {
		return err
	}

	output.Added(c.App.Writer, task)
	return nil
}
