// Package command provides CLI command definitions for tasktrack.
package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/output"
	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

// DeleteCommand returns the delete command.
func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a task by id",
		ArgsUsage: "ID",
		Action:    deleteAction,
	}
}

func deleteAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("task id required")
	}
	id, err := parseTaskID(c.Args().First())
	if err != nil {
		return err
	}

	tracker, err := getTracker(c)
	if err != nil {
		return err
	}

	err = tracker.Remove(c.Context, id)
	switch {
	case err == nil:
		output.Deleted(c.App.Writer, id)
	case errors.Is(err, domain.ErrTaskNotFound):
		output.NotFound(c.App.Writer, id)
	default:
		return err
	}

	return nil
}
