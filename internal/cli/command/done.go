// Package command provides CLI command definitions for tasktrack.
package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/output"
	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

// DoneCommand returns the done command.
func DoneCommand() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark a task as done by id",
		ArgsUsage: "ID",
		Action:    doneAction,
	}
}

func doneAction(c *cli.Context) error {
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

	task, err := tracker.Complete(c.Context, id)
	switch {
	case err == nil:
		output.Completed(c.App.Writer, task)
	case errors.Is(err, domain.ErrTaskAlreadyDone):
		output.AlreadyDone(c.App.Writer, id)
	case errors.Is(err, domain.ErrTaskNotFound):
		output.NotFound(c.App.Writer, id)
	default:
		return err
	}

	return nil
}
