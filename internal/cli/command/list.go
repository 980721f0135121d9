// Package command provides CLI command definitions for tasktrack.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/output"
	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

// ListCommand returns the list command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List tasks",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "done",
				Usage: "Show completed tasks only",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "Show all tasks",
			},
		},
		Action: listAction,
	}
}

func listAction(c *cli.Context) error {
	if c.Bool("done") && c.Bool("all") {
		return fmt.Errorf("--done and --all are mutually exclusive")
	}

	filter := domain.FilterOpen
	switch {
	case c.Bool("all"):
		filter = domain.FilterAll
	case c.Bool("done"):
		filter = domain.FilterDone
	}

	tracker, err := getTracker(c)
	if err != nil {
		return err
	}

	tasks, err := tracker.List(c.Context, filter)
	if err != nil {
		return err
	}

	switch format := outputFormat(c); format {
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(c.App.Writer, tasks)
	case output.FormatTable:
		return renderTaskTable(c, tasks)
	default:
		output.TaskList(c.App.Writer, tasks)
		return nil
	}
}

func renderTaskTable(c *cli.Context, tasks []*domain.Task) error {
	table := &output.Table{}
	table.SetHeaders("ID", "TITLE", "STATUS", "CREATED", "DONE")
	for _, t := range tasks {
		doneAt := "-"
		if t.DoneAt != nil {
			doneAt = t.DoneAt.String()
		}
		table.AddRow(
			fmt.Sprintf("%d", t.ID),
			t.Title,
			string(t.Status),
			t.CreatedAt.String(),
			doneAt,
		)
	}

	if err := table.Render(c.App.Writer); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "\nTotal: %d tasks\n", len(tasks))
	return nil
}
