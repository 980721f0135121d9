// Package repl provides the interactive REPL mode for the tasktrack CLI.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/yndnr/tasktrack-go/internal/cli/output"
	"github.com/yndnr/tasktrack-go/internal/core/domain"
	"github.com/yndnr/tasktrack-go/internal/core/service"
)

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	tracker   *service.Tracker
	completer *Completer
	history   *History
}

// Option configures a REPL.
type Option func(*REPL)

// WithInput sets the input stream. Defaults to stdin.
func WithInput(r io.Reader) Option {
	return func(rl *REPL) { rl.input = r }
}

// WithOutput sets the output stream. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(rl *REPL) { rl.output = w }
}

// WithHistoryFile sets the history file location.
func WithHistoryFile(path string) Option {
	return func(rl *REPL) { rl.history = NewHistory(WithFile(path)) }
}

// New creates a new REPL instance driving the given tracker.
func New(tracker *service.Tracker, opts ...Option) *REPL {
	r := &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		tracker:   tracker,
		completer: NewCompleter(),
		history:   NewHistory(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run starts the REPL loop. It returns when the input is exhausted or
// an "exit" or "quit" command is read. History is loaded on entry and
// saved on the way out, best effort.
func (r *REPL) Run(ctx context.Context) error {
	_ = r.history.Load()
	defer func() { _ = r.history.Save() }()

	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "tasktrack> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		if line == "exit" || line == "quit" {
			return nil
		}

		if err := r.execute(ctx, line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

// execute dispatches a single input line to a task operation.
func (r *REPL) execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "add":
		return r.execAdd(ctx, args)
	case "list":
		return r.execList(ctx, args)
	case "done":
		return r.execDone(ctx, args)
	case "delete":
		return r.execDelete(ctx, args)
	case "help":
		r.printHelp()
		return nil
	default:
		return r.unknownCommand(cmd)
	}
}

func (r *REPL) execAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: add <title>")
	}
	task, err := r.tracker.Add(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	output.Added(r.output, task)
	return nil
}

func (r *REPL) execList(ctx context.Context, args []string) error {
	filter := domain.FilterOpen
	if len(args) > 0 {
		switch args[0] {
		case "done":
			filter = domain.FilterDone
		case "all":
			filter = domain.FilterAll
		default:
			return fmt.Errorf("usage: list [done|all]")
		}
	}

	tasks, err := r.tracker.List(ctx, filter)
	if err != nil {
		return err
	}
	output.TaskList(r.output, tasks)
	return nil
}

func (r *REPL) execDone(ctx context.Context, args []string) error {
	id, err := parseID("done", args)
	if err != nil {
		return err
	}

	task, err := r.tracker.Complete(ctx, id)
	switch {
	case err == nil:
		output.Completed(r.output, task)
	case errors.Is(err, domain.ErrTaskAlreadyDone):
		output.AlreadyDone(r.output, id)
	case errors.Is(err, domain.ErrTaskNotFound):
		output.NotFound(r.output, id)
	default:
		return err
	}
	return nil
}

func (r *REPL) execDelete(ctx context.Context, args []string) error {
	id, err := parseID("delete", args)
	if err != nil {
		return err
	}

	switch err := r.tracker.Remove(ctx, id); {
	case err == nil:
		output.Deleted(r.output, id)
	case errors.Is(err, domain.ErrTaskNotFound):
		output.NotFound(r.output, id)
	default:
		return err
	}
	return nil
}

func (r *REPL) printHelp() {
	fmt.Fprint(r.output, `Commands:
  add <title>       Add a new task
  list [done|all]   List tasks (open tasks by default)
  done <id>         Mark a task as done
  delete <id>       Delete a task
  help              Show this help
  exit, quit        Leave interactive mode
`)
}

// unknownCommand reports an unrecognized command, suggesting close
// matches from the completer when there are any.
func (r *REPL) unknownCommand(cmd string) error {
	if suggestions := r.completer.Complete(cmd); len(suggestions) > 0 {
		return fmt.Errorf("unknown command %q, did you mean: %s", cmd, strings.Join(suggestions, ", "))
	}
	return fmt.Errorf("unknown command %q, type \"help\" for a list", cmd)
}

func parseID(cmd string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("usage: %s <id>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be an integer", args[0])
	}
	return id, nil
}
