// Package command provides CLI command definitions for tasktrack.
package command

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/config"
	"github.com/yndnr/tasktrack-go/internal/cli/output"
	"github.com/yndnr/tasktrack-go/internal/core/service"
	"github.com/yndnr/tasktrack-go/internal/infra/buildinfo"
	"github.com/yndnr/tasktrack-go/internal/storage/jsonfile"
	"github.com/yndnr/tasktrack-go/internal/telemetry/logger"
)

// Metadata keys for values shared across commands.
const (
	metaTracker = "tracker"
	metaConfig  = "config"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "tasktrack",
		Usage:   "A simple CLI task tracker that stores tasks in a JSON file",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			AddCommand(),
			ListCommand(),
			DoneCommand(),
			DeleteCommand(),
			ConfigCommand(),
			ReplCommand(),
		},
		Before: setup,
		Action: func(c *cli.Context) error {
			// Invoking without a command is a usage error.
			cli.ShowAppHelp(c)
			return cli.Exit("missing command", 2)
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path",
			EnvVars: []string{"TASKTRACK_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "store",
			Aliases: []string{"s"},
			Usage:   "Task file path (overrides config)",
			EnvVars: []string{"TASKTRACK_STORE_PATH"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: plain, table, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable debug logging",
		},
	}
}

// setup resolves configuration and wires the task tracker before any
// command runs. Tests pre-populate the app metadata instead.
func setup(c *cli.Context) error {
	if _, ok := c.App.Metadata[metaTracker]; ok {
		return nil
	}

	cfg, err := config.Load(c.String("config"), config.Overrides{
		StorePath: c.String("store"),
		Output:    c.String("output"),
		Verbose:   c.Bool("verbose"),
	})
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	logger.SetDefault(log)

	store := jsonfile.New(cfg.Store.Path, jsonfile.WithLogger(log))
	tracker := service.NewTracker(store, service.WithLogger(log))

	if c.App.Metadata == nil {
		c.App.Metadata = map[string]any{}
	}
	c.App.Metadata[metaTracker] = tracker
	c.App.Metadata[metaConfig] = cfg
	return nil
}

// getTracker retrieves the task tracker from the app metadata.
func getTracker(c *cli.Context) (*service.Tracker, error) {
	if t, ok := c.App.Metadata[metaTracker].(*service.Tracker); ok {
		return t, nil
	}
	return nil, fmt.Errorf("tracker not initialized")
}

// getConfig retrieves the resolved configuration from the app metadata.
func getConfig(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[metaConfig].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// outputFormat resolves the effective output format for a command.
func outputFormat(c *cli.Context) output.Format {
	if f := c.String("output"); f != "" {
		return output.Format(f)
	}
	return output.Format(getConfig(c).Output.Format)
}

// parseTaskID parses a task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be an integer", arg)
	}
	return id, nil
}
