package command

import (
	"bytes"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/tasktrack-go/internal/cli/config"
	"github.com/yndnr/tasktrack-go/internal/core/domain"
	"github.com/yndnr/tasktrack-go/internal/core/service"
	"github.com/yndnr/tasktrack-go/internal/storage/memory"
)

// newTestApp builds the full CLI app wired to a tracker over the
// given in-memory store, with output captured in the returned buffer.
// The pre-populated metadata makes setup skip config and file wiring.
func newTestApp(t *testing.T, store *memory.Store) (*testApp, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	app := App()
	app.Writer = out
	app.ErrWriter = out
	app.Metadata = map[string]any{
		metaTracker: service.NewTracker(store),
		metaConfig:  config.Default(),
	}
	return &testApp{app: app}, out
}

type testApp struct {
	app *cli.App
}

// run invokes the app the way main does, with the binary name prepended.
func (a *testApp) run(args ...string) error {
	return a.app.Run(append([]string{"tasktrack"}, args...))
}

// seedTasks builds a store holding the given open titles, assigning
// ids in order starting at 1.
func seedTasks(titles ...string) *memory.Store {
	tasks := make([]*domain.Task, 0, len(titles))
	for i, title := range titles {
		tasks = append(tasks, domain.NewTask(int64(i+1), title))
	}
	return memory.New(memory.WithTasks(tasks...))
}

// doneTask builds a completed task for seeding stores.
func doneTask(t *testing.T, id int64, title string) *domain.Task {
	t.Helper()

	task := domain.NewTask(id, title)
	if err := task.MarkDone(); err != nil {
		t.Fatalf("MarkDone() returned error: %v", err)
	}
	return task
}
