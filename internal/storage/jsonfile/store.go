// Package jsonfile provides the file-backed task store.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
	"github.com/yndnr/tasktrack-go/internal/core/service"
	"github.com/yndnr/tasktrack-go/internal/telemetry/logger"
)

// Store implements service.TaskRepository using a JSON file.
type Store struct {
	path string
	log  logger.Logger
}

// Option configures the Store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// New creates a file-backed store at the given path. The file is not
// touched until the first Load or Save.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path: path,
		log:  logger.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full task sequence from the file.
//
// A missing file yields an empty, non-recovered result. Content that
// is not valid JSON, or valid JSON that is not an array of task
// records, yields an empty result with Recovered set. Any other read
// failure is a storage error.
func (s *Store) Load(_ context.Context) (service.LoadResult, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return service.LoadResult{Tasks: []*domain.Task{}}, nil
	}
	if err != nil {
		return service.LoadResult{}, domain.ErrStorageError.WithDetails("read " + s.path).WithCause(err)
	}

	var tasks []*domain.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn("task file unreadable, recovering as empty", "path", s.path, "error", err)
		return service.LoadResult{Tasks: []*domain.Task{}, Recovered: true}, nil
	}
	if tasks == nil {
		// A JSON "null" document is well-formed but not a sequence.
		return service.LoadResult{Tasks: []*domain.Task{}, Recovered: true}, nil
	}

	return service.LoadResult{Tasks: tasks}, nil
}

// Save overwrites the file with the full task sequence, creating the
// parent directory if needed. The write is not atomic; a crash
// mid-write may corrupt the file, which Load tolerates.
func (s *Store) Save(_ context.Context, tasks []*domain.Task) error {
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return domain.ErrStorageError.WithDetails("encode tasks").WithCause(err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.ErrStorageError.WithDetails("create " + dir).WithCause(err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return domain.ErrStorageError.WithDetails("write " + s.path).WithCause(err)
	}

	s.log.Debug("task file saved", "path", s.path, "tasks", len(tasks))
	return nil
}
