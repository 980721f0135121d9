// Package memory provides an in-memory task store.
package memory

import (
	"context"
	"sync"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
	"github.com/yndnr/tasktrack-go/internal/core/service"
)

// Store implements service.TaskRepository in memory.
type Store struct {
	mu        sync.RWMutex
	tasks     []*domain.Task
	recovered bool

	// Fault injection for tests.
	loadErr error
	saveErr error
}

// Option configures the Store.
type Option func(*Store)

// WithTasks seeds the store with an initial task sequence.
func WithTasks(tasks ...*domain.Task) Option {
	return func(s *Store) {
		s.tasks = tasks
	}
}

// WithRecovered marks the store content as recovered from corruption.
func WithRecovered() Option {
	return func(s *Store) {
		s.recovered = true
	}
}

// WithLoadError makes every Load fail with the given error.
func WithLoadError(err error) Option {
	return func(s *Store) {
		s.loadErr = err
	}
}

// WithSaveError makes every Save fail with the given error.
func WithSaveError(err error) Option {
	return func(s *Store) {
		s.saveErr = err
	}
}

// New creates an empty in-memory store.
func New(opts ...Option) *Store {
	s := &Store{tasks: []*domain.Task{}}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Load returns a deep copy of the stored task sequence.
func (s *Store) Load(_ context.Context) (service.LoadResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.loadErr != nil {
		return service.LoadResult{}, s.loadErr
	}

	return service.LoadResult{Tasks: cloneAll(s.tasks), Recovered: s.recovered}, nil
}

// Save replaces the stored task sequence with a deep copy of tasks.
func (s *Store) Save(_ context.Context, tasks []*domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}

	s.tasks = cloneAll(tasks)
	s.recovered = false
	return nil
}

// Tasks returns a snapshot of the current task sequence.
func (s *Store) Tasks() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneAll(s.tasks)
}

func cloneAll(tasks []*domain.Task) []*domain.Task {
	clones := make([]*domain.Task, len(tasks))
	for i, t := range tasks {
		clones[i] = t.Clone()
	}
	return clones
}
