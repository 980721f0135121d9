// Package service provides domain services for tasktrack.
//
// Tracker handles the task lifecycle: add, list, complete, delete.
package service

import (
	"context"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
	"github.com/yndnr/tasktrack-go/internal/telemetry/logger"
)

// TaskRepository defines the storage interface for the task store.
//
// The store is read in full at the start of every operation and,
// when mutated, written back in full. There is no partial update.
type TaskRepository interface {
	// Load reads the entire task sequence from storage.
	Load(ctx context.Context) (LoadResult, error)

	// Save overwrites the entire task sequence in storage.
	Save(ctx context.Context, tasks []*domain.Task) error
}

// LoadResult is the outcome of reading the persisted task store.
type LoadResult struct {
	// Tasks is the task sequence in creation order.
	Tasks []*domain.Task

	// Recovered is true when the persisted data was present but
	// unreadable and was treated as an empty store. A missing file
	// yields an empty, non-recovered result.
	Recovered bool
}

// Tracker handles task lifecycle operations.
type Tracker struct {
	repo TaskRepository
	log  logger.Logger
}

// Option configures the Tracker.
type Option func(*Tracker)

// WithLogger sets the structured logger.
func WithLogger(log logger.Logger) Option {
	return func(t *Tracker) {
		t.log = log
	}
}

// NewTracker creates a new Tracker backed by the given repository.
func NewTracker(repo TaskRepository, opts ...Option) *Tracker {
	t := &Tracker{
		repo: repo,
		log:  logger.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Add creates a new open task with the given title and persists it.
// The title is stripped of surrounding whitespace; an all-whitespace
// title is accepted and stored empty. The assigned id is one greater
// than the largest id ever present in the store.
func (t *Tracker) Add(ctx context.Context, title string) (*domain.Task, error) {
	result, err := t.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(domain.NextID(result.Tasks), title)
	tasks := append(result.Tasks, task)

	if err := t.repo.Save(ctx, tasks); err != nil {
		return nil, err
	}

	t.log.Debug("task added", "id", task.ID, "title", task.Title)
	return task, nil
}

// List returns the tasks matching the filter in creation order.
// It never mutates the store.
func (t *Tracker) List(ctx context.Context, filter domain.Filter) ([]*domain.Task, error) {
	result, err := t.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if result.Recovered {
		t.log.Warn("task store was unreadable, treating as empty")
	}

	return filter.Select(result.Tasks), nil
}

// Complete marks the task with the given id as done and persists the
// change. If the task is already done it is returned together with
// ErrTaskAlreadyDone and nothing is saved. If no task has the id,
// ErrTaskNotFound is returned and nothing is saved.
func (t *Tracker) Complete(ctx context.Context, id int64) (*domain.Task, error) {
	result, err := t.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, task := range result.Tasks {
		if task.ID != id {
			continue
		}
		if err := task.MarkDone(); err != nil {
			return task, err
		}
		if err := t.repo.Save(ctx, result.Tasks); err != nil {
			return nil, err
		}
		t.log.Debug("task completed", "id", task.ID)
		return task, nil
	}

	return nil, domain.ErrTaskNotFound
}

// Remove deletes the task with the given id and persists the reduced
// sequence. The relative order of the remaining tasks is unchanged.
// If no task has the id, ErrTaskNotFound is returned and nothing is
// saved.
func (t *Tracker) Remove(ctx context.Context, id int64) error {
	result, err := t.repo.Load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*domain.Task, 0, len(result.Tasks))
	for _, task := range result.Tasks {
		if task.ID != id {
			remaining = append(remaining, task)
		}
	}

	if len(remaining) == len(result.Tasks) {
		return domain.ErrTaskNotFound
	}

	if err := t.repo.Save(ctx, remaining); err != nil {
		return err
	}

	t.log.Debug("task deleted", "id", id)
	return nil
}
