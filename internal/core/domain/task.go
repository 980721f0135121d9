// Package domain defines the core domain models for tasktrack.
package domain

import "strings"

// Status is the lifecycle state of a task.
type Status string

// Task lifecycle states. Done is terminal: no operation transitions
// a task back to open.
const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Task represents a single trackable to-do item.
//
// The zero id is never assigned; ids are positive, unique, and
// monotonically increasing within a store, never reused after
// deletion.
type Task struct {
	// ID is the unique identifier for the task.
	ID int64 `json:"id" yaml:"id"`

	// Title is the task text, stripped of surrounding whitespace
	// at creation. May be empty if the input was all whitespace.
	Title string `json:"title" yaml:"title"`

	// Status is either "open" or "done".
	Status Status `json:"status" yaml:"status"`

	// CreatedAt is set once at creation and never changes.
	CreatedAt Timestamp `json:"created_at" yaml:"created_at"`

	// DoneAt is set exactly once, when the task is completed.
	// Serialized as null while the task is open.
	DoneAt *Timestamp `json:"done_at" yaml:"done_at"`
}

// NewTask creates an open task with the given id and title.
// The title is stripped of leading and trailing whitespace; an
// all-whitespace title is accepted and stored as the empty string.
func NewTask(id int64, title string) *Task {
	return &Task{
		ID:        id,
		Title:     strings.TrimSpace(title),
		Status:    StatusOpen,
		CreatedAt: Now(),
	}
}

// IsDone reports whether the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// MarkDone transitions the task to done and records the completion
// time. Returns ErrTaskAlreadyDone if the task is already done; the
// original completion time is never overwritten.
func (t *Task) MarkDone() error {
	if t.IsDone() {
		return ErrTaskAlreadyDone
	}
	now := Now()
	t.Status = StatusDone
	t.DoneAt = &now
	return nil
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	clone := *t
	if t.DoneAt != nil {
		doneAt := *t.DoneAt
		clone.DoneAt = &doneAt
	}
	return &clone
}

// Filter selects a subset of tasks by status.
type Filter string

// Available list filters. FilterOpen is the default.
const (
	FilterOpen Filter = "open"
	FilterDone Filter = "done"
	FilterAll  Filter = "all"
)

// Matches reports whether the task belongs to the filtered subset.
func (f Filter) Matches(t *Task) bool {
	switch f {
	case FilterAll:
		return true
	case FilterDone:
		return t.IsDone()
	default:
		return !t.IsDone()
	}
}

// Select returns the tasks matching the filter, preserving order.
func (f Filter) Select(tasks []*Task) []*Task {
	selected := []*Task{}
	for _, t := range tasks {
		if f.Matches(t) {
			selected = append(selected, t)
		}
	}
	return selected
}

// NextID returns the id for the next task to be created: 1 for an
// empty sequence, otherwise one greater than the largest existing id.
// Deleted ids are never reused because the maximum only grows.
func NextID(tasks []*Task) int64 {
	var max int64
	for _, t := range tasks {
		if t.ID > max {
			max = t.ID
		}
	}
	return max + 1
}
