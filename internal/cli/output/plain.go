// Package output provides output formatting for tasktrack.
package output

import (
	"fmt"
	"io"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

// Status markers for the plain task listing.
const (
	markerOpen = "📝"
	markerDone = "✅"
)

// Added prints the confirmation line for a newly created task.
func Added(w io.Writer, t *domain.Task) {
	fmt.Fprintf(w, "✅ added #%d: %s\n", t.ID, t.Title)
}

// Completed prints the confirmation line for a completed task.
func Completed(w io.Writer, t *domain.Task) {
	fmt.Fprintf(w, "✅ completed #%d: %s\n", t.ID, t.Title)
}

// AlreadyDone prints the informational line for a repeat completion.
func AlreadyDone(w io.Writer, id int64) {
	fmt.Fprintf(w, "ℹ️ task #%d already done.\n", id)
}

// NotFound prints the informational line for an unknown task id.
func NotFound(w io.Writer, id int64) {
	fmt.Fprintf(w, "❌ no task with id #%d found.\n", id)
}

// Deleted prints the confirmation line for a deleted task.
func Deleted(w io.Writer, id int64) {
	fmt.Fprintf(w, "🗑️ deleted task #%d\n", id)
}

// Nothing prints the empty-list line.
func Nothing(w io.Writer) {
	fmt.Fprintln(w, "🟡 no tasks to show.")
}

// TaskLine prints one plain listing line: a status marker, the id
// right-aligned to at least 3 columns, and the title.
func TaskLine(w io.Writer, t *domain.Task) {
	marker := markerOpen
	if t.IsDone() {
		marker = markerDone
	}
	fmt.Fprintf(w, "%s #%3d  %s\n", marker, t.ID, t.Title)
}

// TaskList prints the plain listing for a task subset, or the
// empty-list line when the subset is empty.
func TaskList(w io.Writer, tasks []*domain.Task) {
	if len(tasks) == 0 {
		Nothing(w)
		return
	}
	for _, t := range tasks {
		TaskLine(w, t)
	}
}
