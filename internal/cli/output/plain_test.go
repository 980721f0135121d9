// Package output provides output formatting for tasktrack.
package output

import (
	"bytes"
	"testing"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

func TestTaskLine_Alignment(t *testing.T) {
	tests := []struct {
		name string
		task *domain.Task
		want string
	}{
		{"single digit id", &domain.Task{ID: 1, Title: "Buy milk", Status: domain.StatusOpen}, "📝 #  1  Buy milk\n"},
		{"two digit id", &domain.Task{ID: 42, Title: "Walk dog", Status: domain.StatusOpen}, "📝 # 42  Walk dog\n"},
		{"three digit id", &domain.Task{ID: 100, Title: "x", Status: domain.StatusOpen}, "📝 #100  x\n"},
		{"four digit id", &domain.Task{ID: 1000, Title: "x", Status: domain.StatusOpen}, "📝 #1000  x\n"},
		{"done marker", &domain.Task{ID: 2, Title: "y", Status: domain.StatusDone}, "✅ #  2  y\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			TaskLine(&buf, tt.task)
			if buf.String() != tt.want {
				t.Errorf("TaskLine() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestTaskList_Empty(t *testing.T) {
	var buf bytes.Buffer
	TaskList(&buf, nil)
	if buf.String() != "🟡 no tasks to show.\n" {
		t.Errorf("TaskList(empty) = %q", buf.String())
	}
}

func TestMessages(t *testing.T) {
	task := &domain.Task{ID: 7, Title: "Buy milk", Status: domain.StatusOpen}

	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"added", func(b *bytes.Buffer) { Added(b, task) }, "✅ added #7: Buy milk\n"},
		{"completed", func(b *bytes.Buffer) { Completed(b, task) }, "✅ completed #7: Buy milk\n"},
		{"already done", func(b *bytes.Buffer) { AlreadyDone(b, 7) }, "ℹ️ task #7 already done.\n"},
		{"not found", func(b *bytes.Buffer) { NotFound(b, 99) }, "❌ no task with id #99 found.\n"},
		{"deleted", func(b *bytes.Buffer) { Deleted(b, 7) }, "🗑️ deleted task #7\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			if buf.String() != tt.want {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
