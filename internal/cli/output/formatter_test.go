// Package output provides output formatting for tasktrack.
package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yndnr/tasktrack-go/internal/core/domain"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*output.JSONFormatter"},
		{FormatYAML, "*output.YAMLFormatter"},
		{FormatTable, "*output.TableFormatter"},
		{Format("unknown"), "*output.TableFormatter"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format)
			switch tt.want {
			case "*output.JSONFormatter":
				if _, ok := f.(*JSONFormatter); !ok {
					t.Errorf("NewFormatter(%q) = %T", tt.format, f)
				}
			case "*output.YAMLFormatter":
				if _, ok := f.(*YAMLFormatter); !ok {
					t.Errorf("NewFormatter(%q) = %T", tt.format, f)
				}
			default:
				if _, ok := f.(*TableFormatter); !ok {
					t.Errorf("NewFormatter(%q) = %T", tt.format, f)
				}
			}
		})
	}
}

func TestJSONFormatter_Tasks(t *testing.T) {
	var buf bytes.Buffer
	task := &domain.Task{
		ID:        1,
		Title:     "Buy milk",
		Status:    domain.StatusOpen,
		CreatedAt: mustTimestamp(t, "2026-08-30T10:00:00"),
	}

	if err := (&JSONFormatter{}).Format(&buf, []*domain.Task{task}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"id": 1`, `"title": "Buy milk"`, `"done_at": null`, `"created_at": "2026-08-30T10:00:00"`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestYAMLFormatter_Tasks(t *testing.T) {
	var buf bytes.Buffer
	done := mustTimestamp(t, "2026-08-30T11:00:00")
	task := &domain.Task{
		ID:        2,
		Title:     "Walk dog",
		Status:    domain.StatusDone,
		CreatedAt: mustTimestamp(t, "2026-08-30T10:00:00"),
		DoneAt:    &done,
	}

	if err := (&YAMLFormatter{}).Format(&buf, []*domain.Task{task}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	out := buf.String()
	// yaml.v3 may quote the timestamp strings to keep them scalars,
	// so the value is checked separately from the key.
	for _, want := range []string{"id: 2", "title: Walk dog", "status: done", "done_at:", "2026-08-30T11:00:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func mustTimestamp(t *testing.T, s string) domain.Timestamp {
	t.Helper()
	ts, err := domain.ParseTimestamp(s)
	if err != nil {
		t.Fatalf("ParseTimestamp(%q) error = %v", s, err)
	}
	return ts
}
