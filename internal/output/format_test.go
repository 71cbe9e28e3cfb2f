package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"todoboard/internal/service"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name     string
		label    string
		task     service.Task
		expected string
	}{
		{
			name:     "open",
			label:    "a1",
			task:     service.Task{ID: "t1", Text: "Buy milk", Category: "Shopping"},
			expected: "    a1  [ ] Buy milk  @Shopping  t1\n",
		},
		{
			name:     "completed with long id",
			label:    "b12",
			task:     service.Task{ID: "3f2a9c1d-0000-4000-8000-000000000000", Text: "Ship", Category: "Work", Completed: true},
			expected: "   b12  [x] Ship  @Work  3f2a9c1d\n",
		},
		{
			name:     "newlines flattened",
			label:    "a2",
			task:     service.Task{ID: "t2", Text: "line1\nline2", Category: "Work"},
			expected: "    a2  [ ] line1 line2  @Work  t2\n",
		},
		{
			name:     "blank text",
			label:    "a3",
			task:     service.Task{ID: "t3", Text: "   ", Category: "Work"},
			expected: "    a3  [ ] (untitled)  @Work  t3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			FormatTask(&buf, tt.label, tt.task)
			if buf.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, buf.String())
			}
		})
	}
}

func TestFormatFlatTask(t *testing.T) {
	var buf bytes.Buffer
	FormatFlatTask(&buf, 3, service.Task{ID: "t1", Text: "Gym", Category: "Personal", Status: "Ongoing"})

	expected := "   3  [ ] Gym  @Personal  (Ongoing)  t1\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatColumnHeader(t *testing.T) {
	var buf bytes.Buffer
	FormatColumnHeader(&buf, 'b', "Ongoing", 2)

	expected := "------------\nb  Ongoing (2)\n------------\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func TestFormatName(t *testing.T) {
	var buf bytes.Buffer
	FormatName(&buf, "Work", true)
	FormatName(&buf, "Shopping", false)
	FormatName(&buf, " ", false)

	expected := "Work *\nShopping\n(none)\n"
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}

func testSnapshot() service.Snapshot {
	return service.Snapshot{
		Version: 4,
		Tasks: []service.Task{
			{ID: "t1", Text: "Report", Category: "Work", Status: "Registered"},
			{ID: "t2", Text: "Milk", Category: "Shopping", Status: "Done", Completed: true},
		},
		Categories:       []string{"Work", "Personal", "Shopping"},
		Statuses:         []string{"Registered", "Ongoing", "Done"},
		SelectedCategory: "Work",
		FilterCategory:   "Work",
		SelectedStatus:   "Registered",
	}
}

func TestNewBoard(t *testing.T) {
	b := NewBoard(testSnapshot())

	if len(b.Tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(b.Tasks))
	}
	if len(b.Filtered) != 1 || b.Filtered[0].ID != "t1" {
		t.Errorf("expected filtered [t1], got %+v", b.Filtered)
	}
	if len(b.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(b.Columns))
	}
	for _, col := range b.Columns {
		if col.Tasks == nil {
			t.Errorf("column %q: expected empty slice, got nil", col.Status)
		}
	}
}

func TestNewBoard_EmptyEncodesArrays(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewBoard(service.Snapshot{})); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Errorf("expected no nulls, got %s", buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, NewBoard(testSnapshot())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Board
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.Version != 4 || got.FilterCategory != "Work" {
		t.Errorf("unexpected document: %+v", got)
	}
	if !strings.Contains(buf.String(), `"filter_category": "Work"`) {
		t.Errorf("expected snake_case keys, got %s", buf.String())
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, NewBoard(testSnapshot())); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Board
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid yaml: %v", err)
	}
	if got.SelectedStatus != "Registered" || len(got.Columns) != 3 {
		t.Errorf("unexpected document: %+v", got)
	}
	if !strings.Contains(buf.String(), "selected_category: Work\n") {
		t.Errorf("expected selected_category key, got %s", buf.String())
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
	if got := ShortID("0123456789"); got != "01234567" {
		t.Errorf("expected %q, got %q", "01234567", got)
	}
}
