// Package output provides formatters for CLI output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"todoboard/internal/service"
)

const (
	// ColumnSeparator is the separator line around column headers.
	ColumnSeparator = "------------"

	// ShortIDLen is how many ID characters task lines show.
	ShortIDLen = 8
)

// Board is the serialisable view of a snapshot shared by `list --format`
// and the HTTP API.
type Board struct {
	Version          uint64           `json:"version" yaml:"version"`
	Categories       []string         `json:"categories" yaml:"categories"`
	Statuses         []string         `json:"statuses" yaml:"statuses"`
	FilterCategory   string           `json:"filter_category" yaml:"filter_category"`
	SelectedCategory string           `json:"selected_category" yaml:"selected_category"`
	SelectedStatus   string           `json:"selected_status" yaml:"selected_status"`
	Tasks            []service.Task   `json:"tasks" yaml:"tasks"`
	Filtered         []service.Task   `json:"filtered" yaml:"filtered"`
	Columns          []service.Column `json:"columns" yaml:"columns"`
}

// NewBoard builds the board document for snap. Slices are never nil so JSON
// clients always see arrays.
func NewBoard(snap service.Snapshot) Board {
	cols := snap.Columns()
	for i := range cols {
		if cols[i].Tasks == nil {
			cols[i].Tasks = []service.Task{}
		}
	}
	return Board{
		Version:          snap.Version,
		Categories:       orEmpty(snap.Categories),
		Statuses:         orEmpty(snap.Statuses),
		FilterCategory:   snap.FilterCategory,
		SelectedCategory: snap.SelectedCategory,
		SelectedStatus:   snap.SelectedStatus,
		Tasks:            orEmpty(snap.Tasks),
		Filtered:         orEmpty(snap.FilteredTasks()),
		Columns:          cols,
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// WriteJSON writes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteYAML writes v as a YAML document.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// FormatTask formats a task line inside a column section.
// Format: "{LABEL:>6}  [x] {TEXT}  @{CATEGORY}  {SHORTID}\n"
func FormatTask(w io.Writer, label string, task service.Task) {
	fmt.Fprintf(w, "%6s  %s %s  @%s  %s\n",
		label, checkbox(task.Completed), normalizeText(task.Text), task.Category, ShortID(task.ID))
}

// FormatFlatTask formats a task line of the flat list, which also shows the status.
// Format: "{N:>4}  [x] {TEXT}  @{CATEGORY}  ({STATUS})  {SHORTID}\n"
func FormatFlatTask(w io.Writer, num int, task service.Task) {
	fmt.Fprintf(w, "%4d  %s %s  @%s  (%s)  %s\n",
		num, checkbox(task.Completed), normalizeText(task.Text), task.Category, task.Status, ShortID(task.ID))
}

// FormatColumnHeader formats a status column header.
func FormatColumnHeader(w io.Writer, letter rune, status string, count int) {
	fmt.Fprintln(w, ColumnSeparator)
	fmt.Fprintf(w, "%c  %s (%d)\n", letter, normalizeName(status), count)
	fmt.Fprintln(w, ColumnSeparator)
}

// FormatName formats a category or status name, marking the active one.
func FormatName(w io.Writer, name string, active bool) {
	line := normalizeName(name)
	if active {
		line += " *"
	}
	fmt.Fprintln(w, line)
}

// ShortID trims an ID for display.
func ShortID(id string) string {
	if len(id) > ShortIDLen {
		return id[:ShortIDLen]
	}
	return id
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// normalizeText normalizes a task text for display.
// - Newlines are replaced with spaces
// - Whitespace-only text becomes "(untitled)"
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.ReplaceAll(text, "\n", " ")

	if strings.TrimSpace(text) == "" {
		return "(untitled)"
	}
	return text
}

// normalizeName normalizes a category or status name for display.
func normalizeName(name string) string {
	if strings.TrimSpace(name) == "" {
		return "(none)"
	}
	return name
}
