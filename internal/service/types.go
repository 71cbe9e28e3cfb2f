// Package service defines the view-facing board interface and the import source interface.
package service

import "iter"

// Task represents a single to-do item on the board.
type Task struct {
	ID        string `json:"id" yaml:"id"`
	Text      string `json:"text" yaml:"text"`
	Completed bool   `json:"completed" yaml:"completed"`
	Category  string `json:"category" yaml:"category"`
	Status    string `json:"status" yaml:"status"`
}

// Column is one status column of the filtered view.
type Column struct {
	Status string `json:"status" yaml:"status"`
	Tasks  []Task `json:"tasks" yaml:"tasks"`
}

// Snapshot is an immutable copy of the board state.
// Callers must not modify the slices it holds.
type Snapshot struct {
	Version          uint64   `json:"version" yaml:"version"`
	Tasks            []Task   `json:"tasks" yaml:"tasks"`
	Categories       []string `json:"categories" yaml:"categories"`
	Statuses         []string `json:"statuses" yaml:"statuses"`
	SelectedCategory string   `json:"selected_category" yaml:"selected_category"`
	FilterCategory   string   `json:"filter_category" yaml:"filter_category"`
	SelectedStatus   string   `json:"selected_status" yaml:"selected_status"`
}

// Filtered yields the tasks visible under the category filter, in list order.
// An empty filter yields every task. The sequence can be ranged over any
// number of times.
func (s Snapshot) Filtered() iter.Seq[Task] {
	return func(yield func(Task) bool) {
		for _, t := range s.Tasks {
			if s.FilterCategory != "" && t.Category != s.FilterCategory {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// FilteredTasks collects Filtered into a slice.
func (s Snapshot) FilteredTasks() []Task {
	var out []Task
	for t := range s.Filtered() {
		out = append(out, t)
	}
	return out
}

// Columns groups the filtered view by status. Configured statuses come first,
// in configured order, and always produce a column (possibly empty). Tasks
// whose status is outside the configured set get trailing columns in the order
// their status is first seen.
func (s Snapshot) Columns() []Column {
	cols := make([]Column, 0, len(s.Statuses))
	index := make(map[string]int, len(s.Statuses))
	for _, st := range s.Statuses {
		if _, dup := index[st]; dup {
			continue
		}
		index[st] = len(cols)
		cols = append(cols, Column{Status: st})
	}
	for t := range s.Filtered() {
		i, ok := index[t.Status]
		if !ok {
			i = len(cols)
			index[t.Status] = i
			cols = append(cols, Column{Status: t.Status})
		}
		cols[i].Tasks = append(cols[i].Tasks, t)
	}
	return cols
}

// Find returns the task with the given ID.
func (s Snapshot) Find(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// RemoteTask is a task read from an import source.
type RemoteTask struct {
	ID        string
	Title     string
	Completed bool
}

// RemoteList represents a task list on an import source.
type RemoteList struct {
	ID        string
	Title     string
	IsDefault bool
}
