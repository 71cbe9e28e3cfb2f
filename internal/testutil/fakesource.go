// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"todoboard/internal/service"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// ErrNotFound is returned when a resource is not found.
var ErrNotFound = errors.New("not found")

// ErrAmbiguous is returned when multiple matches are found.
var ErrAmbiguous = errors.New("ambiguous")

// FakeSource is an in-memory implementation of service.Source for testing.
type FakeSource struct {
	mu    sync.RWMutex
	lists []service.RemoteList
	tasks map[string][]service.RemoteTask // listID -> tasks

	// Error injection for testing
	DefaultListErr error
	ListListsErr   error
	ResolveListErr error
	ListTasksErr   map[string]error // listID -> error
}

var _ service.Source = (*FakeSource)(nil)

// NewFakeSource creates a new FakeSource with an empty default list.
func NewFakeSource() *FakeSource {
	fs := &FakeSource{
		tasks:        make(map[string][]service.RemoteTask),
		ListTasksErr: make(map[string]error),
	}
	fs.lists = []service.RemoteList{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	fs.tasks[DefaultListID] = nil
	return fs
}

// AddList adds a list to the fake source.
func (f *FakeSource) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, service.RemoteList{ID: id, Title: title})
	if f.tasks[id] == nil {
		f.tasks[id] = nil
	}
}

// AddTask adds an open task to a list.
func (f *FakeSource) AddTask(listID, taskID, title string) {
	f.addTask(listID, service.RemoteTask{ID: taskID, Title: title})
}

// AddCompletedTask adds a completed task to a list.
func (f *FakeSource) AddCompletedTask(listID, taskID, title string) {
	f.addTask(listID, service.RemoteTask{ID: taskID, Title: title, Completed: true})
}

func (f *FakeSource) addTask(listID string, task service.RemoteTask) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], task)
}

// DefaultList implements service.Source.
func (f *FakeSource) DefaultList(ctx context.Context) (service.RemoteList, error) {
	if f.DefaultListErr != nil {
		return service.RemoteList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return service.RemoteList{}, errors.New("no default list")
}

// ListLists implements service.Source.
func (f *FakeSource) ListLists(ctx context.Context) ([]service.RemoteList, error) {
	if f.ListListsErr != nil {
		return nil, f.ListListsErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.RemoteList, len(f.lists))
	copy(result, f.lists)
	return result, nil
}

// ResolveList implements service.Source.
func (f *FakeSource) ResolveList(ctx context.Context, name string) (service.RemoteList, error) {
	if f.ResolveListErr != nil {
		return service.RemoteList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	nameLower := strings.ToLower(strings.TrimSpace(name))

	var matches []service.RemoteList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == nameLower {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return service.RemoteList{}, ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return service.RemoteList{}, ErrAmbiguous
	}
}

// ListTasks implements service.Source.
func (f *FakeSource) ListTasks(ctx context.Context, listID string) ([]service.RemoteTask, error) {
	if err, ok := f.ListTasksErr[listID]; ok && err != nil {
		return nil, err
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	tasks, ok := f.tasks[listID]
	if !ok {
		return nil, ErrNotFound
	}
	result := make([]service.RemoteTask, len(tasks))
	copy(result, tasks)
	return result, nil
}
