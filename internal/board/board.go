// Package board implements the in-memory task list store behind every view.
//
// A Store owns one session's tasks. All mutations are synchronous and
// serialised; observers receive an immutable snapshot after each change.
// Tasks are addressed by a synthetic ID assigned on add, never by their text
// or by a position in the backing list.
package board

import (
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"todoboard/internal/logging"
	"todoboard/internal/service"
)

var (
	// DefaultCategories is the closed set of categories offered for filtering.
	DefaultCategories = []string{"Work", "Personal", "Shopping"}

	// DefaultStatuses is the closed set of workflow stages, one column each.
	// The first entry is the status given to tasks added without one.
	DefaultStatuses = []string{"Registered", "Ongoing", "Done"}
)

// Option configures a Store.
type Option func(*Store)

// WithCategories replaces the category set.
func WithCategories(categories []string) Option {
	return func(s *Store) {
		if len(categories) > 0 {
			s.categories = slices.Clone(categories)
		}
	}
}

// WithStatuses replaces the status set.
func WithStatuses(statuses []string) Option {
	return func(s *Store) {
		if len(statuses) > 0 {
			s.statuses = slices.Clone(statuses)
		}
	}
}

// WithLogger sets the logger used for ignored intents.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIDFunc overrides task ID generation.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// Store is the session task list. The zero value is not usable; call New.
type Store struct {
	mu sync.Mutex
	// notifyMu keeps observer deliveries in mutation order without holding mu.
	notifyMu sync.Mutex

	tasks            []service.Task
	categories       []string
	statuses         []string
	selectedCategory string
	filterCategory   string
	selectedStatus   string
	version          uint64

	subs   map[int]func(service.Snapshot)
	nextID int

	newID  func() string
	logger *log.Logger
}

var _ service.Board = (*Store)(nil)

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		categories: slices.Clone(DefaultCategories),
		statuses:   slices.Clone(DefaultStatuses),
		subs:       make(map[int]func(service.Snapshot)),
		newID:      func() string { return uuid.NewString() },
		logger:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.selectedStatus = s.statuses[0]
	return s
}

// DefaultStatus returns the status given to tasks added without one.
func (s *Store) DefaultStatus() string {
	return s.statuses[0]
}

// Snapshot implements service.Board.
func (s *Store) Snapshot() service.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() service.Snapshot {
	return service.Snapshot{
		Version:          s.version,
		Tasks:            slices.Clone(s.tasks),
		Categories:       slices.Clone(s.categories),
		Statuses:         slices.Clone(s.statuses),
		SelectedCategory: s.selectedCategory,
		FilterCategory:   s.filterCategory,
		SelectedStatus:   s.selectedStatus,
	}
}

// AddTask implements service.Board.
func (s *Store) AddTask(text, category, status string) service.Task {
	if strings.TrimSpace(text) == "" {
		s.logger.Debug("ignored add", "reason", "empty text")
		return service.Task{}
	}
	if status == "" {
		status = s.DefaultStatus()
	}
	task := service.Task{
		ID:       s.newID(),
		Text:     text,
		Category: category,
		Status:   status,
	}
	s.update(func() bool {
		s.tasks = append(s.tasks, task)
		return true
	})
	s.logger.Debug("added task", "id", task.ID, "category", category, "status", status)
	return task
}

// DeleteTask implements service.Board.
func (s *Store) DeleteTask(id string) {
	s.update(func() bool {
		i := s.indexLocked(id)
		if i < 0 {
			s.logger.Debug("ignored delete", "id", id, "reason", "unknown id")
			return false
		}
		s.tasks = slices.Delete(s.tasks, i, i+1)
		return true
	})
}

// ToggleCompletion implements service.Board.
func (s *Store) ToggleCompletion(id string) {
	s.update(func() bool {
		i := s.indexLocked(id)
		if i < 0 {
			s.logger.Debug("ignored toggle", "id", id, "reason", "unknown id")
			return false
		}
		s.tasks[i].Completed = !s.tasks[i].Completed
		return true
	})
}

// DeleteAt implements service.Board.
func (s *Store) DeleteAt(index int) {
	if id, ok := s.filteredID(index); ok {
		s.DeleteTask(id)
	}
}

// ToggleAt implements service.Board.
func (s *Store) ToggleAt(index int) {
	if id, ok := s.filteredID(index); ok {
		s.ToggleCompletion(id)
	}
}

// filteredID resolves an index of the filtered view to a task ID.
func (s *Store) filteredID(index int) (string, bool) {
	snap := s.Snapshot()
	if index >= 0 {
		i := 0
		for t := range snap.Filtered() {
			if i == index {
				return t.ID, true
			}
			i++
		}
	}
	s.logger.Debug("ignored positional intent", "index", index, "reason", "out of range")
	return "", false
}

// Reorder implements service.Board.
func (s *Store) Reorder(activeID, overID string) {
	if activeID == overID {
		s.logger.Debug("ignored reorder", "id", activeID, "reason", "same task")
		return
	}
	s.update(func() bool {
		from, to := s.indexLocked(activeID), s.indexLocked(overID)
		if from < 0 || to < 0 {
			s.logger.Debug("ignored reorder", "active", activeID, "over", overID, "reason", "unknown id")
			return false
		}
		s.tasks = move(s.tasks, from, to)
		return true
	})
}

// move relocates the element at from to index to, shifting the ones between.
func move(tasks []service.Task, from, to int) []service.Task {
	t := tasks[from]
	tasks = slices.Delete(tasks, from, from+1)
	return slices.Insert(tasks, to, t)
}

// SetFilterCategory implements service.Board.
func (s *Store) SetFilterCategory(category string) {
	s.update(func() bool {
		if s.filterCategory == category {
			return false
		}
		s.filterCategory = category
		return true
	})
}

// SetSelectedCategory implements service.Board.
func (s *Store) SetSelectedCategory(category string) {
	s.update(func() bool {
		if s.selectedCategory == category {
			return false
		}
		s.selectedCategory = category
		return true
	})
}

// SetSelectedStatus implements service.Board.
func (s *Store) SetSelectedStatus(status string) {
	s.update(func() bool {
		if s.selectedStatus == status {
			return false
		}
		s.selectedStatus = status
		return true
	})
}

// Subscribe implements service.Board.
// fn runs on the goroutine that made the change and must not call back into
// the store.
func (s *Store) Subscribe(fn func(service.Snapshot)) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *Store) indexLocked(id string) int {
	return slices.IndexFunc(s.tasks, func(t service.Task) bool { return t.ID == id })
}

// update runs fn under the lock. When fn reports a change the version is
// bumped and subscribers are notified with the resulting snapshot.
func (s *Store) update(fn func() bool) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	if !fn() {
		s.mu.Unlock()
		return
	}
	s.version++
	snap := s.snapshotLocked()
	subs := make([]func(service.Snapshot), 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}
