package service

import "context"

// Board is the mutation and read surface every view drives.
// Implementations apply each call synchronously: the caller observes the new
// state as soon as the call returns. Invalid intents are absorbed as no-ops.
type Board interface {
	// Snapshot returns the current state.
	Snapshot() Snapshot

	// AddTask appends a task. Blank text is ignored and the zero Task is
	// returned. An empty status becomes the default status.
	AddTask(text, category, status string) Task

	// DeleteTask removes the task with the given ID.
	DeleteTask(id string)

	// ToggleCompletion flips the completed flag of the task with the given ID.
	ToggleCompletion(id string)

	// DeleteAt removes the task at a 0-based index of the filtered view.
	DeleteAt(index int)

	// ToggleAt toggles the task at a 0-based index of the filtered view.
	ToggleAt(index int)

	// Reorder moves activeID into overID's slot, shifting the tasks between.
	Reorder(activeID, overID string)

	// SetFilterCategory sets the category filter. Empty shows all tasks.
	SetFilterCategory(category string)

	// SetSelectedCategory sets the category preselected for new tasks.
	SetSelectedCategory(category string)

	// SetSelectedStatus sets the status preselected for new tasks.
	SetSelectedStatus(status string)

	// Subscribe registers fn to receive every new snapshot.
	// The returned func removes the subscription.
	Subscribe(fn func(Snapshot)) (cancel func())
}

// Source is a read-only task backend used to seed a session board.
// Commands never import a backend SDK directly.
type Source interface {
	// DefaultList returns the user's default task list.
	DefaultList(ctx context.Context) (RemoteList, error)

	// ListLists returns all task lists in backend order.
	ListLists(ctx context.Context) ([]RemoteList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns error if not found or ambiguous.
	ResolveList(ctx context.Context, name string) (RemoteList, error)

	// ListTasks returns every task of a list, open and completed, in backend order.
	ListTasks(ctx context.Context, listID string) ([]RemoteTask, error)
}
