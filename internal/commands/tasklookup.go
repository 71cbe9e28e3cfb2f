package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"todoboard/internal/service"
)

// ResolveTaskRef finds the task a reference points at in snap.
// Numbers count from 1 in the filtered view, so they match what list prints.
// A reference that is also an ID prefix resolves to the task with that ID
// when there is one, so the short IDs list and add print always work.
func ResolveTaskRef(snap service.Snapshot, ref TaskRef) (service.Task, error) {
	if ref.IDPrefix != "" {
		task, err := findByIDPrefix(snap, ref.IDPrefix)
		if !ref.positional() || !errors.Is(err, ErrTaskNotFound) {
			return task, err
		}
	}

	if ref.TaskNum < 1 {
		return service.Task{}, fmt.Errorf("%w: %d", ErrRefOutOfRange, ref.TaskNum)
	}

	var tasks []service.Task
	if ref.HasLetter {
		cols := snap.Columns()
		idx := int(ref.Letter - 'a')
		if idx < 0 || idx >= len(cols) {
			return service.Task{}, fmt.Errorf("%w: %c", ErrColumnNotFound, ref.Letter)
		}
		tasks = cols[idx].Tasks
	} else {
		tasks = snap.FilteredTasks()
	}

	if ref.TaskNum > len(tasks) {
		return service.Task{}, fmt.Errorf("%w: %d", ErrRefOutOfRange, ref.TaskNum)
	}
	return tasks[ref.TaskNum-1], nil
}

// findByIDPrefix matches against every task, filtered or not; an ID is
// identity regardless of what the view shows.
func findByIDPrefix(snap service.Snapshot, prefix string) (service.Task, error) {
	var match service.Task
	n := 0
	for _, t := range snap.Tasks {
		if strings.HasPrefix(strings.ToLower(t.ID), prefix) {
			match = t
			n++
		}
	}
	switch n {
	case 0:
		return service.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, prefix)
	case 1:
		return match, nil
	default:
		return service.Task{}, fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
	}
}

// lookupTasks parses n references from args and resolves all of them against
// one snapshot. On failure it prints the error and returns false.
func lookupTasks(board service.Board, args []string, n int, errOut io.Writer) ([]service.Task, bool) {
	refs, err := ParseTaskRefs(args, n)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return nil, false
	}

	snap := board.Snapshot()
	tasks := make([]service.Task, len(refs))
	for i, ref := range refs {
		task, err := ResolveTaskRef(snap, ref)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return nil, false
		}
		tasks[i] = task
	}
	return tasks, true
}
