package board

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"todoboard/internal/service"
)

// seqIDs returns an ID generator producing t1, t2, ...
func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("t%d", n)
	}
}

func newTestStore(opts ...Option) *Store {
	return New(append([]Option{WithIDFunc(seqIDs())}, opts...)...)
}

func texts(tasks []service.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Text
	}
	return out
}

func TestAddTask_AppendsOpenTask(t *testing.T) {
	s := newTestStore()

	for i, text := range []string{"a", "  padded  ", "Buy milk"} {
		task := s.AddTask(text, "Shopping", "Ongoing")
		snap := s.Snapshot()
		if len(snap.Tasks) != i+1 {
			t.Fatalf("expected %d tasks, got %d", i+1, len(snap.Tasks))
		}
		last := snap.Tasks[len(snap.Tasks)-1]
		if last.Completed {
			t.Errorf("expected new task to be open")
		}
		if last != task {
			t.Errorf("expected returned task %+v to equal stored %+v", task, last)
		}
		if last.Text != text {
			t.Errorf("expected text %q, got %q", text, last.Text)
		}
	}
}

func TestAddTask_BlankTextIgnored(t *testing.T) {
	s := newTestStore()
	s.AddTask("keep", "", "")

	for _, text := range []string{"", " ", "\t\n", "   "} {
		task := s.AddTask(text, "Work", "Done")
		if task != (service.Task{}) {
			t.Errorf("expected zero task for %q, got %+v", text, task)
		}
	}
	if n := len(s.Snapshot().Tasks); n != 1 {
		t.Errorf("expected 1 task, got %d", n)
	}
}

func TestAddTask_DefaultStatus(t *testing.T) {
	s := newTestStore()
	task := s.AddTask("A", "", "")
	if task.Status != "Registered" {
		t.Errorf("expected default status Registered, got %q", task.Status)
	}
	if task.Category != "" {
		t.Errorf("expected empty category, got %q", task.Category)
	}
}

func TestAddTask_UnknownValuesAccepted(t *testing.T) {
	s := newTestStore()
	task := s.AddTask("odd", "Garden", "Blocked")
	if task.Category != "Garden" || task.Status != "Blocked" {
		t.Errorf("expected values kept as given, got %+v", task)
	}
}

func TestAddTask_DuplicateTextGetsDistinctIDs(t *testing.T) {
	s := New()
	a := s.AddTask("same", "", "")
	b := s.AddTask("same", "", "")
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty IDs, got %q and %q", a.ID, b.ID)
	}

	s.ToggleCompletion(b.ID)
	snap := s.Snapshot()
	if snap.Tasks[0].Completed || !snap.Tasks[1].Completed {
		t.Errorf("expected only the second duplicate toggled, got %+v", snap.Tasks)
	}
}

func TestToggleCompletion_Involution(t *testing.T) {
	s := newTestStore()
	task := s.AddTask("X", "", "")

	s.ToggleCompletion(task.ID)
	if !s.Snapshot().Tasks[0].Completed {
		t.Fatal("expected completed after first toggle")
	}
	s.ToggleCompletion(task.ID)
	if s.Snapshot().Tasks[0].Completed {
		t.Error("expected open after second toggle")
	}
}

func TestToggleAt_Scenario(t *testing.T) {
	s := newTestStore()
	s.AddTask("X", "", "")
	s.AddTask("Y", "", "")

	s.ToggleAt(0)

	snap := s.Snapshot()
	if !snap.Tasks[0].Completed {
		t.Error("expected tasks[0] completed")
	}
	if snap.Tasks[1].Completed {
		t.Error("expected tasks[1] open")
	}
}

func TestToggleAt_UsesFilteredIndex(t *testing.T) {
	s := newTestStore()
	s.AddTask("Buy milk", "Shopping", "")
	s.AddTask("Write report", "Work", "")
	s.SetFilterCategory("Work")

	s.ToggleAt(0)

	snap := s.Snapshot()
	if snap.Tasks[0].Completed {
		t.Error("expected hidden task untouched")
	}
	if !snap.Tasks[1].Completed {
		t.Error("expected the first filtered task toggled")
	}
}

func TestDeleteAt_Scenario(t *testing.T) {
	s := newTestStore()
	s.AddTask("A", "", "")
	s.DeleteAt(0)
	if n := len(s.Snapshot().Tasks); n != 0 {
		t.Errorf("expected empty list, got %d tasks", n)
	}
}

func TestDeleteAt_UsesFilteredIndex(t *testing.T) {
	s := newTestStore()
	s.AddTask("Buy milk", "Shopping", "")
	s.AddTask("Write report", "Work", "")
	s.AddTask("Call mum", "Personal", "")
	s.SetFilterCategory("Personal")

	s.DeleteAt(0)

	got := texts(s.Snapshot().Tasks)
	want := []string{"Buy milk", "Write report"}
	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestOutOfRangeIsNoop(t *testing.T) {
	s := newTestStore()
	s.AddTask("A", "", "")
	before := s.Snapshot()

	for _, i := range []int{-1, 1, 5} {
		s.DeleteAt(i)
		s.ToggleAt(i)
	}
	s.DeleteTask("missing")
	s.ToggleCompletion("missing")

	after := s.Snapshot()
	if after.Version != before.Version {
		t.Errorf("expected version %d unchanged, got %d", before.Version, after.Version)
	}
	if !slices.Equal(after.Tasks, before.Tasks) {
		t.Errorf("expected tasks unchanged, got %+v", after.Tasks)
	}
}

func TestDeleteTask_ByID(t *testing.T) {
	s := newTestStore()
	s.AddTask("A", "", "")
	b := s.AddTask("B", "", "")
	s.AddTask("C", "", "")

	s.DeleteTask(b.ID)

	got := texts(s.Snapshot().Tasks)
	if !slices.Equal(got, []string{"A", "C"}) {
		t.Errorf("expected [A C], got %v", got)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name         string
		active, over string
		want         []string
	}{
		{"forward", "t1", "t3", []string{"B", "C", "A", "D"}},
		{"backward", "t4", "t2", []string{"A", "D", "B", "C"}},
		{"adjacent", "t2", "t3", []string{"A", "C", "B", "D"}},
		{"to end", "t1", "t4", []string{"B", "C", "D", "A"}},
		{"same key", "t2", "t2", []string{"A", "B", "C", "D"}},
		{"unknown active", "nope", "t2", []string{"A", "B", "C", "D"}},
		{"unknown over", "t2", "nope", []string{"A", "B", "C", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			for _, text := range []string{"A", "B", "C", "D"} {
				s.AddTask(text, "", "")
			}
			s.Reorder(tt.active, tt.over)
			got := texts(s.Snapshot().Tasks)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Reorder(%s, %s): expected %v, got %v", tt.active, tt.over, tt.want, got)
			}
		})
	}
}

func TestReorder_AdjacentSwapIsSymmetric(t *testing.T) {
	s := newTestStore()
	for _, text := range []string{"A", "B", "C"} {
		s.AddTask(text, "", "")
	}

	s.Reorder("t2", "t3")
	s.Reorder("t3", "t2")

	got := texts(s.Snapshot().Tasks)
	if !slices.Equal(got, []string{"A", "B", "C"}) {
		t.Errorf("expected original order, got %v", got)
	}
}

func TestReorder_NonAdjacentSequence(t *testing.T) {
	s := newTestStore()
	for _, text := range []string{"A", "B", "C", "D"} {
		s.AddTask(text, "", "")
	}

	s.Reorder("t1", "t3") // B C A D
	s.Reorder("t3", "t1") // B A C D

	got := texts(s.Snapshot().Tasks)
	if !slices.Equal(got, []string{"B", "A", "C", "D"}) {
		t.Errorf("expected [B A C D], got %v", got)
	}
}

func TestFiltered(t *testing.T) {
	s := newTestStore()
	s.AddTask("Buy milk", "Shopping", "Registered")
	s.AddTask("Write report", "Work", "Ongoing")
	s.AddTask("Plan sprint", "Work", "Registered")

	all := s.Snapshot().FilteredTasks()
	if !slices.Equal(texts(all), []string{"Buy milk", "Write report", "Plan sprint"}) {
		t.Errorf("expected identity view, got %v", texts(all))
	}

	s.SetFilterCategory("Work")
	snap := s.Snapshot()
	got := snap.FilteredTasks()
	if !slices.Equal(texts(got), []string{"Write report", "Plan sprint"}) {
		t.Errorf("expected Work tasks, got %v", texts(got))
	}

	// Restartable.
	n := 0
	for range snap.Filtered() {
		n++
	}
	for range snap.Filtered() {
		n++
	}
	if n != 4 {
		t.Errorf("expected two full passes of 2 tasks, counted %d", n)
	}
}

func TestFiltered_Scenario(t *testing.T) {
	s := newTestStore()
	s.AddTask("Buy milk", "Shopping", "Registered")
	s.AddTask("Write report", "Work", "Ongoing")
	s.SetFilterCategory("Work")

	got := s.Snapshot().FilteredTasks()
	if len(got) != 1 || got[0].Text != "Write report" {
		t.Errorf("expected only Write report, got %v", texts(got))
	}
}

func TestColumns(t *testing.T) {
	s := newTestStore()
	s.AddTask("A", "Work", "Done")
	s.AddTask("B", "Work", "Registered")
	s.AddTask("C", "Home", "Paused")
	s.AddTask("D", "Work", "Registered")

	cols := s.Snapshot().Columns()
	if len(cols) != 4 {
		t.Fatalf("expected 4 columns, got %d", len(cols))
	}
	wantStatus := []string{"Registered", "Ongoing", "Done", "Paused"}
	wantTasks := [][]string{{"B", "D"}, {}, {"A"}, {"C"}}
	for i, col := range cols {
		if col.Status != wantStatus[i] {
			t.Errorf("column %d: expected status %q, got %q", i, wantStatus[i], col.Status)
		}
		if got := texts(col.Tasks); !slices.Equal(got, wantTasks[i]) {
			t.Errorf("column %d: expected %v, got %v", i, wantTasks[i], got)
		}
	}

	s.SetFilterCategory("Work")
	cols = s.Snapshot().Columns()
	if len(cols) != 3 {
		t.Errorf("expected unknown status column to vanish under filter, got %d columns", len(cols))
	}
}

func TestSelections(t *testing.T) {
	s := newTestStore(WithStatuses([]string{"Todo", "Doing"}))
	snap := s.Snapshot()
	if snap.SelectedStatus != "Todo" {
		t.Errorf("expected initial selected status Todo, got %q", snap.SelectedStatus)
	}

	s.SetSelectedCategory("Work")
	s.SetSelectedStatus("Doing")
	snap = s.Snapshot()
	if snap.SelectedCategory != "Work" || snap.SelectedStatus != "Doing" {
		t.Errorf("unexpected selections: %+v", snap)
	}
	if !slices.Equal(snap.Statuses, []string{"Todo", "Doing"}) {
		t.Errorf("unexpected statuses %v", snap.Statuses)
	}
	if !slices.Equal(snap.Categories, DefaultCategories) {
		t.Errorf("unexpected categories %v", snap.Categories)
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := newTestStore()
	s.AddTask("A", "", "")
	snap := s.Snapshot()
	snap.Tasks[0].Text = "changed"
	snap.Categories[0] = "changed"

	fresh := s.Snapshot()
	if fresh.Tasks[0].Text != "A" || fresh.Categories[0] != "Work" {
		t.Errorf("expected store state isolated from snapshot edits, got %+v", fresh)
	}
}

func TestSubscribe(t *testing.T) {
	s := newTestStore()
	var got []uint64
	cancel := s.Subscribe(func(snap service.Snapshot) {
		got = append(got, snap.Version)
	})

	a := s.AddTask("A", "", "")
	s.AddTask(" ", "", "") // ignored, no notification
	s.ToggleCompletion(a.ID)
	s.SetFilterCategory("Work")
	s.SetFilterCategory("Work") // unchanged, no notification

	if !slices.Equal(got, []uint64{1, 2, 3}) {
		t.Errorf("expected versions [1 2 3], got %v", got)
	}

	cancel()
	cancel()
	s.DeleteTask(a.ID)
	if len(got) != 3 {
		t.Errorf("expected no notification after cancel, got %v", got)
	}
}

func TestConcurrentMutations(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task := s.AddTask(fmt.Sprintf("task %d", i), "", "")
			s.ToggleCompletion(task.ID)
		}(i)
	}
	wg.Wait()

	snap := s.Snapshot()
	if len(snap.Tasks) != 50 {
		t.Fatalf("expected 50 tasks, got %d", len(snap.Tasks))
	}
	if snap.Version != 100 {
		t.Errorf("expected version 100, got %d", snap.Version)
	}
	for _, task := range snap.Tasks {
		if !task.Completed {
			t.Errorf("expected %q completed", task.Text)
		}
	}
}
