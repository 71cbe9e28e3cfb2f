package commands

import (
	"errors"
	"fmt"
	"testing"

	"todoboard/internal/board"
)

func TestParseTaskRef(t *testing.T) {
	tests := []struct {
		arg  string
		want TaskRef
	}{
		{"5", TaskRef{TaskNum: 5}},
		{"a1", TaskRef{Letter: 'a', TaskNum: 1, HasLetter: true}},
		{"b12", TaskRef{Letter: 'b', TaskNum: 12, HasLetter: true}},
		{"z99", TaskRef{Letter: 'z', TaskNum: 99, HasLetter: true}},
		{"3F2A", TaskRef{IDPrefix: "3f2a"}},
		{"abcd-12", TaskRef{IDPrefix: "abcd-12"}},
		{"87654321", TaskRef{TaskNum: 87654321, IDPrefix: "87654321"}},
		{"b1234567", TaskRef{Letter: 'b', TaskNum: 1234567, HasLetter: true, IDPrefix: "b1234567"}},
		{"g1234", TaskRef{Letter: 'g', TaskNum: 1234, HasLetter: true}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			ref, err := ParseTaskRef(tt.arg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ref != tt.want {
				t.Errorf("expected %#v, got %#v", tt.want, ref)
			}
		})
	}
}

func TestParseTaskRef_Invalid(t *testing.T) {
	// Too short for an ID prefix, or not hex, or an uppercase column letter.
	for _, arg := range []string{"a", "abc", "A1", "xyz1", "1a", "b-2", "task"} {
		t.Run(arg, func(t *testing.T) {
			_, err := ParseTaskRef(arg)
			if err == nil {
				t.Fatalf("expected error for %q", arg)
			}
			expectedMsg := "invalid task reference: " + arg
			if err.Error() != expectedMsg {
				t.Errorf("expected %q, got %q", expectedMsg, err.Error())
			}
		})
	}
}

func TestParseTaskRef_Empty(t *testing.T) {
	_, err := ParseTaskRef("  ")
	if err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRefs(t *testing.T) {
	refs, err := ParseTaskRefs([]string{"a1", "2"}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !refs[0].HasLetter || refs[0].Letter != 'a' || refs[0].TaskNum != 1 {
		t.Errorf("unexpected ref[0]: %#v", refs[0])
	}
	if refs[1].HasLetter || refs[1].TaskNum != 2 {
		t.Errorf("unexpected ref[1]: %#v", refs[1])
	}
}

func TestParseTaskRefs_Count(t *testing.T) {
	if _, err := ParseTaskRefs([]string{"1"}, 2); err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}

	_, err := ParseTaskRefs([]string{"1", "2"}, 1)
	if err == nil {
		t.Fatal("expected error for extra argument")
	}
	if err.Error() != "unexpected argument: 2" {
		t.Errorf("expected %q, got %q", "unexpected argument: 2", err.Error())
	}
}

func TestColumnLetter(t *testing.T) {
	if r, ok := ColumnLetter(0); !ok || r != 'a' {
		t.Errorf("expected 'a', got %c", r)
	}
	if r, ok := ColumnLetter(25); !ok || r != 'z' {
		t.Errorf("expected 'z', got %c", r)
	}
	if _, ok := ColumnLetter(26); ok {
		t.Error("expected no letter past z")
	}
}

// refBoard has Work tasks in Registered and Ongoing and one Personal task.
//
//	a Registered: aaaa0001 Write report (Work), aaaa0003 Gym (Personal)
//	b Ongoing:    bbbb0002 Review PR (Work)
//	c Done:       (empty)
func refBoard() *board.Store {
	ids := []string{"aaaa0001", "bbbb0002", "aaaa0003"}
	n := 0
	b := board.New(board.WithIDFunc(func() string {
		id := ids[n]
		n++
		return id
	}))
	b.AddTask("Write report", "Work", "Registered")
	b.AddTask("Review PR", "Work", "Ongoing")
	b.AddTask("Gym", "Personal", "Registered")
	return b
}

func TestResolveTaskRef(t *testing.T) {
	snap := refBoard().Snapshot()

	tests := []struct {
		arg    string
		wantID string
	}{
		{"1", "aaaa0001"},
		{"2", "bbbb0002"},
		{"3", "aaaa0003"},
		{"a2", "aaaa0003"},
		{"b1", "bbbb0002"},
		{"bbbb", "bbbb0002"},
		{"AAAA0003", "aaaa0003"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			ref, err := ParseTaskRef(tt.arg)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			task, err := ResolveTaskRef(snap, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID != tt.wantID {
				t.Errorf("expected %q, got %q", tt.wantID, task.ID)
			}
		})
	}
}

func TestResolveTaskRef_Errors(t *testing.T) {
	snap := refBoard().Snapshot()

	tests := []struct {
		arg     string
		wantErr error
		wantMsg string
	}{
		{"0", ErrRefOutOfRange, "task number out of range: 0"},
		{"4", ErrRefOutOfRange, "task number out of range: 4"},
		{"c1", ErrRefOutOfRange, "task number out of range: 1"},
		{"d1", ErrColumnNotFound, "column letter not found: d"},
		{"ffff", ErrTaskNotFound, "task not found: ffff"},
		{"aaaa", ErrAmbiguousID, "ambiguous task id: aaaa"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			ref, err := ParseTaskRef(tt.arg)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			_, err = ResolveTaskRef(snap, ref)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("expected %q, got %q", tt.wantMsg, err.Error())
			}
		})
	}
}

// Short IDs that look like numbers or column refs still name their task.
func TestResolveTaskRef_NumericLookingIDs(t *testing.T) {
	ids := []string{
		"87654321-aaaa-4aaa-8aaa-aaaaaaaaaaaa",
		"b1234567-bbbb-4bbb-8bbb-bbbbbbbbbbbb",
		"12345678-cccc-4ccc-8ccc-cccccccccccc",
	}
	n := 0
	b := board.New(board.WithIDFunc(func() string {
		id := ids[n]
		n++
		return id
	}))
	b.AddTask("Pay rent", "Personal", "Registered")
	b.AddTask("Call bank", "Personal", "Ongoing")
	b.AddTask("Book flight", "Work", "Registered")
	snap := b.Snapshot()

	tests := []struct {
		arg    string
		wantID string
	}{
		{"87654321", ids[0]},
		{"b1234567", ids[1]},
		{"1234", ids[2]},
		// No ID starts with these, so they stay positions.
		{"2", ids[1]},
		{"a2", ids[2]},
		{"a0000002", ids[2]},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			ref, err := ParseTaskRef(tt.arg)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}
			task, err := ResolveTaskRef(snap, ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID != tt.wantID {
				t.Errorf("expected %q, got %q", tt.wantID, task.ID)
			}
		})
	}

	// A number that is neither an ID nor a slot reports the slot.
	ref, _ := ParseTaskRef("5555")
	if _, err := ResolveTaskRef(snap, ref); !errors.Is(err, ErrRefOutOfRange) {
		t.Errorf("expected ErrRefOutOfRange, got %v", err)
	}
}

func TestResolveTaskRef_Filtered(t *testing.T) {
	b := refBoard()
	b.SetFilterCategory("Personal")
	snap := b.Snapshot()

	// Numbers count within the filtered view.
	task, err := ResolveTaskRef(snap, TaskRef{TaskNum: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "aaaa0003" {
		t.Errorf("expected %q, got %q", "aaaa0003", task.ID)
	}

	// ID prefixes still see hidden tasks.
	task, err = ResolveTaskRef(snap, TaskRef{IDPrefix: "bbbb"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.ID != "bbbb0002" {
		t.Errorf("expected %q, got %q", "bbbb0002", task.ID)
	}
}

func ExampleParseTaskRef() {
	ref, _ := ParseTaskRef("b2")
	fmt.Printf("%c %d\n", ref.Letter, ref.TaskNum)
	// Output: b 2
}
