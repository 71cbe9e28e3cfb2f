package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// MinIDPrefix is the shortest accepted task ID prefix.
const MinIDPrefix = 4

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Letter    rune   // 0 if no letter, 'a'-'z' otherwise
	TaskNum   int    // 1-based task number
	HasLetter bool   // true if a column letter was provided
	IDPrefix  string // set when the reference can be a task ID prefix
}

var (
	// ErrTaskRefRequired indicates no task reference was provided.
	ErrTaskRefRequired = errors.New("task reference required")

	// ErrRefOutOfRange indicates a task number past the end of the view.
	ErrRefOutOfRange = errors.New("task number out of range")

	// ErrColumnNotFound indicates a column letter with no column behind it.
	ErrColumnNotFound = errors.New("column letter not found")

	// ErrTaskNotFound indicates an ID prefix that matches no task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrAmbiguousID indicates an ID prefix that matches several tasks.
	ErrAmbiguousID = errors.New("ambiguous task id")
)

// ParseTaskRef parses a single task reference.
//
//   - all digits: Nth task of the flat filtered view (5)
//   - <letter><digits>: Nth task of a status column (b2)
//   - at least MinIDPrefix hex digits or dashes: task ID prefix (3f2a9c)
//
// A short ID such as 87654321 or b1234567 reads as both a position and an
// ID prefix; it keeps both and ResolveTaskRef tries the ID first. Anything
// else is an invalid reference.
func ParseTaskRef(arg string) (TaskRef, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return TaskRef{}, ErrTaskRefRequired
	}

	var ref TaskRef
	if len(arg) >= MinIDPrefix && isIDPrefix(arg) {
		ref.IDPrefix = strings.ToLower(arg)
	}

	switch {
	case isAllDigits(arg):
		num, err := strconv.Atoi(arg)
		if err != nil && ref.IDPrefix == "" {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		ref.TaskNum = num
	case isLetter(rune(arg[0])) && len(arg) > 1 && isAllDigits(arg[1:]):
		num, err := strconv.Atoi(arg[1:])
		if err != nil && ref.IDPrefix == "" {
			return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
		}
		ref.Letter, ref.TaskNum, ref.HasLetter = rune(arg[0]), num, true
	case ref.IDPrefix == "":
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", arg)
	}
	return ref, nil
}

// positional reports whether ref also names a slot in the view.
func (r TaskRef) positional() bool {
	return r.HasLetter || r.TaskNum > 0
}

// ParseTaskRefs parses exactly n task references from args.
func ParseTaskRefs(args []string, n int) ([]TaskRef, error) {
	if len(args) < n {
		return nil, ErrTaskRefRequired
	}
	if len(args) > n {
		return nil, fmt.Errorf("unexpected argument: %s", args[n])
	}
	refs := make([]TaskRef, n)
	for i, arg := range args {
		ref, err := ParseTaskRef(arg)
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}
	return refs, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isLetter returns true if r is a lowercase letter a-z.
func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isIDPrefix(s string) bool {
	for _, r := range strings.ToLower(s) {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f' || r == '-') {
			return false
		}
	}
	return true
}

// ColumnLetter returns the letter of the i-th column (0-based) and false
// once the alphabet runs out.
func ColumnLetter(i int) (rune, bool) {
	if i < 0 || i >= 26 {
		return 0, false
	}
	return rune('a' + i), true
}
