package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

var (
	// ErrUnknownCommand indicates a name that matches no command or alias.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrSessionOnly indicates a session command invoked from the command line.
	ErrSessionOnly = errors.New("only available inside a session")

	// ErrNotInSession indicates a top-level command invoked inside the shell.
	ErrNotInSession = errors.New("not available inside a session")
)

// Registry maps command names and aliases to commands.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]Command
	sorted []Command // one entry per command, by primary name
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds c under its name and aliases. No name may be taken twice.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, exists := r.byName[name]; exists {
			return fmt.Errorf("command name already registered: %s", name)
		}
	}
	for _, name := range names {
		r.byName[name] = c
	}

	i, _ := slices.BinarySearchFunc(r.sorted, c.Name(), func(e Command, name string) int {
		return strings.Compare(e.Name(), name)
	})
	r.sorted = slices.Insert(r.sorted, i, c)
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Lookup finds name and checks that it may run where it was typed: ScopeTop
// for the command line, ScopeSession inside the shell.
func (r *Registry) Lookup(name string, in Scope) (Command, error) {
	cmd, ok := r.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}
	if cmd.Scope().runsIn(in) {
		return cmd, nil
	}
	if in == ScopeTop {
		return nil, fmt.Errorf("%s is %w", name, ErrSessionOnly)
	}
	return nil, fmt.Errorf("%s is %w", name, ErrNotInSession)
}

// All returns the commands that can run in scope, sorted by name.
// ScopeAny returns every command.
func (r *Registry) All(in Scope) []Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Command
	for _, cmd := range r.sorted {
		if cmd.Scope().runsIn(in) {
			result = append(result, cmd)
		}
	}
	return result
}

func (s Scope) runsIn(in Scope) bool {
	return s == ScopeAny || in == ScopeAny || s == in
}

// DefaultRegistry holds every command; each registers itself from init.
var DefaultRegistry = NewRegistry()

// Register adds a command to the default registry.
func Register(c Command) {
	if err := DefaultRegistry.Register(c); err != nil {
		panic(err)
	}
}
