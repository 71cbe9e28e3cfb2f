// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todoboard/internal/config"
	"todoboard/internal/service"
)

// Scope says where a command may be invoked.
type Scope int

const (
	// ScopeAny commands run both from the command line and inside a session.
	ScopeAny Scope = iota
	// ScopeTop commands own the whole process (serve).
	ScopeTop
	// ScopeSession commands mutate or print the session board and only
	// make sense inside the shell.
	ScopeSession
)

// Env carries what a command needs to run.
type Env struct {
	// Config is always provided (config dir, paths, board defaults).
	Config *config.Config

	// Board is the session board. Always set.
	Board service.Board

	// Source is the import source. Nil unless NeedsAuth returns true.
	Source service.Source

	// In is the terminal input, used by interactive commands.
	In io.Reader
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Scope reports where the command may run.
	Scope() Scope

	// NeedsAuth returns true if the command reads from Google Tasks.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// CredentialsChanger is implemented by commands that replace or remove the
// stored Google token. A session drops its import source after running one.
type CredentialsChanger interface {
	ChangesCredentials() bool
}

// LongRunner is implemented by commands that keep the process alive until
// cancelled. Their log lines carry timestamps.
type LongRunner interface {
	LongRunning() bool
}
