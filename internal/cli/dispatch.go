// Package cli parses the command line and runs commands against a session
// board, either once or in an interactive shell.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"todoboard/internal/board"
	"todoboard/internal/commands"
	"todoboard/internal/config"
	"todoboard/internal/exitcode"
	"todoboard/internal/logging"
	"todoboard/internal/service"
)

// ShellCommand is the name that starts an interactive session explicitly.
const ShellCommand = "shell"

// SourceFactory creates the import source from config.
// Used to inject the backend during dispatch.
type SourceFactory func(ctx context.Context, cfg *config.Config) (service.Source, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  SourceFactory
	in       io.Reader
}

// NewDispatcher creates a new dispatcher with the given registry and source factory.
func NewDispatcher(registry *commands.Registry, factory SourceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		in:       os.Stdin,
	}
}

// SetInput sets the reader the shell and the tui read from.
func (d *Dispatcher) SetInput(in io.Reader) {
	d.in = in
}

// globalFlags are accepted by every top-level invocation.
type globalFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (g *globalFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&g.configDir, "config", "", "")
	fs.BoolVar(&g.quiet, "quiet", false, "")
	fs.BoolVar(&g.debug, "debug", false, "")
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> interactive session
	if len(args) == 0 {
		return d.runShell(ctx, nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmdName == ShellCommand {
		return d.runShell(ctx, args[1:], out, errOut)
	}

	cmd, err := d.registry.Lookup(cmdName, commands.ScopeTop)
	if err != nil {
		if errors.Is(err, commands.ErrSessionOnly) {
			fmt.Fprintf(errOut, "error: %v (run: %s %s)\n", err, config.AppName, ShellCommand)
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	var g globalFlags
	fs := newFlagSet(cmd.Name())
	g.register(fs)
	cmd.RegisterFlags(fs)

	positionalArgs, code, ok := parseFlags(fs, args[1:], errOut)
	if !ok {
		return code
	}

	stamped := false
	if lr, ok := cmd.(commands.LongRunner); ok {
		stamped = lr.LongRunning()
	}
	sess, code, ok := d.newSession(g, stamped, errOut)
	if !ok {
		return code
	}
	return sess.run(ctx, cmd, positionalArgs, out, errOut)
}

func (d *Dispatcher) runShell(ctx context.Context, args []string, out, errOut io.Writer) int {
	var g globalFlags
	fs := newFlagSet(ShellCommand)
	g.register(fs)

	positionalArgs, code, ok := parseFlags(fs, args, errOut)
	if !ok {
		return code
	}
	if len(positionalArgs) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	sess, code, ok := d.newSession(g, false, errOut)
	if !ok {
		return code
	}
	return sess.shell(ctx, d.registry, d.in, out, errOut)
}

// newSession loads config and builds the board every command of one
// session shares. stamped adds timestamps to log lines.
func (d *Dispatcher) newSession(g globalFlags, stamped bool, errOut io.Writer) (*session, int, bool) {
	cfg, err := config.Load(g.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return nil, exitcode.AuthError, false
	}
	cfg.Quiet = g.quiet
	cfg.Debug = g.debug
	cfg.Logger = logging.New(errOut, logging.Options{Debug: g.debug, ReportTimestamp: stamped})

	b := board.New(
		board.WithCategories(cfg.Board.Categories),
		board.WithStatuses(cfg.Board.Statuses),
		board.WithLogger(cfg.Logger),
	)
	cfg.Logger.Debug("session started", "config", cfg.ConfigPath(), "categories", cfg.Board.Categories, "statuses", cfg.Board.Statuses)

	return &session{
		cfg:     cfg,
		board:   b,
		factory: d.factory,
		in:      d.in,
	}, exitcode.Success, true
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves
	return fs
}

// parseFlags parses args into fs and reports errors the way every command
// does. It returns the positional arguments.
func parseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) ([]string, int, bool) {
	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError, false
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError, false
	}

	return fs.Args(), exitcode.Success, true
}
