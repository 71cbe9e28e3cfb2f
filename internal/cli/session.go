package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"todoboard/internal/commands"
	"todoboard/internal/config"
	"todoboard/internal/exitcode"
	"todoboard/internal/service"
)

// Prompt is printed before each shell line unless --quiet is set.
const Prompt = "todoboard> "

// session is one board plus the config it was built from. The import
// source is created on first use and reused.
type session struct {
	cfg     *config.Config
	board   service.Board
	factory SourceFactory
	source  service.Source
	in      io.Reader
}

// run executes one command against the session board.
func (s *session) run(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	env := &commands.Env{
		Config: s.cfg,
		Board:  s.board,
		In:     s.in,
	}

	if cmd.NeedsAuth() {
		src, code, ok := s.ensureSource(ctx, errOut)
		if !ok {
			return code
		}
		env.Source = src
	}

	code := cmd.Run(ctx, env, args, out, errOut)
	if c, ok := cmd.(commands.CredentialsChanger); ok && c.ChangesCredentials() && s.source != nil {
		s.cfg.Log().Debug("import source dropped", "command", cmd.Name())
		s.source = nil
	}
	return code
}

func (s *session) ensureSource(ctx context.Context, errOut io.Writer) (service.Source, int, bool) {
	if s.source != nil {
		return s.source, exitcode.Success, true
	}

	if s.factory == nil {
		// No factory - report what is missing for import
		if !s.cfg.HasOAuthClient() {
			fmt.Fprintf(errOut, "error: oauth_client.json not found in %s\n", s.cfg.Dir)
			return nil, exitcode.AuthError, false
		}
		if !s.cfg.HasToken() {
			fmt.Fprintln(errOut, "error: not logged in (run: todoboard login)")
			return nil, exitcode.AuthError, false
		}
		fmt.Fprintln(errOut, "error: no import source configured")
		return nil, exitcode.SourceError, false
	}

	src, err := s.factory(ctx, s.cfg)
	if err != nil {
		// Check if it's an auth error
		if strings.Contains(err.Error(), "token") || strings.Contains(err.Error(), "auth") {
			fmt.Fprintf(errOut, "error: auth error: %s\n", err)
			return nil, exitcode.AuthError, false
		}
		fmt.Fprintf(errOut, "error: source error: %s\n", err)
		return nil, exitcode.SourceError, false
	}
	s.source = src
	return src, exitcode.Success, true
}

// shell reads one command per line until EOF, exit or cancellation. A failed
// command prints its error and the session continues; the exit code is that
// of the last command.
func (s *session) shell(ctx context.Context, registry *commands.Registry, in io.Reader, out, errOut io.Writer) int {
	scanner := bufio.NewScanner(in)
	last := exitcode.Success

	for {
		if ctx.Err() != nil {
			return last
		}
		if !s.cfg.Quiet {
			fmt.Fprint(out, Prompt)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.UserError
			}
			if !s.cfg.Quiet {
				fmt.Fprintln(out)
			}
			return last
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "exit", "quit":
			return last
		case ShellCommand:
			fmt.Fprintln(errOut, "error: already in a session")
			last = exitcode.UserError
			continue
		}

		last = s.runLine(ctx, registry, fields, out, errOut)
	}
}

func (s *session) runLine(ctx context.Context, registry *commands.Registry, fields []string, out, errOut io.Writer) int {
	cmd, err := registry.Lookup(fields[0], commands.ScopeSession)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	fs := newFlagSet(cmd.Name())
	cmd.RegisterFlags(fs)
	args, code, ok := parseFlags(fs, fields[1:], errOut)
	if !ok {
		return code
	}
	return s.run(ctx, cmd, args, out, errOut)
}
