package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"todoboard/internal/exitcode"
	"todoboard/internal/ui"
)

func init() {
	Register(&TUICmd{})
}

// TUICmd implements the tui command. Inside a session it opens the session
// board; from the command line it starts an empty one.
type TUICmd struct{}

func (c *TUICmd) Name() string      { return "tui" }
func (c *TUICmd) Aliases() []string { return []string{"board"} }
func (c *TUICmd) Synopsis() string  { return "Open the board in the terminal" }
func (c *TUICmd) Usage() string     { return "tui" }
func (c *TUICmd) Scope() Scope      { return ScopeAny }
func (c *TUICmd) NeedsAuth() bool   { return false }

func (c *TUICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *TUICmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	in := env.In
	if in == nil {
		in = os.Stdin
	}
	if err := ui.Run(ctx, env.Board, in, out); err != nil {
		if errors.Is(err, ui.ErrNotTTY) {
			fmt.Fprintln(errOut, "error: tui requires a terminal")
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
