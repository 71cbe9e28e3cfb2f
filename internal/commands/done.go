package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoboard/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. Running it twice reopens the task.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string     { return "done <ref>" }
func (c *DoneCmd) Scope() Scope      { return ScopeSession }
func (c *DoneCmd) NeedsAuth() bool   { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	tasks, ok := lookupTasks(env.Board, args, 1, errOut)
	if !ok {
		return exitcode.UserError
	}

	env.Board.ToggleCompletion(tasks[0].ID)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
