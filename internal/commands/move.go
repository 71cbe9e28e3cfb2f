package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoboard/internal/exitcode"
)

func init() {
	Register(&MoveCmd{})
}

// MoveCmd implements the move command: drag the first task onto the second.
type MoveCmd struct{}

func (c *MoveCmd) Name() string      { return "move" }
func (c *MoveCmd) Aliases() []string { return []string{"mv"} }
func (c *MoveCmd) Synopsis() string  { return "Move a task into another task's slot" }
func (c *MoveCmd) Usage() string     { return "move <ref> <ref>" }
func (c *MoveCmd) Scope() Scope      { return ScopeSession }
func (c *MoveCmd) NeedsAuth() bool   { return false }

func (c *MoveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *MoveCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	tasks, ok := lookupTasks(env.Board, args, 2, errOut)
	if !ok {
		return exitcode.UserError
	}

	env.Board.Reorder(tasks[0].ID, tasks[1].ID)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
