package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoboard/internal/exitcode"
	"todoboard/internal/output"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	category string
	status   string
}

// SetCategory sets the category (for testing).
func (c *AddCmd) SetCategory(category string) {
	c.category = category
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "add [--category <c>] [--status <s>] <text...>" }
func (c *AddCmd) Scope() Scope      { return ScopeSession }
func (c *AddCmd) NeedsAuth() bool   { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(errOut, "error: text required")
		return exitcode.UserError
	}

	snap := env.Board.Snapshot()
	category := c.category
	if category == "" {
		category = snap.SelectedCategory
	}
	status := c.status
	if status == "" {
		status = snap.SelectedStatus
	}

	task := env.Board.AddTask(text, category, status)

	if !env.Config.Quiet {
		fmt.Fprintf(out, "ok %s\n", output.ShortID(task.ID))
	}
	return exitcode.Success
}
