package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoboard/internal/exitcode"
)

func init() {
	Register(&SelectCmd{})
}

// SelectCmd implements the select command. The selections are what add uses
// when --category or --status is omitted.
type SelectCmd struct {
	category string
	status   string
}

func (c *SelectCmd) Name() string      { return "select" }
func (c *SelectCmd) Aliases() []string { return nil }
func (c *SelectCmd) Synopsis() string  { return "Set the category and status used by add" }
func (c *SelectCmd) Usage() string     { return "select [--category <c>] [--status <s>]" }
func (c *SelectCmd) Scope() Scope      { return ScopeSession }
func (c *SelectCmd) NeedsAuth() bool   { return false }

func (c *SelectCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
	fs.StringVar(&c.status, "status", "", "")
	fs.StringVar(&c.status, "s", "", "")
}

func (c *SelectCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	snap := env.Board.Snapshot()

	// No flags: report the current selections.
	if c.category == "" && c.status == "" {
		fmt.Fprintf(out, "category: %s\nstatus: %s\n", orNone(snap.SelectedCategory), orNone(snap.SelectedStatus))
		return exitcode.Success
	}

	var category, status string
	if c.category != "" {
		var ok bool
		if category, ok = matchName(snap.Categories, c.category); !ok {
			fmt.Fprintf(errOut, "error: unknown category: %s\n", c.category)
			return exitcode.UserError
		}
	}
	if c.status != "" {
		var ok bool
		if status, ok = matchName(snap.Statuses, c.status); !ok {
			fmt.Fprintf(errOut, "error: unknown status: %s\n", c.status)
			return exitcode.UserError
		}
	}

	if category != "" {
		env.Board.SetSelectedCategory(category)
	}
	if status != "" {
		env.Board.SetSelectedStatus(status)
	}

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
