package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoboard/internal/exitcode"
	"todoboard/internal/service"
)

func init() {
	Register(&ImportCmd{})
}

// ImportCmd implements the import command. It copies a Google Tasks list
// into the session board; nothing is written back.
type ImportCmd struct {
	listName string
	category string
}

// SetListName sets the list name (for testing).
func (c *ImportCmd) SetListName(name string) {
	c.listName = name
}

// SetCategory sets the category (for testing).
func (c *ImportCmd) SetCategory(category string) {
	c.category = category
}

func (c *ImportCmd) Name() string      { return "import" }
func (c *ImportCmd) Aliases() []string { return nil }
func (c *ImportCmd) Synopsis() string  { return "Copy tasks from a Google Tasks list" }
func (c *ImportCmd) Usage() string     { return "import [--list <list-name>] [--category <c>]" }
func (c *ImportCmd) Scope() Scope      { return ScopeSession }
func (c *ImportCmd) NeedsAuth() bool   { return true }

func (c *ImportCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
	fs.StringVar(&c.category, "category", "", "")
	fs.StringVar(&c.category, "c", "", "")
}

func (c *ImportCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	snap := env.Board.Snapshot()
	category := snap.SelectedCategory
	if c.category != "" {
		var ok bool
		if category, ok = matchName(snap.Categories, c.category); !ok {
			fmt.Fprintf(errOut, "error: unknown category: %s\n", c.category)
			return exitcode.UserError
		}
	}

	// Resolve list
	var list service.RemoteList
	var err error
	if c.listName != "" {
		list, err = env.Source.ResolveList(ctx, c.listName)
		if err != nil {
			if strings.Contains(err.Error(), "not found") {
				fmt.Fprintf(errOut, "error: list not found: %s\n", c.listName)
				return exitcode.UserError
			}
			if strings.Contains(err.Error(), "ambiguous") {
				fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", c.listName)
				return exitcode.UserError
			}
			fmt.Fprintf(errOut, "error: source error: %v\n", err)
			return exitcode.SourceError
		}
	} else {
		list, err = env.Source.DefaultList(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: source error: %v\n", err)
			return exitcode.SourceError
		}
	}

	remote, err := env.Source.ListTasks(ctx, list.ID)
	if err != nil {
		fmt.Fprintf(errOut, "error: source error: %v\n", err)
		return exitcode.SourceError
	}

	openStatus := snap.Statuses[0]
	doneStatus := snap.Statuses[len(snap.Statuses)-1]

	imported := 0
	for _, rt := range remote {
		status := openStatus
		if rt.Completed {
			status = doneStatus
		}
		task := env.Board.AddTask(rt.Title, category, status)
		if task.ID == "" {
			env.Config.Log().Debug("skipped remote task", "id", rt.ID, "reason", "blank title")
			continue
		}
		if rt.Completed {
			env.Board.ToggleCompletion(task.ID)
		}
		imported++
	}

	env.Config.Log().Info("imported", "list", list.Title, "tasks", imported)
	if !env.Config.Quiet {
		fmt.Fprintf(out, "imported %d tasks\n", imported)
	}
	return exitcode.Success
}
