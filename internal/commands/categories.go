package commands

import (
	"context"
	"flag"
	"io"

	"todoboard/internal/exitcode"
	"todoboard/internal/output"
)

func init() {
	Register(&CategoriesCmd{})
	Register(&StatusesCmd{})
}

// CategoriesCmd implements the categories command. The active filter is
// marked with *.
type CategoriesCmd struct{}

func (c *CategoriesCmd) Name() string      { return "categories" }
func (c *CategoriesCmd) Aliases() []string { return nil }
func (c *CategoriesCmd) Synopsis() string  { return "Print all categories" }
func (c *CategoriesCmd) Usage() string     { return "categories" }
func (c *CategoriesCmd) Scope() Scope      { return ScopeSession }
func (c *CategoriesCmd) NeedsAuth() bool   { return false }

func (c *CategoriesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *CategoriesCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	snap := env.Board.Snapshot()
	for _, name := range snap.Categories {
		output.FormatName(out, name, name == snap.FilterCategory)
	}
	return exitcode.Success
}

// StatusesCmd implements the statuses command. The selected status is
// marked with *.
type StatusesCmd struct{}

func (c *StatusesCmd) Name() string      { return "statuses" }
func (c *StatusesCmd) Aliases() []string { return nil }
func (c *StatusesCmd) Synopsis() string  { return "Print all statuses" }
func (c *StatusesCmd) Usage() string     { return "statuses" }
func (c *StatusesCmd) Scope() Scope      { return ScopeSession }
func (c *StatusesCmd) NeedsAuth() bool   { return false }

func (c *StatusesCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusesCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	snap := env.Board.Snapshot()
	for _, name := range snap.Statuses {
		output.FormatName(out, name, name == snap.SelectedStatus)
	}
	return exitcode.Success
}
