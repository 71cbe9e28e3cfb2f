package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoboard/internal/exitcode"
)

func init() {
	Register(&FilterCmd{})
}

// FilterCmd implements the filter command.
type FilterCmd struct{}

func (c *FilterCmd) Name() string      { return "filter" }
func (c *FilterCmd) Aliases() []string { return nil }
func (c *FilterCmd) Synopsis() string  { return "Show one category, or all with no argument" }
func (c *FilterCmd) Usage() string     { return "filter [<category>]" }
func (c *FilterCmd) Scope() Scope      { return ScopeSession }
func (c *FilterCmd) NeedsAuth() bool   { return false }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *FilterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	category := ""
	if name := strings.Join(args, " "); strings.TrimSpace(name) != "" {
		var ok bool
		category, ok = matchName(env.Board.Snapshot().Categories, name)
		if !ok {
			fmt.Fprintf(errOut, "error: unknown category: %s\n", strings.TrimSpace(name))
			return exitcode.UserError
		}
	}

	env.Board.SetFilterCategory(category)

	if !env.Config.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}

// matchName finds name in names ignoring case and surrounding space and
// returns the configured spelling.
func matchName(names []string, name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return n, true
		}
	}
	return "", false
}
