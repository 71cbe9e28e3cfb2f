package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todoboard/internal/config"
	"todoboard/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command. The command lists come from the
// registry, split by where each command runs.
type HelpCmd struct {
	registry *Registry
}

// NewHelpCmd returns a help command describing r.
func NewHelpCmd(r *Registry) *HelpCmd {
	return &HelpCmd{registry: r}
}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "help" }
func (c *HelpCmd) Scope() Scope      { return ScopeAny }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	r := c.registry
	if r == nil {
		r = DefaultRegistry
	}

	app := config.AppName
	fmt.Fprintln(out, "Usage:")
	helpLine(out, app+" [common flags]", "Start an interactive session")
	helpLine(out, app+" shell [common flags]", "Same as above")
	for _, cmd := range r.All(ScopeTop) {
		helpLine(out, app+" "+cmd.Usage(), cmd.Synopsis())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Session commands:")
	for _, cmd := range r.All(ScopeSession) {
		synopsis := cmd.Synopsis()
		if aliases := cmd.Aliases(); len(aliases) > 0 {
			synopsis += " (alias: " + strings.Join(aliases, ", ") + ")"
		}
		helpLine(out, cmd.Usage(), synopsis)
	}
	helpLine(out, "exit", "Leave the session")

	fmt.Fprint(out, helpTrailer)
	return exitcode.Success
}

func helpLine(w io.Writer, usage, synopsis string) {
	fmt.Fprintf(w, "  %-46s %s\n", usage, synopsis)
}

const helpTrailer = `
Task refs:
  3         third task of the flat list
  b2        second task of column b
  3f2a9c    task ID prefix (4 or more hex digits), as printed by add and list

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
