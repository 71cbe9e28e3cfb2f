package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoboard/internal/exitcode"
	"todoboard/internal/output"
	"todoboard/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ListCmd implements the list command.
type ListCmd struct {
	flat   bool
	format string
}

// SetFlat sets flat mode (for testing).
func (c *ListCmd) SetFlat(flat bool) {
	c.flat = flat
}

// SetFormat sets the output format (for testing).
func (c *ListCmd) SetFormat(format string) {
	c.format = format
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "Print the filtered board" }
func (c *ListCmd) Usage() string     { return "list [--flat] [--format text|json|yaml]" }
func (c *ListCmd) Scope() Scope      { return ScopeSession }
func (c *ListCmd) NeedsAuth() bool   { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.flat, "flat", false, "")
	fs.StringVar(&c.format, "format", FormatText, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	snap := env.Board.Snapshot()

	switch c.format {
	case "", FormatText:
	case FormatJSON, FormatYAML:
		var doc any = output.NewBoard(snap)
		if c.flat {
			doc = output.NewBoard(snap).Filtered
		}
		write := output.WriteJSON
		if c.format == FormatYAML {
			write = output.WriteYAML
		}
		if err := write(out, doc); err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		return exitcode.Success
	default:
		fmt.Fprintf(errOut, "error: invalid format: %s\n", c.format)
		return exitcode.UserError
	}

	if c.flat {
		return c.listFlat(env, snap, out)
	}
	return c.listColumns(env, snap, out, errOut)
}

func (c *ListCmd) listFlat(env *Env, snap service.Snapshot, out io.Writer) int {
	n := 0
	for task := range snap.Filtered() {
		n++
		output.FormatFlatTask(out, n, task)
	}
	if n == 0 && !env.Config.Quiet {
		fmt.Fprintln(out, "no tasks found")
	}
	return exitcode.Success
}

// listColumns prints every column, empty ones included, so letters match
// what refs resolve against.
func (c *ListCmd) listColumns(env *Env, snap service.Snapshot, out, errOut io.Writer) int {
	cols := snap.Columns()
	if len(cols) > 26 {
		fmt.Fprintln(errOut, "error: too many columns (max 26)")
		return exitcode.UserError
	}

	hasAnyTasks := false
	for _, col := range cols {
		if len(col.Tasks) > 0 {
			hasAnyTasks = true
			break
		}
	}
	if !hasAnyTasks {
		if !env.Config.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}

	for i, col := range cols {
		letter, _ := ColumnLetter(i)
		output.FormatColumnHeader(out, letter, col.Status, len(col.Tasks))
		for j, task := range col.Tasks {
			output.FormatTask(out, fmt.Sprintf("%c%d", letter, j+1), task)
		}
	}
	return exitcode.Success
}
