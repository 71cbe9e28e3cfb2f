package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todoboard/internal/exitcode"
	"todoboard/internal/server"
)

func init() {
	Register(&ServeCmd{})
}

// ServeCmd implements the serve command. The board lives as long as the
// process.
type ServeCmd struct {
	addr string
}

func (c *ServeCmd) Name() string      { return "serve" }
func (c *ServeCmd) Aliases() []string { return nil }
func (c *ServeCmd) Synopsis() string  { return "Serve the board to browsers" }
func (c *ServeCmd) Usage() string     { return "serve [--addr <host:port>]" }
func (c *ServeCmd) Scope() Scope      { return ScopeTop }
func (c *ServeCmd) NeedsAuth() bool   { return false }

func (c *ServeCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.addr, "addr", "", "")
}

// LongRunning implements LongRunner.
func (c *ServeCmd) LongRunning() bool { return true }

func (c *ServeCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	cfg := env.Config.Server
	if c.addr != "" {
		cfg.Addr = c.addr
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "serving on http://%s\n", cfg.Addr)
	}
	srv := server.New(env.Board, cfg, env.Config.Log())
	if err := srv.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}
	return exitcode.Success
}
