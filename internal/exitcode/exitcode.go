// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown ref, wrong context).
	UserError = 1

	// AuthError indicates an auth/config error.
	AuthError = 2

	// SourceError indicates an import source, network or server error.
	SourceError = 3
)
