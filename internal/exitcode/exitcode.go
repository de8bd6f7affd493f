// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, task number out of range).
	UserError = 1

	// AuthError indicates a missing session or wrong credentials.
	AuthError = 2

	// StorageError indicates the storage backend could not be opened.
	StorageError = 3
)
