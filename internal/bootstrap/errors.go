package bootstrap

import (
	"errors"
	"fmt"
)

// Process exit codes for the two fatal bootstrap outcomes. Distinct so an
// operator reading a dead container's status can tell them apart without
// logs. 1 is left to generic failures and 126/127 to the shell.
const (
	ExitMigrationFailed = 3
	ExitInvalidCommand  = 4
)

// ErrEmptyCommand means the entrypoint was invoked without a start
// command. Exiting cleanly here would be a silent failure: the container
// would stop having run nothing.
var ErrEmptyCommand = errors.New("no start command given: expected <program> [args...] after the entrypoint")

// MigrationError wraps a failed migration attempt. Never retried and
// never downgraded; a broken schema must not be followed by a running
// service.
type MigrationError struct {
	Err error
}

// Error implements error interface
func (e *MigrationError) Error() string {
	return fmt.Sprintf("schema migration failed: %v", e.Err)
}

// Unwrap implements error unwrapping
func (e *MigrationError) Unwrap() error {
	return e.Err
}

// StartError wraps a handoff that the OS rejected (program not on PATH,
// not executable). Same fatality as an empty vector: the command could
// not become the final process.
type StartError struct {
	Program string
	Err     error
}

// Error implements error interface
func (e *StartError) Error() string {
	return fmt.Sprintf("cannot start %q: %v", e.Program, e.Err)
}

// Unwrap implements error unwrapping
func (e *StartError) Unwrap() error {
	return e.Err
}

// ExitCode maps a bootstrap error to its process exit code.
func ExitCode(err error) int {
	var migErr *MigrationError
	if errors.As(err, &migErr) {
		return ExitMigrationFailed
	}
	var startErr *StartError
	if errors.Is(err, ErrEmptyCommand) || errors.As(err, &startErr) {
		return ExitInvalidCommand
	}
	if err != nil {
		return 1
	}
	return 0
}
