package migrate

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sashavipro/Swipe/pkg/logging"
)

// The schema migration tool shipped in the Swipe image. Fixed on purpose:
// the entrypoint gates the step, it does not choose the tool.
const migrationProgram = "alembic"

var migrationArgs = []string{"upgrade", "head"}

// Runner invokes the migration tool synchronously. The tool's only
// contract with us is its exit status; stdout/stderr pass through to the
// container's streams and are never captured or parsed.
type Runner struct {
	log *logging.Logger

	// Stream overrides for tests; nil means the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// command builds the exec.Cmd. Overridable in tests to stand in a
	// fake tool for the real one.
	command func(ctx context.Context) *exec.Cmd
}

// NewRunner creates a migration runner
func NewRunner(log *logging.Logger) *Runner {
	return &Runner{log: log}
}

// Run executes the migration tool and blocks until it exits. No timeout
// is imposed here; a hung migration hangs the bootstrap, and liveness is
// the orchestration layer's problem.
func (r *Runner) Run(ctx context.Context) error {
	cmd := r.buildCommand(ctx)

	r.log.Info("Running schema migration", map[string]interface{}{
		"command": cmd.Args,
	})

	started := time.Now()
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("migration command exited with status %d: %w", exitErr.ExitCode(), err)
		}
		return fmt.Errorf("migration command could not be started: %w", err)
	}

	r.log.Info("Schema migration complete", map[string]interface{}{
		"duration": time.Since(started).Round(time.Millisecond).String(),
	})
	return nil
}

func (r *Runner) buildCommand(ctx context.Context) *exec.Cmd {
	var cmd *exec.Cmd
	if r.command != nil {
		cmd = r.command(ctx)
	} else {
		cmd = exec.CommandContext(ctx, migrationProgram, migrationArgs...)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if r.Stdin != nil {
		cmd.Stdin = r.Stdin
	}
	if r.Stdout != nil {
		cmd.Stdout = r.Stdout
	}
	if r.Stderr != nil {
		cmd.Stderr = r.Stderr
	}
	return cmd
}
