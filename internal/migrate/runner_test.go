package migrate

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"
	"testing"

	"github.com/sashavipro/Swipe/pkg/logging"
)

func testLogger() *logging.Logger {
	logger := logging.NewLogger(logging.ERROR, false)
	logger.SetOutput(io.Discard)
	return logger
}

func fakeTool(script string) func(ctx context.Context) *exec.Cmd {
	return func(ctx context.Context) *exec.Cmd {
		return exec.CommandContext(ctx, "sh", "-c", script)
	}
}

func TestRunSuccess(t *testing.T) {
	r := NewRunner(testLogger())
	r.command = fakeTool("exit 0")
	r.Stdout = io.Discard
	r.Stderr = io.Discard

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
}

func TestRunNonZeroExit(t *testing.T) {
	r := NewRunner(testLogger())
	r.command = fakeTool("exit 1")
	r.Stdout = io.Discard
	r.Stderr = io.Discard

	err := r.Run(context.Background())
	if err == nil {
		t.Fatal("Run() = nil, expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "status 1") {
		t.Errorf("error %q does not identify the exit status", err)
	}
}

func TestRunToolNotFound(t *testing.T) {
	r := NewRunner(testLogger())
	r.command = func(ctx context.Context) *exec.Cmd {
		return exec.CommandContext(ctx, "definitely-not-a-migration-tool")
	}
	r.Stdout = io.Discard
	r.Stderr = io.Discard

	err := r.Run(context.Background())
	if err == nil {
		t.Fatal("Run() = nil, expected error for missing tool")
	}
	if !strings.Contains(err.Error(), "could not be started") {
		t.Errorf("error %q does not identify a start failure", err)
	}
}

func TestRunStreamsPassThrough(t *testing.T) {
	var out bytes.Buffer
	r := NewRunner(testLogger())
	r.command = fakeTool("echo applying revision abc123")
	r.Stdout = &out
	r.Stderr = io.Discard

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, expected nil", err)
	}
	if !strings.Contains(out.String(), "applying revision abc123") {
		t.Errorf("tool output was not passed through: %q", out.String())
	}
}

func TestDefaultCommandIsFixed(t *testing.T) {
	r := NewRunner(testLogger())
	cmd := r.buildCommand(context.Background())

	if len(cmd.Args) != 3 || cmd.Args[1] != "upgrade" || cmd.Args[2] != "head" {
		t.Errorf("default command = %v, expected the fixed upgrade invocation", cmd.Args)
	}
}
