package handoff

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
)

// Signals relayed to the child while it runs. The supervisor must be able
// to shut the service down through us when we cannot exec out of the way.
var forwardedSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGHUP,
	syscall.SIGQUIT,
}

// Forward spawns argv as a child with pass-through stdio, relays
// termination signals to it, and returns the child's exit code once it
// terminates. Fallback for platforms where true replacement is not
// available; the caller is expected to exit with the returned code.
func Forward(argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, fmt.Errorf("empty command vector")
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %q: %w", argv[0], err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, forwardedSignals...)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	go relaySignals(cmd.Process, sigChan, done)

	err := cmd.Wait()
	close(done)

	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return exitStatus(cmd.ProcessState), nil
		}
		return 0, fmt.Errorf("waiting for %q: %w", argv[0], err)
	}
	return exitStatus(cmd.ProcessState), nil
}

// relaySignals delivers each received signal to the child until done is
// closed. Best effort: if the child is already gone, the caller's Wait
// reports its status.
func relaySignals(proc *os.Process, sigs <-chan os.Signal, done <-chan struct{}) {
	for {
		select {
		case sig := <-sigs:
			proc.Signal(sig)
		case <-done:
			return
		}
	}
}
