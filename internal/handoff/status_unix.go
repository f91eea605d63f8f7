//go:build unix

package handoff

import (
	"os"
	"syscall"
)

// exitStatus mirrors the shell convention: a signal death reports 128+n
// so the supervisor sees the same status it would have seen from the
// service itself.
func exitStatus(state *os.ProcessState) int {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return state.ExitCode()
}
