//go:build !unix

package handoff

import "os"

func exitStatus(state *os.ProcessState) int {
	return state.ExitCode()
}
