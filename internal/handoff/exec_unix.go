//go:build unix

package handoff

import (
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with argv. Same pid, same file
// descriptors, same environment; the container supervisor keeps talking
// to what it thinks is its main process, which is now the service. Only
// returns on error.
func Exec(argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("empty command vector")
	}

	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("cannot resolve start command %q: %w", argv[0], err)
	}

	if err := unix.Exec(path, argv, os.Environ()); err != nil {
		return fmt.Errorf("exec %s: %w", path, err)
	}

	// Unreachable: Exec does not return on success.
	return nil
}
