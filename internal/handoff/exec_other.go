//go:build !unix

package handoff

import "os"

// Exec approximates process-image replacement on platforms without exec
// semantics: it runs argv as a child with forwarded signals and exits with
// exactly the child's status. Only returns on error.
func Exec(argv []string) error {
	code, err := Forward(argv)
	if err != nil {
		return err
	}
	os.Exit(code)
	return nil
}
