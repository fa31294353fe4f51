//go:build unix

package update

import (
	"fmt"
	"os"
	"syscall"
)

// Reload replaces the current process with the binary at path, keeping the
// arguments and environment. It only returns on failure.
func Reload(path string) error {
	if err := syscall.Exec(path, os.Args, os.Environ()); err != nil {
		return fmt.Errorf("restart %s: %w", path, err)
	}
	return nil
}
