//go:build !unix

package update

// Reload is not available on this platform.
func Reload(path string) error {
	return ErrUnsupported
}
