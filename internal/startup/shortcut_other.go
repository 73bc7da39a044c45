//go:build !windows

package startup

// unsupportedWriter reports ErrUnsupported for every write.
type unsupportedWriter struct{}

// NewWriter returns the platform shortcut writer.
func NewWriter() Writer {
	return unsupportedWriter{}
}

func (unsupportedWriter) Write(string, Shortcut) error {
	return ErrUnsupported
}
