//go:build !linux

package sensor

import "errors"

// RealReader is not available on non-Linux platforms.
type RealReader struct{}

// NewRealReader returns an error on non-Linux platforms.
func NewRealReader(opts Options) (*RealReader, error) {
	return nil, errors.New("sensor: not supported on this platform (requires Linux)")
}

// ReadDigital is not implemented on non-Linux platforms.
func (r *RealReader) ReadDigital() bool {
	return false
}

// ReadAnalog is not implemented on non-Linux platforms.
func (r *RealReader) ReadAnalog() int {
	return 0
}

// Close is not implemented on non-Linux platforms.
func (r *RealReader) Close() error {
	return nil
}
