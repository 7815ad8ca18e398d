package script

import "errors"

// Errors returned by the script host.
var (
	// ErrHostClosed is returned when running code on a closed host.
	ErrHostClosed = errors.New("script host is closed")

	// ErrTimeout is returned when a script runs past its deadline.
	ErrTimeout = errors.New("script execution timeout")
)
