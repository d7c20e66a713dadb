package audio

import "fmt"

// DependencyMissingError means the audio backend library is not usable.
type DependencyMissingError struct {
	Backend string
	Remedy  string
	Err     error
}

func (e *DependencyMissingError) Error() string {
	return fmt.Sprintf("%s is not available: %v (%s)", e.Backend, e.Err, e.Remedy)
}

func (e *DependencyMissingError) Unwrap() error {
	return e.Err
}

// StreamInitError means the input stream could not be opened or started.
type StreamInitError struct {
	Err error
}

func (e *StreamInitError) Error() string {
	return fmt.Sprintf("failed to start audio stream: %v", e.Err)
}

func (e *StreamInitError) Unwrap() error {
	return e.Err
}

// DriverStatusWarning reports a non-fatal per-block driver condition.
type DriverStatusWarning struct {
	Flags StatusFlags
}

func (w DriverStatusWarning) Error() string {
	return fmt.Sprintf("audio driver status: %s", w.Flags)
}
