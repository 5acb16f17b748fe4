package editor

import "errors"

// Sentinel errors for session operations.
var (
	// ErrReadOnly is returned by mutating operations on a read-only session.
	ErrReadOnly = errors.New("session is read-only")

	// ErrNoClipboard is returned when no clipboard backend is available.
	ErrNoClipboard = errors.New("no clipboard available")
)
