package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrFileLock is returned when the settings lock is held elsewhere.
	ErrFileLock = errors.New("lock")
	// ErrAtomicWrite is returned when a file could not be replaced atomically.
	ErrAtomicWrite = errors.New("atomic write failed")
)
