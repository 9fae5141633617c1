package domain

import "errors"

// Error kinds raised by construction, mutation, and parsing.
// Callers discriminate with errors.Is.
var (
	// ErrConfig marks an impossible board shape at construction.
	ErrConfig = errors.New("invalid board configuration")
	// ErrValue marks a token that is not a valid cell symbol.
	ErrValue = errors.New("invalid symbol")
	// ErrRange marks a stored value outside [0, boardsize].
	ErrRange = errors.New("value out of range")
	// ErrFormat marks an unreadable board file; nothing is partially loaded.
	ErrFormat = errors.New("malformed board file")
)
