package core

import "errors"

// Common errors.
var (
	ErrSourceUnavailable = errors.New("course source is unavailable")
	ErrInvalidRecord     = errors.New("invalid course record")
	ErrNotFound          = errors.New("course not found")
	ErrInvalidMenuChoice = errors.New("invalid menu choice")
	ErrEmptyCatalog      = errors.New("no courses were loaded")
	ErrInputClosed       = errors.New("input closed")
)
