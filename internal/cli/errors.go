package cli

import "errors"

// Command input errors.
var (
	ErrUnknownField      = errors.New("unknown profile field")
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrResetNotConfirmed = errors.New("reset not confirmed")
)
