package go3to4

import "errors"

// Sentinel errors for the go3to4 package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("go3to4: invalid move notation")

	// Planning errors
	ErrCannotGyro = errors.New("go3to4: cell cannot be gyroed")

	// Scramble errors
	ErrBadDifficulty = errors.New("go3to4: difficulty out of range")
)
