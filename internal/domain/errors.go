package domain

import "errors"

var (
	// ErrPayloadExceeded means the stack would push the bin over its weight limit.
	ErrPayloadExceeded = errors.New("payload exceeded")
	// ErrExceedsHeight means the stack is taller than the bin interior.
	ErrExceedsHeight = errors.New("exceeds interior height")
	// ErrNoFloorSpace means no orientation fits the remaining floor plan.
	ErrNoFloorSpace = errors.New("no floor space left")
)
