package domain

import "errors"

// Common domain errors. Repositories return these so usecases can map them to
// HTTP-level errors without inspecting driver details.
var (
	ErrNotFound = errors.New("resource not found")

	// Application lifecycle
	ErrDuplicateApplication = errors.New("application already exists for this job and seeker")
	ErrAlreadyWithdrawn     = errors.New("application is already withdrawn")
	ErrNotWithdrawn         = errors.New("application is not withdrawn")

	// Time-range history
	ErrDuplicateOpenRange = errors.New("another open-ended record already exists")
	ErrRangeOverlap       = errors.New("record overlaps an existing one")
)
