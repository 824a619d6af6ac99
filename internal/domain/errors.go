package domain

import "errors"

// Validation errors. The message text is the client-facing rejection and is
// surfaced verbatim in 400 responses, hence the capitalization.
var (
	ErrMissingFields = errors.New("Missing required fields: name, score, level")
	ErrInvalidName   = errors.New("Invalid name (max 50 chars)")
	ErrInvalidScore  = errors.New("Invalid score (0-999999)")
	ErrInvalidLevel  = errors.New("Invalid level (1-50)")
)

// Classification errors for failures past validation.
var (
	ErrConfiguration = errors.New("server configuration error")
	ErrUpstreamFetch = errors.New("leaderboard fetch failed")
	ErrUpstreamWrite = errors.New("leaderboard update failed")
)
