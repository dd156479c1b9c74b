package assessment

import "errors"

// Error kinds surfaced by the core. Callers branch with errors.Is; the
// HTTP handler maps each kind to a status code. Every failure aborts the
// triggering Start/Respond call with the session left unchanged.
var (
	ErrValidation           = errors.New("validation failed")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionNotActive     = errors.New("session is not active")
	ErrInvalidAnswer        = errors.New("answer does not match available options")
	ErrMissingAnswer        = errors.New("answer is required")
	ErrClassificationFailed = errors.New("answer classification failed")
)
