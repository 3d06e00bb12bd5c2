package models

import "errors"

// Error categories surfaced to the user. Wrap with fmt.Errorf and %w,
// check with errors.Is.
var (
	// ErrInvalidArgument means the command line input was unusable
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRepository means the diff could not be extracted from the repository
	ErrRepository = errors.New("repository error")
	// ErrInferenceUnavailable means the Ollama server was unreachable or rejected the request
	ErrInferenceUnavailable = errors.New("inference unavailable")
	// ErrInferenceTimeout means the Ollama server did not answer within the configured timeout
	ErrInferenceTimeout = errors.New("inference timeout")
)
