package content

import "fmt"

// ValidationError reports missing or invalid required input. It is raised
// before any generation attempt and leaves no partial state behind.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// GenerationFailure reports that the external generator call itself failed
// (network or service error). It is retryable by the user, never
// automatically.
type GenerationFailure struct {
	Err error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("generation request failed: %v", e.Err)
}

func (e *GenerationFailure) Unwrap() error { return e.Err }
