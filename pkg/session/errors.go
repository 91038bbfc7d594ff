package session

import "fmt"

// ValidationError reports user input that cannot be acted on. Nothing is
// mutated when it is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("session: %s", e.Reason)
}

// ErrNoMood is returned by SubmitEntry when no mood is selected.
var ErrNoMood = &ValidationError{Reason: "no mood selected"}
