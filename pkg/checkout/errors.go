package checkout

import "floraform.ca/storefront/pkg/global"

// ValidationError blocks a transition until the user corrects input. It is
// fixable locally and never reaches a collaborator.
type ValidationError struct {
	Message string
	Fields  []global.ValidationError
}

func (e *ValidationError) Error() string {
	return e.Message
}

// SubmissionError wraps a persistence failure. The cart stays intact so
// the user can retry without re-entering items.
type SubmissionError struct {
	Message string
	Cause   error
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
