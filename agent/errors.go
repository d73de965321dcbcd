package agent

import "errors"

var (
	// ErrMalformedResponse indicates the chat provider returned something
	// other than a well-formed assistant turn. This is an integration
	// defect, not a recoverable condition.
	ErrMalformedResponse = errors.New("agent: malformed model response")

	// ErrInvalidDirective indicates a resume was attempted with an unknown
	// directive kind.
	ErrInvalidDirective = errors.New("agent: invalid review directive")

	// ErrNoCheckpoint indicates no suspended run exists for the given ID.
	ErrNoCheckpoint = errors.New("agent: no checkpoint for run")

	// ErrNotSuspended indicates a resume was attempted on a checkpoint that
	// is not parked at the review gate.
	ErrNotSuspended = errors.New("agent: checkpoint not suspended at review gate")
)
