// Package event defines the lifecycle events emitted by an orchestrator
// run. Events are observational only: dropping them never changes run
// behavior, so emission is non-blocking.
package event

import ai "github.com/lexdraft/lexdraft"

// Type identifies the kind of event.
type Type string

// Run lifecycle events
const (
	// RunStart fires when a run begins or resumes.
	RunStart Type = "run_start"

	// RunEnd fires when a run reaches the terminal node.
	RunEnd Type = "run_end"

	// RunError fires when a fatal error ends the run.
	RunError Type = "run_error"
)

// Step lifecycle events
const (
	// StepStart fires before each model call.
	StepStart Type = "step_start"

	// StepEnd fires after the model's message is appended.
	StepEnd Type = "step_end"
)

// Tool call lifecycle events
const (
	// ToolCallExecuting fires before the approved tool call runs.
	ToolCallExecuting Type = "tool_call_executing"

	// ToolCallResult fires with the tool execution result.
	ToolCallResult Type = "tool_call_result"
)

// Review lifecycle events
const (
	// ReviewRequested fires when the run suspends at the review gate.
	ReviewRequested Type = "review_requested"

	// ReviewResolved fires when a resume directive is applied.
	ReviewResolved Type = "review_resolved"
)

// Event is a single orchestrator lifecycle event.
type Event struct {
	Type  Type
	RunID string
	Step  int

	// Message is free-form detail: the directive kind for ReviewResolved,
	// the error text for RunError.
	Message string

	ToolCall   *ai.ToolCall
	ToolResult *ai.ToolResult
}

// Emit sends an event without blocking. If the channel is nil or full the
// event is dropped.
func Emit(ch chan<- Event, ev Event) {
	if ch == nil {
		return
	}
	select {
	case ch <- ev:
	default:
	}
}

// NewChannel creates a buffered event channel sized for a typical run.
func NewChannel() chan Event {
	return make(chan Event, 64)
}
