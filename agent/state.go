package agent

import (
	"time"

	"github.com/google/uuid"
	ai "github.com/lexdraft/lexdraft"
)

// Node identifies a state-machine position.
type Node string

const (
	// NodeCallModel produces the next assistant turn. Initial node.
	NodeCallModel Node = "call_model"

	// NodeHumanReview suspends the run for reviewer input.
	NodeHumanReview Node = "human_review"

	// NodeTools executes the approved pending tool call.
	NodeTools Node = "tools"

	// NodeEnd is the terminal node.
	NodeEnd Node = "end"
)

// State is the conversation state owned by a single run. It is fully
// serializable so a suspended run can be captured and resumed elsewhere.
//
// The transcript only ever grows: model turns, tool results, and the
// synthetic messages injected by review directives are appended, never
// removed.
type State struct {
	Messages   []ai.Message `json:"messages"`
	Steps      int          `json:"steps"`
	IsLastStep bool         `json:"isLastStep"`
}

// Append adds messages to the transcript.
func (s *State) Append(msgs ...ai.Message) {
	s.Messages = append(s.Messages, msgs...)
}

// LastMessage returns the most recent message and true, or false for an
// empty transcript.
func (s State) LastMessage() (ai.Message, bool) {
	if len(s.Messages) == 0 {
		return ai.Message{}, false
	}
	return s.Messages[len(s.Messages)-1], true
}

// PendingToolCall returns the first tool call proposed by the most recent
// assistant message, or nil if there is none. It is recomputed from the
// transcript each cycle; only this first call is ever acted upon.
func (s State) PendingToolCall() *ai.ToolCall {
	last, ok := s.LastMessage()
	if !ok {
		return nil
	}
	return last.FirstToolCall()
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	out.Messages = make([]ai.Message, len(s.Messages))
	copy(out.Messages, s.Messages)
	return out
}

// Interrupt is the payload exposed to the reviewer while a run is
// suspended. ToolCall is nil when the latest assistant turn proposed no
// tools; the question is surfaced regardless.
type Interrupt struct {
	Question string       `json:"question"`
	ToolCall *ai.ToolCall `json:"toolCall,omitempty"`
}

// Checkpoint captures a suspended run: the full state plus the node to
// resume from. It is the only artifact needed to continue a run.
type Checkpoint struct {
	RunID     string     `json:"runId"`
	Node      Node       `json:"node"`
	State     State      `json:"state"`
	Interrupt *Interrupt `json:"interrupt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

// GenerateRunID creates a unique run identifier.
func GenerateRunID() string {
	return "run-" + uuid.New().String()
}
