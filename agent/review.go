package agent

import "fmt"

// DirectiveKind identifies the reviewer's decision.
type DirectiveKind string

const (
	// DirectiveContinue approves the pending tool call as-is.
	DirectiveContinue DirectiveKind = "continue"

	// DirectiveUpdate replaces the assistant turn with new instructions.
	DirectiveUpdate DirectiveKind = "update"

	// DirectiveFeedback injects a free-text reviewer comment.
	DirectiveFeedback DirectiveKind = "feedback"
)

// Directive is the reviewer's answer to a suspended run. Text carries the
// replacement instructions for DirectiveUpdate and the comment for
// DirectiveFeedback; it is ignored for DirectiveContinue.
type Directive struct {
	Kind DirectiveKind `json:"kind"`
	Text string        `json:"text,omitempty"`
}

// Continue approves the pending tool call unchanged.
func Continue() Directive {
	return Directive{Kind: DirectiveContinue}
}

// Update replaces the pending assistant turn with new instructions.
func Update(text string) Directive {
	return Directive{Kind: DirectiveUpdate, Text: text}
}

// Feedback injects the reviewer's comment into the conversation.
func Feedback(text string) Directive {
	return Directive{Kind: DirectiveFeedback, Text: text}
}

// Validate returns ErrInvalidDirective for unknown kinds. There is no
// silent default: a bad directive is a programming defect in the caller.
func (d Directive) Validate() error {
	switch d.Kind {
	case DirectiveContinue, DirectiveUpdate, DirectiveFeedback:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirective, d.Kind)
	}
}
