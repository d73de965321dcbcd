// Package agent implements the orchestrator for the legal-drafting
// conversation loop.
//
// The orchestrator is a small state machine with three working nodes and a
// terminal node:
//
//	call_model ──▶ human_review ──▶ tools ──▶ call_model
//	     │              │
//	     ▼              ▼ (update / feedback)
//	    end         call_model
//
// call_model asks the chat provider for the next assistant turn. If that
// turn proposes a tool call, the run suspends at human_review: the full
// run state is captured in a serializable [Checkpoint], persisted through a
// store adapter, and returned to the caller. Nothing is held while
// suspended; any process with the checkpoint can resume.
//
// The reviewer answers with one of three directives:
//
//   - [Continue]: execute the pending tool call exactly as proposed
//   - [Update]: replace the assistant turn with new instructions and ask
//     the model again
//   - [Feedback]: inject a free-text comment and ask the model again
//
// Any other directive kind is a programming defect and fails the resume.
//
// # Usage
//
//	orc := agent.New(client, registry, agent.WithMaxSteps(5))
//
//	outcome, err := orc.Run(ctx, "Draft an NDA for a software project.")
//	for err == nil && outcome.Suspended() {
//	    directive := askReviewer(outcome.Interrupt())
//	    outcome, err = orc.Resume(ctx, outcome.Checkpoint, directive)
//	}
//
// Only the first tool call of a turn is ever reviewed and executed, even
// when the model proposes several. If the step budget is exhausted while
// the model still wants tools, the run ends with a fixed refusal message
// instead of executing anything.
package agent
