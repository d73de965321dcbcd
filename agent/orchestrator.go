package agent

import (
	"context"
	"fmt"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/event"
	"github.com/lexdraft/lexdraft/tool"
)

// Orchestrator drives the call-model / review / tools loop for one or more
// independent runs. It is stateless between calls: every run owns its own
// State, so concurrent runs are fully isolated.
type Orchestrator struct {
	chatClient  ai.ChatProvider
	registry    *tool.Registry
	checkpoints *CheckpointStore
	options     *Options
}

// New creates an Orchestrator with the given chat provider and tool registry.
func New(client ai.ChatProvider, registry *tool.Registry, opts ...Option) *Orchestrator {
	options := ApplyOptions(opts...)
	return &Orchestrator{
		chatClient:  client,
		registry:    registry,
		checkpoints: NewCheckpointStore(options.Checkpoints),
		options:     options,
	}
}

// Checkpoints returns the checkpoint store, for callers that manage
// suspended runs across processes.
func (o *Orchestrator) Checkpoints() *CheckpointStore {
	return o.checkpoints
}

// Outcome is the result of driving a run as far as it can go: either to
// the terminal node, or to a suspension at the review gate.
type Outcome struct {
	RunID string
	State State

	// Checkpoint is non-nil when the run is suspended for human review.
	Checkpoint *Checkpoint
}

// Suspended reports whether the run is parked at the review gate.
func (o *Outcome) Suspended() bool {
	return o.Checkpoint != nil
}

// Interrupt returns the review payload of a suspended run, or nil.
func (o *Outcome) Interrupt() *Interrupt {
	if o.Checkpoint == nil {
		return nil
	}
	return o.Checkpoint.Interrupt
}

// FinalContent returns the content of the last assistant message, or the
// empty string if there is none.
func (o *Outcome) FinalContent() string {
	for i := len(o.State.Messages) - 1; i >= 0; i-- {
		if o.State.Messages[i].Role == ai.RoleAssistant {
			return o.State.Messages[i].Content
		}
	}
	return ""
}

// Run starts a fresh run from a user question and drives it until it ends
// or suspends for review.
func (o *Orchestrator) Run(ctx context.Context, question string) (*Outcome, error) {
	return o.RunState(ctx, State{
		Messages: []ai.Message{ai.NewUserMessage(question)},
	})
}

// RunState starts a run from pre-seeded state, e.g. a multi-turn
// conversation carried over from a previous run.
func (o *Orchestrator) RunState(ctx context.Context, state State) (*Outcome, error) {
	runID := GenerateRunID()
	o.emit(event.Event{Type: event.RunStart, RunID: runID})
	return o.loop(ctx, runID, NodeCallModel, state.Clone())
}

// Resume continues a suspended run with the reviewer's directive.
//
// Continue executes the pending tool call exactly as proposed. Update and
// Feedback append a synthetic assistant message carrying the directive
// text and hand control back to the model. An unknown directive kind fails
// fatally; nothing proceeds silently.
func (o *Orchestrator) Resume(ctx context.Context, cp *Checkpoint, directive Directive) (*Outcome, error) {
	if cp == nil {
		return nil, ErrNoCheckpoint
	}
	if cp.Node != NodeHumanReview {
		return nil, fmt.Errorf("%w: node %q", ErrNotSuspended, cp.Node)
	}
	if err := directive.Validate(); err != nil {
		o.emit(event.Event{Type: event.RunError, RunID: cp.RunID, Message: err.Error()})
		return nil, err
	}

	state := cp.State.Clone()
	var next Node

	switch directive.Kind {
	case DirectiveContinue:
		next = NodeTools
	case DirectiveUpdate, DirectiveFeedback:
		state.Append(ai.Message{
			ID:      ai.GenerateMessageID(),
			Role:    ai.RoleAssistant,
			Content: directive.Text,
		})
		next = NodeCallModel
	}

	// The suspension is consumed exactly once.
	if err := o.checkpoints.Delete(ctx, cp.RunID); err != nil {
		return nil, err
	}

	o.emit(event.Event{
		Type:    event.ReviewResolved,
		RunID:   cp.RunID,
		Step:    state.Steps,
		Message: string(directive.Kind),
	})
	return o.loop(ctx, cp.RunID, next, state)
}

// ResumeRun loads the checkpoint for runID from the store and resumes it.
func (o *Orchestrator) ResumeRun(ctx context.Context, runID string, directive Directive) (*Outcome, error) {
	cp, err := o.checkpoints.Load(ctx, runID)
	if err != nil {
		return nil, err
	}
	return o.Resume(ctx, cp, directive)
}

// loop advances the state machine until the run ends or suspends.
func (o *Orchestrator) loop(ctx context.Context, runID string, node Node, state State) (*Outcome, error) {
	for {
		switch node {
		case NodeCallModel:
			done, err := o.callModel(ctx, runID, &state)
			if err != nil {
				o.emit(event.Event{Type: event.RunError, RunID: runID, Step: state.Steps, Message: err.Error()})
				return nil, err
			}
			if done {
				node = NodeEnd
				continue
			}
			node, err = routeModelOutput(state)
			if err != nil {
				o.emit(event.Event{Type: event.RunError, RunID: runID, Step: state.Steps, Message: err.Error()})
				return nil, err
			}

		case NodeHumanReview:
			cp := &Checkpoint{
				RunID: runID,
				Node:  NodeHumanReview,
				State: state,
				Interrupt: &Interrupt{
					Question: reviewQuestion,
					ToolCall: state.PendingToolCall(),
				},
				CreatedAt: o.options.Now(),
			}
			if err := o.checkpoints.Save(ctx, cp); err != nil {
				return nil, err
			}
			o.emit(event.Event{
				Type:     event.ReviewRequested,
				RunID:    runID,
				Step:     state.Steps,
				ToolCall: cp.Interrupt.ToolCall,
			})
			return &Outcome{RunID: runID, State: state, Checkpoint: cp}, nil

		case NodeTools:
			if err := o.executeTools(ctx, runID, &state); err != nil {
				o.emit(event.Event{Type: event.RunError, RunID: runID, Step: state.Steps, Message: err.Error()})
				return nil, err
			}
			node = NodeCallModel

		case NodeEnd:
			o.emit(event.Event{Type: event.RunEnd, RunID: runID, Step: state.Steps})
			return &Outcome{RunID: runID, State: state}, nil

		default:
			return nil, fmt.Errorf("agent: unknown node %q", node)
		}
	}
}

// routeModelOutput decides the next node from the latest message. Anything
// other than an assistant message here is an integration defect.
func routeModelOutput(state State) (Node, error) {
	last, ok := state.LastMessage()
	if !ok || last.Role != ai.RoleAssistant {
		return "", fmt.Errorf("%w: expected assistant message after model call, got %q", ErrMalformedResponse, last.Role)
	}
	if last.FirstToolCall() == nil {
		return NodeEnd, nil
	}
	return NodeHumanReview, nil
}

// callModel produces the next assistant turn. Returns done=true when the
// run must terminate immediately (step budget refusal).
func (o *Orchestrator) callModel(ctx context.Context, runID string, state *State) (done bool, err error) {
	state.Steps++
	state.IsLastStep = o.options.MaxSteps > 0 && state.Steps >= o.options.MaxSteps
	o.emit(event.Event{Type: event.StepStart, RunID: runID, Step: state.Steps})

	system := o.systemMessage(state)
	messages := make([]ai.Message, 0, len(state.Messages)+1)
	messages = append(messages, ai.NewSystemMessage(system))
	messages = append(messages, state.Messages...)

	chatOpts := append([]ai.Option{ai.WithTools(o.registry.Tools())}, o.options.ChatOptions...)
	resp, err := o.chatClient.Chat(ctx, messages, chatOpts...)
	if err != nil {
		return false, fmt.Errorf("agent: model call failed: %w", err)
	}
	if resp == nil {
		return false, ErrMalformedResponse
	}

	msg := resp.Message()

	// A first-turn document request must gather details before drafting,
	// even if the model jumped straight to the document tool.
	if o.replaceWithInfoGathering(*state, msg) {
		msg = ai.Message{ID: msg.ID, Role: ai.RoleAssistant, Content: infoGatheringReply}
	}

	// Out of budget with a tool still pending: answer with the fixed
	// refusal instead of the proposal and end the run.
	if state.IsLastStep && len(msg.ToolCalls) > 0 {
		state.Append(ai.Message{ID: msg.ID, Role: ai.RoleAssistant, Content: stepBudgetRefusal})
		o.emit(event.Event{Type: event.StepEnd, RunID: runID, Step: state.Steps})
		return true, nil
	}

	state.Append(msg)
	o.emit(event.Event{Type: event.StepEnd, RunID: runID, Step: state.Steps})
	return false, nil
}

// systemMessage selects, renders, and augments the system prompt for the
// current turn.
func (o *Orchestrator) systemMessage(state *State) string {
	prompt := o.options.SystemPrompt
	if prompt == "" {
		prompt = selectSystemPrompt(state.Messages)
	}
	system := renderSystemPrompt(prompt, o.options.Now())

	if documentRequested(state.Messages) &&
		!informationGathering(state.Messages) &&
		countRole(state.Messages, ai.RoleUser) == 1 {
		system += documentGuardInstruction
	}
	return system
}

// replaceWithInfoGathering reports whether the model's first answer to a
// document request tried to create the document immediately.
func (o *Orchestrator) replaceWithInfoGathering(state State, msg ai.Message) bool {
	if !documentRequested(state.Messages) {
		return false
	}
	if countRole(state.Messages, ai.RoleAssistant) > 0 {
		return false
	}
	for _, tc := range msg.ToolCalls {
		if tc.Name == "create_word_doc" {
			return true
		}
	}
	return false
}

// executeTools runs the approved pending tool call and appends its result.
// Tool failures (including unknown tools) become result content the model
// can react to; they are never fatal here.
func (o *Orchestrator) executeTools(ctx context.Context, runID string, state *State) error {
	pending := state.PendingToolCall()
	if pending == nil {
		return fmt.Errorf("agent: tools node reached with no pending tool call")
	}

	o.emit(event.Event{Type: event.ToolCallExecuting, RunID: runID, Step: state.Steps, ToolCall: pending})

	result, err := o.registry.Execute(ctx, *pending)
	if err != nil {
		result = ai.ToolResult{
			ToolCallID: pending.ID,
			Content:    err.Error(),
			IsError:    true,
		}
	}

	state.Append(ai.NewToolResultMessage(result))
	o.emit(event.Event{Type: event.ToolCallResult, RunID: runID, Step: state.Steps, ToolCall: pending, ToolResult: &result})
	return nil
}

func (o *Orchestrator) emit(ev event.Event) {
	event.Emit(o.options.Events, ev)
}
