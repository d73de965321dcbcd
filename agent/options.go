package agent

import (
	"time"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/event"
	"github.com/lexdraft/lexdraft/internal/store"
)

// Options contains configuration for orchestrator runs.
type Options struct {
	// MaxSteps limits the number of model round trips per run.
	// Default is 10.
	MaxSteps int

	// SystemPrompt overrides the built-in prompts. When empty, a prompt is
	// selected per turn from the detected user intent. Must contain the
	// {system_time} placeholder to receive the current timestamp.
	SystemPrompt string

	// Checkpoints is the adapter used to persist suspended runs.
	// Defaults to an in-memory adapter.
	Checkpoints store.Adapter

	// Now supplies the current time for prompt rendering and checkpoint
	// timestamps. Defaults to time.Now.
	Now func() time.Time

	// ChatOptions are passed through to the ChatProvider on every call.
	ChatOptions []ai.Option

	// Events receives lifecycle events; emission never blocks.
	Events chan<- event.Event
}

// Option is a functional option for configuring an orchestrator.
type Option func(*Options)

// WithMaxSteps sets the step budget for each run. Default is 10.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithSystemPrompt fixes the system prompt template instead of selecting
// one from the user's intent.
func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// WithCheckpointAdapter sets the persistence adapter for suspended runs.
func WithCheckpointAdapter(adapter store.Adapter) Option {
	return func(o *Options) {
		o.Checkpoints = adapter
	}
}

// WithClock overrides the time source. Mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithChatOptions passes options through to the ChatProvider.
func WithChatOptions(opts ...ai.Option) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, opts...)
	}
}

// WithModel is a convenience option to set the model for chat calls.
func WithModel(model string) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, ai.WithModel(model))
	}
}

// WithEvents sets the channel lifecycle events are emitted to.
func WithEvents(ch chan<- event.Event) Option {
	return func(o *Options) {
		o.Events = ch
	}
}

// ApplyOptions applies functional options to an Options struct with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		MaxSteps: 10,
		Now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
