// Package main provides an interactive terminal client for the legal
// drafting agent. Every tool call the model proposes is shown for review
// before it runs; the reviewer can approve it, revise its direction, or
// reject it with feedback.
//
// Configuration is via environment variables (a .env file is loaded if
// present):
//
//	LEXDRAFT_PROVIDER           - Provider: anthropic, openai, or google (default: anthropic)
//	LEXDRAFT_MODEL              - Model override (optional, uses provider default)
//	LEXDRAFT_MAX_STEPS          - Max model calls per run (default: 10)
//	LEXDRAFT_SYSTEM_PROMPT      - Fixed system prompt (optional, overrides selection)
//	LEXDRAFT_MAX_SEARCH_RESULTS - Search results per query (default: 5)
//	LEXDRAFT_OUTPUT_DIR         - Directory for generated documents (default: .)
//	LEXDRAFT_CHECKPOINT_DIR     - Directory for run checkpoints (default: in-memory)
//	LEXDRAFT_LOG_LEVEL          - debug, info, warn, or error (default: info)
//	ANTHROPIC_API_KEY           - Anthropic API key
//	OPENAI_API_KEY              - OpenAI API key
//	GOOGLE_API_KEY              - Google API key
//	TAVILY_API_KEY              - Tavily key for the search tool (optional)
//
// Usage:
//
//	LEXDRAFT_PROVIDER=anthropic go run ./cmd/lexdraft
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/agent"
	"github.com/lexdraft/lexdraft/config"
	"github.com/lexdraft/lexdraft/internal/store"
	"github.com/lexdraft/lexdraft/tool"
)

var reader = bufio.NewReader(os.Stdin)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	setupLogging(cfg.LogLevel)
	ctx := context.Background()

	client, err := cfg.NewChatProvider(ctx)
	if err != nil {
		slog.Error("failed to create chat provider", "provider", cfg.Provider, "error", err)
		os.Exit(1)
	}

	registry := buildRegistry(cfg)
	slog.Info("tools registered", "names", registry.Names())

	adapter, err := buildCheckpointAdapter(cfg)
	if err != nil {
		slog.Error("failed to open checkpoint store", "dir", cfg.CheckpointDir, "error", err)
		os.Exit(1)
	}

	orc := agent.New(client, registry,
		agent.WithMaxSteps(cfg.MaxSteps),
		agent.WithSystemPrompt(cfg.SystemPrompt),
		agent.WithCheckpointAdapter(adapter),
	)

	fmt.Println("lexdraft - legal drafting assistant")
	fmt.Println("Type a question, or 'exit' to quit.")
	fmt.Println()

	var history []ai.Message
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		history = append(history, ai.NewUserMessage(line))
		outcome, err := orc.RunState(ctx, agent.State{Messages: history})
		if err != nil {
			slog.Error("run failed", "error", err)
			continue
		}

		for outcome.Suspended() {
			directive, ok := askDirective(outcome.Interrupt())
			if !ok {
				slog.Warn("run left suspended", "runId", outcome.RunID)
				break
			}
			next, err := orc.Resume(ctx, outcome.Checkpoint, directive)
			if err != nil {
				slog.Error("resume failed", "runId", outcome.RunID, "error", err)
				break
			}
			outcome = next
		}
		if outcome.Suspended() {
			continue
		}

		history = outcome.State.Messages
		fmt.Println()
		fmt.Println(outcome.FinalContent())
		fmt.Println()
	}
}

// askDirective shows the pending tool call and collects the reviewer's
// decision. Returns ok=false if the reviewer wants to abandon the run.
func askDirective(interrupt *agent.Interrupt) (agent.Directive, bool) {
	fmt.Println()
	if interrupt != nil && interrupt.ToolCall != nil {
		fmt.Printf("Proposed tool call: %s\n", interrupt.ToolCall.Name)
		fmt.Printf("Arguments: %s\n", interrupt.ToolCall.Arguments)
	}
	if interrupt != nil {
		fmt.Println(interrupt.Question)
	}
	fmt.Print("[c]ontinue, [u]pdate, [f]eedback, [a]bandon: ")

	line, err := reader.ReadString('\n')
	if err != nil {
		return agent.Directive{}, false
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "c", "continue", "y", "yes":
		return agent.Continue(), true
	case "u", "update":
		fmt.Print("Revised instructions: ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return agent.Directive{}, false
		}
		return agent.Update(strings.TrimSpace(text)), true
	case "f", "feedback":
		fmt.Print("Feedback for the model: ")
		text, err := reader.ReadString('\n')
		if err != nil {
			return agent.Directive{}, false
		}
		return agent.Feedback(strings.TrimSpace(text)), true
	default:
		return agent.Directive{}, false
	}
}

func buildRegistry(cfg *config.Config) *tool.Registry {
	registry := tool.NewRegistry()

	if cfg.TavilyKey != "" {
		searchTool, handler := tool.NewSearchTool(cfg.TavilyKey,
			tool.WithSearchMaxResults(cfg.MaxSearchResults))
		registry.MustRegister(searchTool, handler)
	} else {
		slog.Warn("TAVILY_API_KEY not set, search tool disabled")
	}

	docTool, handler := tool.NewDocumentTool(tool.WithOutputDir(cfg.OutputDir))
	registry.MustRegister(docTool, handler)

	return registry
}

func buildCheckpointAdapter(cfg *config.Config) (store.Adapter, error) {
	if cfg.CheckpointDir == "" {
		return store.NewMemoryAdapter(), nil
	}
	return store.NewFileAdapter(cfg.CheckpointDir)
}

func setupLogging(level string) {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}
