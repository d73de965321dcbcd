// Package config loads runtime configuration from the environment, with
// optional .env file support.
package config

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	ai "github.com/lexdraft/lexdraft"
	"github.com/lexdraft/lexdraft/provider/anthropic"
	"github.com/lexdraft/lexdraft/provider/google"
	"github.com/lexdraft/lexdraft/provider/openai"
)

// Config holds runtime configuration loaded from environment variables.
type Config struct {
	// Provider selection
	Provider ai.Provider
	Model    string

	// API keys
	AnthropicKey string
	OpenAIKey    string
	GoogleKey    string
	TavilyKey    string

	// Run behavior
	SystemPrompt string
	MaxSteps     int
	LogLevel     string

	// Tool configuration
	MaxSearchResults int
	OutputDir        string

	// Checkpoint persistence. Empty means in-memory only.
	CheckpointDir string
}

// Load reads configuration from environment variables, loading a .env
// file first if one is present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Provider:         ai.Provider(getEnvOrDefault("LEXDRAFT_PROVIDER", "anthropic")),
		Model:            os.Getenv("LEXDRAFT_MODEL"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		GoogleKey:        os.Getenv("GOOGLE_API_KEY"),
		TavilyKey:        os.Getenv("TAVILY_API_KEY"),
		SystemPrompt:     os.Getenv("LEXDRAFT_SYSTEM_PROMPT"),
		MaxSteps:         getEnvIntOrDefault("LEXDRAFT_MAX_STEPS", 10),
		LogLevel:         getEnvOrDefault("LEXDRAFT_LOG_LEVEL", "info"),
		MaxSearchResults: getEnvIntOrDefault("LEXDRAFT_MAX_SEARCH_RESULTS", 5),
		OutputDir:        getEnvOrDefault("LEXDRAFT_OUTPUT_DIR", "."),
		CheckpointDir:    os.Getenv("LEXDRAFT_CHECKPOINT_DIR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	switch c.Provider {
	case ai.ProviderAnthropic:
		if c.AnthropicKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for anthropic provider")
		}
	case ai.ProviderOpenAI:
		if c.OpenAIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required for openai provider")
		}
	case ai.ProviderGoogle:
		if c.GoogleKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY is required for google provider")
		}
	default:
		return fmt.Errorf("unknown provider: %s (must be anthropic, openai, or google)", c.Provider)
	}

	if c.MaxSteps < 0 {
		return fmt.Errorf("LEXDRAFT_MAX_STEPS must not be negative")
	}

	return nil
}

// NewChatProvider builds the configured chat provider, wrapped with
// transient-error retry.
func (c *Config) NewChatProvider(ctx context.Context) (ai.ChatProvider, error) {
	var client ai.ChatProvider
	switch c.Provider {
	case ai.ProviderAnthropic:
		var opts []anthropic.ClientOption
		if c.Model != "" {
			opts = append(opts, anthropic.WithModel(c.Model))
		}
		client = anthropic.New(c.AnthropicKey, opts...)
	case ai.ProviderOpenAI:
		var opts []openai.ClientOption
		if c.Model != "" {
			opts = append(opts, openai.WithModel(c.Model))
		}
		client = openai.New(c.OpenAIKey, opts...)
	case ai.ProviderGoogle:
		var opts []google.ClientOption
		if c.Model != "" {
			opts = append(opts, google.WithModel(c.Model))
		}
		g, err := google.New(ctx, c.GoogleKey, opts...)
		if err != nil {
			return nil, err
		}
		client = g
	default:
		return nil, fmt.Errorf("unknown provider: %s", c.Provider)
	}

	return ai.WithRetry(client, ai.DefaultRetryConfig()), nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}
