package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/lexdraft/lexdraft"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LEXDRAFT_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ai.ProviderAnthropic, cfg.Provider)
	assert.Equal(t, 10, cfg.MaxSteps)
	assert.Equal(t, 5, cfg.MaxSearchResults)
	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.CheckpointDir)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEXDRAFT_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LEXDRAFT_MODEL", "gpt-4.1")
	t.Setenv("LEXDRAFT_MAX_STEPS", "3")
	t.Setenv("LEXDRAFT_MAX_SEARCH_RESULTS", "2")
	t.Setenv("LEXDRAFT_CHECKPOINT_DIR", "/tmp/checkpoints")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ai.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "gpt-4.1", cfg.Model)
	assert.Equal(t, 3, cfg.MaxSteps)
	assert.Equal(t, 2, cfg.MaxSearchResults)
	assert.Equal(t, "/tmp/checkpoints", cfg.CheckpointDir)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "missing anthropic key",
			cfg:     Config{Provider: ai.ProviderAnthropic},
			wantErr: "ANTHROPIC_API_KEY",
		},
		{
			name:    "missing openai key",
			cfg:     Config{Provider: ai.ProviderOpenAI},
			wantErr: "OPENAI_API_KEY",
		},
		{
			name:    "missing google key",
			cfg:     Config{Provider: ai.ProviderGoogle},
			wantErr: "GOOGLE_API_KEY",
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "bedrock"},
			wantErr: "unknown provider",
		},
		{
			name:    "negative steps",
			cfg:     Config{Provider: ai.ProviderAnthropic, AnthropicKey: "k", MaxSteps: -1},
			wantErr: "LEXDRAFT_MAX_STEPS",
		},
		{
			name: "valid",
			cfg:  Config{Provider: ai.ProviderAnthropic, AnthropicKey: "k"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewChatProviderUnknown(t *testing.T) {
	cfg := Config{Provider: "bedrock"}
	_, err := cfg.NewChatProvider(t.Context())
	assert.Error(t, err)
}
