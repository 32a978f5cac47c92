package llm

import (
	"fmt"
	"os"
	"strings"
)

// Provider identifies a reasoning backend.
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"
	ProviderOllama Provider = "ollama"
)

// Config carries backend selection and credentials. Unused fields are
// ignored by backends that don't need them.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	Host     string
}

// New creates the configured backend.
func New(cfg Config) (LLM, error) {
	switch cfg.Provider {
	case ProviderClaude:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Claude API key is required")
		}
		if cfg.Model != "" {
			return NewClaudeWithModel(cfg.APIKey, cfg.Model), nil
		}
		return NewClaude(cfg.APIKey), nil

	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key is required")
		}
		if cfg.Model != "" {
			return NewOpenAIWithModel(cfg.APIKey, cfg.Model), nil
		}
		return NewOpenAI(cfg.APIKey), nil

	case ProviderOllama:
		return NewOllama(cfg.Host, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s (supported: claude, openai, ollama)", cfg.Provider)
	}
}

// FromEnv creates a backend from environment variables, with optional
// provider and model overrides taking precedence.
func FromEnv(providerOverride, modelOverride string) (LLM, error) {
	provider := strings.ToLower(providerOverride)
	if provider == "" {
		provider = strings.ToLower(os.Getenv("LLM_PROVIDER"))
	}

	switch provider {
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("OPENAI_MODEL")
		}
		return New(Config{Provider: ProviderOpenAI, APIKey: apiKey, Model: model})

	case "ollama":
		model := modelOverride
		if model == "" {
			model = os.Getenv("OLLAMA_MODEL")
		}
		return New(Config{Provider: ProviderOllama, Host: os.Getenv("OLLAMA_HOST"), Model: model})

	case "claude", "":
		// Default to Claude when nothing is configured.
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
		model := modelOverride
		if model == "" {
			model = os.Getenv("CLAUDE_MODEL")
		}
		return New(Config{Provider: ProviderClaude, APIKey: apiKey, Model: model})

	default:
		return nil, fmt.Errorf("unsupported LLM_PROVIDER: %s (supported: claude, openai, ollama)", provider)
	}
}
