package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/convert2ansible/iac-ai/pkg/classifier"
	"github.com/convert2ansible/iac-ai/pkg/config"
	"github.com/convert2ansible/iac-ai/pkg/llm"
	"github.com/convert2ansible/iac-ai/pkg/parser"
)

// settings is the raw, unvalidated configuration merged from the optional
// config file, environment, and flags.
type settings struct {
	Provider     string `mapstructure:"provider"`
	Model        string `mapstructure:"model"`
	OllamaHost   string `mapstructure:"ollama_host"`
	Instructions string `mapstructure:"instructions"`
	Listen       string `mapstructure:"listen"`
	Strategy     string `mapstructure:"convertible_strategy"`
}

// loadSettings reads iac-ai.yaml (working directory or ~/.config/iac-ai)
// and IAC_AI_* environment variables. A missing config file is fine.
func loadSettings() (*settings, error) {
	v := viper.New()
	v.SetConfigName("iac-ai")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/.config/iac-ai")
	}

	v.SetEnvPrefix("IAC_AI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("convertible_strategy", "first_token")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read settings: %w", err)
		}
	}

	s := &settings{}
	if err := v.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	return s, nil
}

func (s *settings) backend(providerOverride, modelOverride string) (llm.LLM, error) {
	provider := providerOverride
	if provider == "" {
		provider = s.Provider
	}
	model := modelOverride
	if model == "" {
		model = s.Model
	}

	if strings.EqualFold(provider, "ollama") {
		return llm.New(llm.Config{
			Provider: llm.ProviderOllama,
			Host:     s.OllamaHost,
			Model:    model,
		})
	}
	return llm.FromEnv(provider, model)
}

func (s *settings) convertibleStrategy() (parser.ConvertibleStrategy, error) {
	switch s.Strategy {
	case "", "first_token":
		return parser.FirstTokenStrategy{}, nil
	case "weighted_phrase":
		return parser.WeightedPhraseStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown convertible strategy: %s (supported: first_token, weighted_phrase)", s.Strategy)
	}
}

// buildService assembles the full classification service from settings.
func buildService(s *settings, providerOverride, modelOverride string, log *zap.Logger) (*classifier.Service, error) {
	backend, err := s.backend(providerOverride, modelOverride)
	if err != nil {
		return nil, err
	}

	store, err := config.NewStore(s.Instructions)
	if err != nil {
		return nil, err
	}

	strategy, err := s.convertibleStrategy()
	if err != nil {
		return nil, err
	}

	opts := []classifier.Option{classifier.WithConvertibleStrategy(strategy)}
	if log != nil {
		opts = append(opts, classifier.WithLogger(log))
	}
	return classifier.New(backend, store, opts...), nil
}
