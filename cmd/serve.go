package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/convert2ansible/iac-ai/pkg/server"
)

var (
	serveListen      string
	serveLLMProvider string
	serveLLMModel    string
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the classification HTTP API",
		Long: `Run the HTTP API exposing classification to other services.

Endpoints:
  POST /classify        {"code": "..."}
  POST /batch-classify  {"snippets": ["...", "..."]}
  POST /reload-config   re-read the instruction file
  GET  /healthz         liveness plus instruction store info`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (defaults to settings, then :8080)")
	cmd.Flags().StringVar(&serveLLMProvider, "provider", "", "LLM provider (claude, openai, ollama)")
	cmd.Flags().StringVar(&serveLLMModel, "model", "", "LLM model override")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	log, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	svc, err := buildService(settings, serveLLMProvider, serveLLMModel, log)
	if err != nil {
		return err
	}

	addr := serveListen
	if addr == "" {
		addr = settings.Listen
	}
	return server.New(svc, log).ListenAndServe(addr)
}
