package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/convert2ansible/iac-ai/pkg/mcp"
)

var (
	mcpLLMProvider string
	mcpLLMModel    string
)

func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the classification MCP server",
		Long:  `Launch an MCP server over stdio so AI agents can classify snippets via standard tools.`,
		Args:  cobra.NoArgs,
		RunE:  runMCP,
	}

	cmd.Flags().StringVar(&mcpLLMProvider, "provider", "", "LLM provider (claude, openai, ollama)")
	cmd.Flags().StringVar(&mcpLLMModel, "model", "", "LLM model override")

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Stdout carries the protocol, so the service logger stays quiet.
	svc, err := buildService(settings, mcpLLMProvider, mcpLLMModel, zap.NewNop())
	if err != nil {
		return err
	}
	return mcp.Serve(svc)
}
