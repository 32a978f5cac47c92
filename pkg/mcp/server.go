// Package mcp exposes classification over the Model Context Protocol so AI
// agents can call the pipeline as standard tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/convert2ansible/iac-ai/pkg/classifier"
)

// toolHandler holds the shared service for MCP tool handlers.
type toolHandler struct {
	svc *classifier.Service
}

// NewServer initializes and configures the MCP server without starting it.
// Exposed for unit testing.
func NewServer(svc *classifier.Service) *server.MCPServer {
	s := server.NewMCPServer(
		"IaC Classification Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{svc: svc}

	s.AddTool(mcp.NewTool("classify_iac",
		mcp.WithDescription("Classify an infrastructure-automation snippet and decide whether it can be converted to an Ansible playbook."),
		mcp.WithString("code", mcp.Description("The source snippet to classify."), mcp.Required()),
	), h.handleClassify)

	s.AddTool(mcp.NewTool("screen_iac",
		mcp.WithDescription("Run only the heuristic pattern screening over a snippet, without calling the reasoning model."),
		mcp.WithString("code", mcp.Description("The source snippet to screen."), mcp.Required()),
	), h.handleScreen)

	return s
}

// Serve starts the MCP server over stdio.
func Serve(svc *classifier.Service) error {
	return server.ServeStdio(NewServer(svc))
}

func (h *toolHandler) handleClassify(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := request.GetString("code", "")

	result, err := h.svc.Classify(code)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("classification failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScreen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := request.GetString("code", "")
	if code == "" {
		return mcp.NewToolResultError("code must not be empty"), nil
	}

	analysis := h.svc.Screen(code)
	jsonData, _ := json.MarshalIndent(analysis, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
