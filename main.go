package main

import (
	"fmt"
	"os"

	"github.com/convert2ansible/iac-ai/cmd"
	"github.com/spf13/cobra"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "iac-ai",
		Short: "AI-assisted IaC classification",
		Long: `iac-ai classifies infrastructure-automation snippets, identifies the
authoring tool, and decides whether the snippet can be mechanically
converted to an Ansible playbook.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Add subcommands
	rootCmd.AddCommand(
		cmd.NewClassifyCmd(),
		cmd.NewBatchCmd(),
		cmd.NewServeCmd(),
		cmd.NewMCPCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("iac-ai version %s\n", version)
		},
	}
}
