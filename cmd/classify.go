package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/convert2ansible/iac-ai/pkg/formatter"
)

var (
	classifyFile         string
	classifyOutputFormat string
	classifyLLMProvider  string
	classifyLLMModel     string
	classifyVerbose      bool
)

func NewClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [CODE]",
		Short: "Classify an IaC snippet and decide Ansible convertibility",
		Long: `Classify an infrastructure-automation snippet, identify the authoring tool,
and decide whether it can be converted to an Ansible playbook.

Examples:
  # Classify an inline snippet
  iac-ai classify 'package { "nginx": ensure => installed }'

  # Classify a file
  iac-ai classify -f main.tf

  # Read from stdin
  cat Dockerfile | iac-ai classify -

  # Machine-readable output with a specific provider
  iac-ai classify -f recipe.rb -o json --provider openai`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClassify,
	}

	cmd.Flags().StringVarP(&classifyFile, "file", "f", "", "Read the snippet from a file")
	cmd.Flags().StringVarP(&classifyOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().StringVar(&classifyLLMProvider, "provider", "", "LLM provider (claude, openai, ollama)")
	cmd.Flags().StringVar(&classifyLLMModel, "model", "", "LLM model override")
	cmd.Flags().BoolVarP(&classifyVerbose, "verbose", "v", false, "Verbose logging")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	code, source, err := readSnippet(args, classifyFile)
	if err != nil {
		return err
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if classifyVerbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}

	svc, err := buildService(settings, classifyLLMProvider, classifyLLMModel, log)
	if err != nil {
		return err
	}

	printClassifyHeader(source, len(code))

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Analyzing snippet..."
	s.Start()

	result, err := svc.Classify(code)
	s.Stop()
	if err != nil {
		return err
	}
	printSuccess("Classification complete")

	return formatter.DisplayResult(result, classifyOutputFormat)
}

// readSnippet resolves the snippet from, in order of precedence, the --file
// flag, a literal argument, or stdin when the argument is "-".
func readSnippet(args []string, file string) (code, source string, err error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("read snippet file: %w", err)
		}
		return string(data), file, nil
	}

	if len(args) == 1 && args[0] != "-" {
		return args[0], "argument", nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}

func printClassifyHeader(source string, size int) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🧠 IaC Classification")
	fmt.Printf("📝 Source: %s (%d bytes)\n", source, size)
	fmt.Println()
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}
