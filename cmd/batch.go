package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	batchOutputFormat string
	batchLLMProvider  string
	batchLLMModel     string
	batchVerbose      bool
)

func NewBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE [FILE...]",
		Short: "Classify several snippet files in one sequential run",
		Long: `Classify a list of snippet files strictly in order. A failure on one file
is recorded at its position and never aborts the rest of the batch.

Examples:
  iac-ai batch manifests/*.pp
  iac-ai batch main.tf recipe.rb -o json`,
		Args: cobra.MinimumNArgs(1),
		RunE: runBatch,
	}

	cmd.Flags().StringVarP(&batchOutputFormat, "output", "o", "human", "Output format (human, json)")
	cmd.Flags().StringVar(&batchLLMProvider, "provider", "", "LLM provider (claude, openai, ollama)")
	cmd.Flags().StringVar(&batchLLMModel, "model", "", "LLM model override")
	cmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Verbose logging")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	snippets := make([]string, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			// Unreadable files still occupy their slot; the service turns
			// the empty snippet into a per-item InvalidInput failure.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			data = nil
		}
		snippets = append(snippets, string(data))
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	log := zap.NewNop()
	if batchVerbose {
		if log, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}

	svc, err := buildService(settings, batchLLMProvider, batchLLMModel, log)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Classifying %d snippets...", len(snippets))
	s.Start()

	results := svc.BatchClassify(snippets)
	s.Stop()

	if batchOutputFormat == "json" {
		output, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	for i, env := range results {
		name := args[i]
		if env.Success {
			verdict := "not convertible"
			if env.Data.Convertible {
				verdict = "convertible"
			}
			green.Printf("✓ %-30s %s (%s)\n", name, env.Data.Classification, verdict)
		} else {
			red.Printf("✗ %-30s %s: %s\n", name, env.ErrorType, env.Error)
		}
	}
	return nil
}
