package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/convert2ansible/iac-ai/pkg/model"
)

// DisplayResult formats and displays a classification result.
func DisplayResult(result *model.ClassificationResult, format string) error {
	switch format {
	case "json":
		return displayJSON(result)
	case "yaml":
		return displayYAML(result)
	case "human":
		fallthrough
	default:
		displayHuman(result)
	}
	return nil
}

func displayJSON(result *model.ClassificationResult) error {
	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(result *model.ClassificationResult) error {
	output, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(result *model.ClassificationResult) {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()
	cyan.Printf("🔎 TOOL: %s\n", result.Classification)
	fmt.Printf("   %s\n\n", result.Summary)

	convertibleLine(result)
	fmt.Printf("📶 COMPLEXITY: %s\n\n", result.ComplexityLevel)

	if len(result.Resources) > 0 {
		yellow.Println("📦 RESOURCES:")
		for _, r := range result.Resources {
			fmt.Printf("   • %s\n", r)
		}
		fmt.Println()
	}

	if len(result.KeyOperations) > 0 {
		yellow.Println("⚙️  KEY OPERATIONS:")
		for _, op := range result.KeyOperations {
			fmt.Printf("   • %s\n", op)
		}
		fmt.Println()
	}

	fmt.Printf("🔗 Dependencies: %s\n", result.Dependencies)
	fmt.Printf("🔧 Configuration: %s\n\n", result.ConfigurationDetails)

	white.Println("📄 CONVERSION NOTES:")
	fmt.Println(wrapText(result.ConversionNotes, 80, "   "))
	fmt.Println()

	if result.OverrideApplied {
		yellow.Println("⚠️  PATTERN OVERRIDE APPLIED:")
		fmt.Printf("   %s\n\n", result.OverrideReason)
	}

	if pa := result.PatternAnalysis; pa != nil && pa.LikelyIaC {
		fmt.Printf("🧭 Screening: %s (confidence %.3f, source %s)\n",
			pa.DetectedTool, pa.ConfidenceScore, result.ConfidenceSource)
		if len(pa.StrongestIndicators) > 0 {
			fmt.Printf("   Indicators: %s\n", strings.Join(pa.StrongestIndicators, ", "))
		}
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	if result.Speedup != nil {
		fmt.Printf("⏱  %.2f ms (est. %.0fx faster than manual conversion)\n",
			result.DurationMS, *result.Speedup)
	} else {
		fmt.Printf("⏱  %.2f ms\n", result.DurationMS)
	}
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func convertibleLine(result *model.ClassificationResult) {
	if result.Convertible {
		green := color.New(color.FgGreen, color.Bold)
		green.Println("✅ CONVERTIBLE TO ANSIBLE")
	} else {
		red := color.New(color.FgRed, color.Bold)
		red.Println("❌ NOT CONVERTIBLE")
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
