// Package resolver merges the heuristic pattern analysis with the parsed AI
// verdict into one auditable convertibility decision.
package resolver

import (
	"fmt"

	"github.com/convert2ansible/iac-ai/pkg/model"
)

const (
	// OverrideThreshold is the screening confidence required before a
	// negative AI verdict can be reversed.
	OverrideThreshold = 0.7

	// ContextThreshold is the screening confidence at or above which the
	// result is tagged as pattern-assisted.
	ContextThreshold = 0.4
)

// overridableTools is the curated set of well-understood tools for which a
// high-confidence pattern match may overrule a negative AI verdict.
var overridableTools = map[string]bool{
	"ansible":        true,
	"chef":           true,
	"cloudformation": true,
	"puppet":         true,
	"terraform":      true,
}

// Resolve applies the override policy in order and stamps the result with
// its confidence source. The pattern analysis is always attached for
// transparency. Resolve is deterministic and performs no I/O.
func Resolve(analysis *model.PatternAnalysis, result *model.ClassificationResult) {
	result.PatternAnalysis = analysis

	if shouldOverride(analysis, result) {
		original := result.Convertible
		result.Convertible = true
		result.OverrideApplied = true
		result.OriginalAIDecision = &original
		result.ConfidenceSource = model.SourcePatternOverride
		result.OverrideReason = fmt.Sprintf(
			"Pattern screening detected %s with %.3f confidence; overriding negative AI verdict",
			analysis.DetectedTool, analysis.ConfidenceScore)
		result.ConversionNotes = fmt.Sprintf("%s [Override: %s]",
			result.ConversionNotes, result.OverrideReason)
		return
	}

	if analysis.ConfidenceScore >= ContextThreshold {
		result.ConfidenceSource = model.SourceAIWithContext
		return
	}
	result.ConfidenceSource = model.SourceAIOnly
}

func shouldOverride(analysis *model.PatternAnalysis, result *model.ClassificationResult) bool {
	return analysis.ConfidenceScore >= OverrideThreshold &&
		analysis.LikelyIaC &&
		!result.Convertible &&
		overridableTools[analysis.DetectedTool]
}
