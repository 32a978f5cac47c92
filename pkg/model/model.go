package model

import "time"

// ConfidenceSource records which evidence path produced the final
// convertibility decision.
type ConfidenceSource string

const (
	SourceAIOnly          ConfidenceSource = "ai_only"
	SourceAIWithContext   ConfidenceSource = "ai_with_pattern_context"
	SourcePatternOverride ConfidenceSource = "pattern_override"
)

// PatternAnalysis is the output of the heuristic pattern screening stage.
// It is immutable once built.
type PatternAnalysis struct {
	LikelyIaC           bool           `json:"likely_iac"`
	DetectedTool        string         `json:"detected_tool"`
	ConfidenceScore     float64        `json:"confidence_score"`
	PatternMatches      map[string]int `json:"pattern_matches"`
	StrongestIndicators []string       `json:"strongest_indicators"`
}

// Metrics carries the timing figures for one classification call.
type Metrics struct {
	DurationMS       float64  `json:"duration_ms"`
	ManualEstimateMS float64  `json:"manual_estimate_ms"`
	Speedup          *float64 `json:"speedup"`
}

// ClassificationResult is the typed form of the AI verdict, enriched by the
// resolver with override provenance and by the service with metrics.
type ClassificationResult struct {
	Classification       string           `json:"classification"`
	Summary              string           `json:"summary"`
	DetailedAnalysis     string           `json:"detailed_analysis"`
	Resources            []string         `json:"resources"`
	KeyOperations        []string         `json:"key_operations"`
	Dependencies         string           `json:"dependencies"`
	ConfigurationDetails string           `json:"configuration_details"`
	ComplexityLevel      string           `json:"complexity_level"`
	Convertible          bool             `json:"convertible"`
	ConversionNotes      string           `json:"conversion_notes"`
	ConfidenceSource     ConfidenceSource `json:"confidence_source"`

	// Override provenance, set by the resolver.
	OverrideApplied    bool   `json:"override_applied"`
	OverrideReason     string `json:"override_reason,omitempty"`
	OriginalAIDecision *bool  `json:"original_ai_decision,omitempty"`

	// Screening evidence is always attached for transparency.
	PatternAnalysis *PatternAnalysis `json:"pattern_analysis,omitempty"`

	Metrics
}

// Envelope is the wire format returned to API and batch callers.
type Envelope struct {
	Success    bool                  `json:"success"`
	Data       *ClassificationResult `json:"data"`
	Error      string                `json:"error,omitempty"`
	ErrorType  string                `json:"error_type,omitempty"`
	BatchIndex *int                  `json:"batch_index,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
	Version    string                `json:"version"`
}
