package patterns

import (
	"math"

	"github.com/convert2ansible/iac-ai/pkg/model"
)

// maxIndicators caps how many matched indicator labels are reported.
const maxIndicators = 5

// Screener scores source text against a static rule table. It holds no
// mutable state; Screen is a pure function of its input.
type Screener struct {
	rules []toolRule
}

// NewScreener returns a screener backed by the default rule table.
func NewScreener() *Screener {
	return &Screener{rules: defaultRules}
}

// Screen scores the source text against every tool in the rule table.
//
// Tools are evaluated in lexicographic order of tool identifier and the
// leader is replaced only on a strictly greater score, so an exact tie
// resolves to the lexicographically smallest tool. The original behavior
// left the tie-break to table iteration order; this rule is the documented
// deterministic choice.
func (s *Screener) Screen(code string) *model.PatternAnalysis {
	matches := make(map[string]int, len(s.rules))
	var indicators []string

	bestTool := ""
	bestScore := 0
	total := 0

	for _, rule := range s.rules {
		score := 0
		for _, p := range rule.patterns {
			n := len(p.re.FindAllStringIndex(code, -1))
			if n == 0 {
				continue
			}
			score += n
			if len(indicators) < maxIndicators {
				indicators = append(indicators, p.label)
			}
		}
		for _, k := range rule.keywords {
			if !k.re.MatchString(code) {
				continue
			}
			score++
			if len(indicators) < maxIndicators {
				indicators = append(indicators, k.word)
			}
		}

		matches[rule.tool] = score
		total += score
		if score > bestScore {
			bestScore = score
			bestTool = rule.tool
		}
	}

	if bestScore == 0 {
		return &model.PatternAnalysis{
			LikelyIaC:           false,
			DetectedTool:        "unknown",
			ConfidenceScore:     0.0,
			PatternMatches:      matches,
			StrongestIndicators: []string{},
		}
	}

	dominance := float64(bestScore) / float64(max(total, 1))
	strength := math.Min(float64(bestScore)/5.0, 1.0)

	return &model.PatternAnalysis{
		LikelyIaC:           true,
		DetectedTool:        bestTool,
		ConfidenceScore:     round3(dominance * strength),
		PatternMatches:      matches,
		StrongestIndicators: indicators,
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
