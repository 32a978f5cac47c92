package parser

import (
	"regexp"
	"strings"
)

// ConvertibleStrategy turns the free text of the Convertible section into a
// yes/no verdict. Two strategies exist because the behavior changed over the
// system's history and they can disagree on the same input; the first-token
// rule is the canonical default.
type ConvertibleStrategy interface {
	// Name identifies the strategy in logs and diagnostics.
	Name() string
	// Parse decides the verdict for a non-empty section body.
	Parse(text string) bool
}

// FirstTokenStrategy is the canonical rule: the first whitespace-delimited
// token must be exactly "yes", "true", or "1" (case-insensitive); anything
// else is negative.
type FirstTokenStrategy struct{}

func (FirstTokenStrategy) Name() string { return "first_token" }

func (FirstTokenStrategy) Parse(text string) bool {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "yes", "true", "1":
		return true
	}
	return false
}

// WeightedPhraseStrategy is the historical variant: it votes positive and
// negative phrase matches against each other and, on a tie, treats a long
// reply as convertible on the theory that a detailed answer usually comes
// with a conversion approach.
type WeightedPhraseStrategy struct{}

var positivePhrases = []*regexp.Regexp{
	regexp.MustCompile(`\byes\b`),
	regexp.MustCompile(`\bconvertible\b`),
	regexp.MustCompile(`\bcan be converted\b`),
	regexp.MustCompile(`\bpossible\b`),
	regexp.MustCompile(`\bansible can\b`),
	regexp.MustCompile(`\bmodules available\b`),
	regexp.MustCompile(`\bdirect mapping\b`),
}

var negativePhrases = []*regexp.Regexp{
	regexp.MustCompile(`\bno\b.*\bconvert`),
	regexp.MustCompile(`\bnot convertible\b`),
	regexp.MustCompile(`\bcannot be converted\b`),
	regexp.MustCompile(`\bimpossible\b`),
	regexp.MustCompile(`\bno ansible\b`),
	regexp.MustCompile(`\boutside.*scope\b`),
}

func (WeightedPhraseStrategy) Name() string { return "weighted_phrase" }

func (WeightedPhraseStrategy) Parse(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return true
	}

	positive, negative := 0, 0
	for _, re := range positivePhrases {
		if re.MatchString(text) {
			positive++
		}
	}
	for _, re := range negativePhrases {
		if re.MatchString(text) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return true
	case negative > positive:
		return false
	default:
		return len(text) > 20
	}
}
