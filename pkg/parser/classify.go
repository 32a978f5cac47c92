package parser

import (
	"regexp"
	"strings"

	"github.com/convert2ansible/iac-ai/pkg/model"
)

// section identifies one labeled block of the model's reply.
type section int

const (
	secNone section = iota
	secClassification
	secSummary
	secDetailedAnalysis
	secResources
	secKeyOperations
	secDependencies
	secConfigurationDetails
	secComplexityLevel
	secConvertible
	secConversionNotes
)

// sectionLabels maps the fixed prompt contract labels to sections. Matching
// is a case-insensitive prefix test after leading bullet and emphasis
// characters are stripped.
var sectionLabels = []struct {
	prefix string
	sec    section
}{
	{"tool/language:", secClassification},
	{"summary:", secSummary},
	{"detailed analysis:", secDetailedAnalysis},
	{"resources/components:", secResources},
	{"key operations:", secKeyOperations},
	{"dependencies:", secDependencies},
	{"configuration details:", secConfigurationDetails},
	{"complexity level:", secComplexityLevel},
	{"convertible:", secConvertible},
	{"conversion notes:", secConversionNotes},
}

var emphasisRE = regexp.MustCompile(`[*_]+`)

// Parser segments the model's free-text reply into a ClassificationResult.
// It never fails: malformed input degrades to documented defaults so a
// classification always completes when the model call itself succeeded.
type Parser struct {
	convertible ConvertibleStrategy
}

// New returns a parser using the given convertible strategy, or the
// canonical FirstTokenStrategy when nil.
func New(strategy ConvertibleStrategy) *Parser {
	if strategy == nil {
		strategy = FirstTokenStrategy{}
	}
	return &Parser{convertible: strategy}
}

// Strategy reports the convertible strategy in use.
func (p *Parser) Strategy() string { return p.convertible.Name() }

// Parse runs a line scanner over the reply: a line that begins with one of
// the contract labels flushes the previous section and starts a new
// accumulator seeded with the text after the colon; any other non-blank line
// joins the current accumulator.
func (p *Parser) Parse(raw string) *model.ClassificationResult {
	result := &model.ClassificationResult{
		Resources:     []string{},
		KeyOperations: []string{},
	}

	current := secNone
	var content []string
	convertibleSeen := false

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		sec := identifySection(line)
		if sec == secNone {
			if current != secNone {
				content = append(content, line)
			}
			continue
		}

		if current != secNone {
			p.assign(result, current, content, &convertibleSeen)
		}
		current = sec
		content = []string{labelValue(line)}
	}
	if current != secNone {
		p.assign(result, current, content, &convertibleSeen)
	}

	applyDefaults(result, convertibleSeen)
	return result
}

// identifySection tests a line against the label table.
func identifySection(line string) section {
	clean := strings.ToLower(strings.TrimLeft(line, "-•*_ \t"))
	for _, l := range sectionLabels {
		if strings.HasPrefix(clean, l.prefix) {
			return l.sec
		}
	}
	return secNone
}

// labelValue extracts the text after the label's colon, with markdown
// emphasis stripped.
func labelValue(line string) string {
	clean := emphasisRE.ReplaceAllString(line, "")
	if _, rest, ok := strings.Cut(clean, ":"); ok {
		return strings.TrimSpace(rest)
	}
	return ""
}

func (p *Parser) assign(result *model.ClassificationResult, sec section, content []string, convertibleSeen *bool) {
	switch sec {
	case secClassification:
		if len(content) > 0 {
			result.Classification = strings.TrimSpace(content[0])
		}
	case secComplexityLevel:
		if len(content) > 0 {
			result.ComplexityLevel = strings.TrimSpace(content[0])
		}
	case secSummary:
		result.Summary = joinText(content)
	case secDetailedAnalysis:
		result.DetailedAnalysis = joinText(content)
	case secDependencies:
		result.Dependencies = joinText(content)
	case secConfigurationDetails:
		result.ConfigurationDetails = joinText(content)
	case secConversionNotes:
		result.ConversionNotes = joinText(content)
	case secResources:
		result.Resources = listItems(content)
	case secKeyOperations:
		result.KeyOperations = listItems(content)
	case secConvertible:
		text := strings.ToLower(joinText(content))
		if text != "" {
			result.Convertible = p.convertible.Parse(text)
			*convertibleSeen = true
		}
	}
}

// joinText collapses a multi-line section into one space-joined string.
func joinText(content []string) string {
	var parts []string
	for _, line := range content {
		line = strings.TrimSpace(line)
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// listItems turns accumulated lines into list entries: bullet markers are
// stripped, bare lines count as implicit items, and [placeholder] lines are
// discarded.
func listItems(content []string) []string {
	items := []string{}
	for _, line := range content {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
		case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "•"), strings.HasPrefix(line, "*"):
			item := strings.TrimSpace(strings.TrimLeft(line, "-•* "))
			if item != "" && !strings.HasPrefix(item, "[") {
				items = append(items, item)
			}
		case strings.HasPrefix(line, "["):
		default:
			items = append(items, line)
		}
	}
	return items
}

// applyDefaults fills every missing section with its documented default.
func applyDefaults(result *model.ClassificationResult, convertibleSeen bool) {
	if result.Classification == "" {
		result.Classification = "unknown"
	}
	if result.Summary == "" {
		result.Summary = "Analysis completed"
	}
	if result.DetailedAnalysis == "" {
		result.DetailedAnalysis = "No detailed analysis provided"
	}
	if result.Dependencies == "" {
		result.Dependencies = "None specified"
	}
	if result.ConfigurationDetails == "" {
		result.ConfigurationDetails = "Standard configuration"
	}
	if result.ComplexityLevel == "" {
		result.ComplexityLevel = "Medium"
	}
	if result.ConversionNotes == "" {
		result.ConversionNotes = "Standard conversion approach applicable"
	}
	if !convertibleSeen {
		result.Convertible = false
	}
}
