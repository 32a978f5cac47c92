package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wellFormedReply = `Tool/Language: Chef
Summary: Installs and configures nginx.
Detailed Analysis: The recipe installs the nginx package,
writes a template, and manages the service lifecycle.
Resources/Components:
- nginx package
- nginx service
Key Operations:
- Install package
- Start service
Dependencies: apt repository access
Configuration Details: Listens on port 80
Complexity Level: Low
Convertible: YES - standard package and service modules apply
Conversion Notes: Use ansible.builtin.package and ansible.builtin.service.`

func TestParseWellFormedReply(t *testing.T) {
	result := New(nil).Parse(wellFormedReply)

	assert.Equal(t, "Chef", result.Classification)
	assert.Equal(t, "Installs and configures nginx.", result.Summary)
	assert.Equal(t,
		"The recipe installs the nginx package, writes a template, and manages the service lifecycle.",
		result.DetailedAnalysis)
	assert.Equal(t, []string{"nginx package", "nginx service"}, result.Resources)
	assert.Equal(t, []string{"Install package", "Start service"}, result.KeyOperations)
	assert.Equal(t, "apt repository access", result.Dependencies)
	assert.Equal(t, "Listens on port 80", result.ConfigurationDetails)
	assert.Equal(t, "Low", result.ComplexityLevel)
	assert.True(t, result.Convertible)
	assert.Equal(t, "Use ansible.builtin.package and ansible.builtin.service.", result.ConversionNotes)
}

func TestParseMarkdownDecoratedLabels(t *testing.T) {
	reply := `**Tool/Language:** Terraform
* **Summary:** Provisions an EC2 instance.
**Convertible:** yes`

	result := New(nil).Parse(reply)

	assert.Equal(t, "Terraform", result.Classification)
	assert.Equal(t, "Provisions an EC2 instance.", result.Summary)
	assert.True(t, result.Convertible)
}

func TestParseEmptyInputYieldsDefaults(t *testing.T) {
	for _, raw := range []string{"", "   \n  \n", "no labels anywhere in this text"} {
		result := New(nil).Parse(raw)

		assert.Equal(t, "unknown", result.Classification, raw)
		assert.Equal(t, "Analysis completed", result.Summary, raw)
		assert.Equal(t, "No detailed analysis provided", result.DetailedAnalysis, raw)
		assert.Equal(t, []string{}, result.Resources, raw)
		assert.Equal(t, []string{}, result.KeyOperations, raw)
		assert.Equal(t, "None specified", result.Dependencies, raw)
		assert.Equal(t, "Standard configuration", result.ConfigurationDetails, raw)
		assert.Equal(t, "Medium", result.ComplexityLevel, raw)
		assert.False(t, result.Convertible, raw)
		assert.Equal(t, "Standard conversion approach applicable", result.ConversionNotes, raw)
	}
}

func TestParseListSectionVariants(t *testing.T) {
	reply := `Resources/Components:
- bulleted item
• unicode bullet item
* star item
implicit bare item
[placeholder to discard]
- [bracketed placeholder to discard]`

	result := New(nil).Parse(reply)

	assert.Equal(t, []string{
		"bulleted item",
		"unicode bullet item",
		"star item",
		"implicit bare item",
	}, result.Resources)
}

func TestParseSingleValueSectionsTakeFirstLineOnly(t *testing.T) {
	reply := `Complexity Level: High
this trailing commentary is ignored
Tool/Language: Puppet
second line ignored too`

	result := New(nil).Parse(reply)

	assert.Equal(t, "High", result.ComplexityLevel)
	assert.Equal(t, "Puppet", result.Classification)
}

func TestParseConvertibleNegative(t *testing.T) {
	reply := "Convertible: NO - requires capabilities outside Ansible's scope"

	result := New(nil).Parse(reply)
	assert.False(t, result.Convertible)
}

func TestFirstTokenStrategy(t *testing.T) {
	s := FirstTokenStrategy{}

	tests := []struct {
		text string
		want bool
	}{
		{"yes", true},
		{"YES - with reasoning", true},
		{"true", true},
		{"1", true},
		{"no", false},
		{"no - cannot be converted", false},
		{"maybe yes", false},
		{"probably", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, s.Parse(tt.text), tt.text)
	}
}

func TestWeightedPhraseStrategy(t *testing.T) {
	s := WeightedPhraseStrategy{}

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clear positive", "yes, this can be converted with standard modules", true},
		{"clear negative", "not convertible, the operations are impossible to map", false},
		{"tie short reply", "unclear", false},
		{"tie long reply", "the operations described here map onto several modules", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Parse(tt.text))
		})
	}
}

func TestStrategiesCanDisagree(t *testing.T) {
	// The documented divergence between the canonical first-token rule and
	// the historical weighted variant: a reply that never leads with "yes"
	// but argues convertibility at length.
	text := "these operations can be converted using the package module"

	require.False(t, FirstTokenStrategy{}.Parse(text))
	require.True(t, WeightedPhraseStrategy{}.Parse(text))
}

func TestParserStrategySelection(t *testing.T) {
	assert.Equal(t, "first_token", New(nil).Strategy())
	assert.Equal(t, "weighted_phrase", New(WeightedPhraseStrategy{}).Strategy())
}
