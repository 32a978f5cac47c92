package prompts

import (
	"fmt"
	"strings"

	"github.com/convert2ansible/iac-ai/pkg/model"
)

// EnhancedThreshold is the screening confidence at or above which the prompt
// embeds the detected tool as context for the model.
const EnhancedThreshold = 0.3

// maxPromptIndicators caps how many screening indicators are surfaced.
const maxPromptIndicators = 3

// sectionContract is the fixed output format both prompt variants demand.
// The response parser depends on these exact labels; change them together
// or not at all.
const sectionContract = `Provide comprehensive analysis in this EXACT format:

Tool/Language: [Identify the tool/language]
Summary: [What does this code accomplish?]
Detailed Analysis: [Deep analysis of infrastructure operations]
Resources/Components:
- [Infrastructure component 1]
- [Infrastructure component 2]
Key Operations:
- [Infrastructure operation 1]
- [Infrastructure operation 2]
Dependencies: [External dependencies]
Configuration Details: [Configuration aspects]
Complexity Level: [Low/Medium/High/Very High]
Convertible: [YES/NO - Can these operations be achieved with Ansible?]
Conversion Notes: [Detailed conversion approach and reasoning]`

const analysisGuidelines = `ANALYSIS GUIDELINES:
1. UNDERSTAND the infrastructure operations conceptually
2. CONSIDER what Ansible modules could achieve these operations
3. THINK about the conversion approach step-by-step
4. ASSESS complexity realistically but don't over-restrict
5. EXPLAIN your reasoning clearly

Focus on the infrastructure automation concepts, not syntax alone. Consider
whether the operations can be achieved with Ansible's module ecosystem.`

// syntaxExamples holds canonical snippets for well-understood tools, used to
// anchor the model when screening is confident about the tool identity.
var syntaxExamples = map[string]string{
	"ansible": `- hosts: web
  tasks:
    - name: Install nginx
      ansible.builtin.package:
        name: nginx
        state: present`,
	"chef": `package 'nginx' do
  action :install
end

service 'nginx' do
  action [:enable, :start]
end`,
	"cloudformation": `AWSTemplateFormatVersion: '2010-09-09'
Resources:
  WebServer:
    Type: AWS::EC2::Instance`,
	"puppet": `package { 'nginx':
  ensure => installed,
}

service { 'nginx':
  ensure => running,
  enable => true,
}`,
	"terraform": `resource "aws_instance" "web" {
  ami           = "ami-123456"
  instance_type = "t3.micro"
}`,
}

// BuildClassifyPrompt assembles the full request sent to the model: the
// current agent instructions, optional screening context, the source code,
// and the fixed section contract.
func BuildClassifyPrompt(instructions, code string, analysis *model.PatternAnalysis) string {
	var b strings.Builder

	if instructions != "" {
		b.WriteString(instructions)
		b.WriteString("\n\n")
	}

	b.WriteString("Analyze this infrastructure code:\n\n<CODE>\n")
	b.WriteString(code)
	b.WriteString("\n</CODE>\n\n")

	if analysis != nil && analysis.ConfidenceScore >= EnhancedThreshold {
		writePatternContext(&b, analysis)
	}

	b.WriteString(sectionContract)
	b.WriteString("\n\n")
	b.WriteString(analysisGuidelines)

	return b.String()
}

func writePatternContext(b *strings.Builder, analysis *model.PatternAnalysis) {
	fmt.Fprintf(b, "Pattern screening context (heuristic, verify against the code):\n")
	fmt.Fprintf(b, "- Detected tool: %s (confidence %.3f)\n",
		analysis.DetectedTool, analysis.ConfidenceScore)

	indicators := analysis.StrongestIndicators
	if len(indicators) > maxPromptIndicators {
		indicators = indicators[:maxPromptIndicators]
	}
	if len(indicators) > 0 {
		fmt.Fprintf(b, "- Indicators: %s\n", strings.Join(indicators, ", "))
	}

	if example, ok := syntaxExamples[analysis.DetectedTool]; ok {
		fmt.Fprintf(b, "\nCanonical %s syntax for reference:\n%s\n",
			analysis.DetectedTool, example)
	}
	b.WriteString("\n")
}
