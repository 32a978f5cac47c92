package classifier

import (
	"errors"
	"fmt"
	"testing"

	"github.com/convert2ansible/iac-ai/pkg/config"
	"github.com/convert2ansible/iac-ai/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM records the prompt it was given and plays back a canned reply.
type fakeLLM struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeLLM) Chat(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

const puppetManifest = `# puppet manifest for nginx
class nginx {
  package { 'nginx':
    ensure => installed,
  }
  service { 'nginx':
  }
}
`

func reply(convertible string) string {
	return fmt.Sprintf(`Tool/Language: Puppet
Summary: Manages nginx.
Detailed Analysis: Installs and runs nginx.
Resources/Components:
- nginx package
Key Operations:
- Install package
Dependencies: None
Configuration Details: Default
Complexity Level: Low
Convertible: %s
Conversion Notes: Use the package and service modules.`, convertible)
}

func newTestService(t *testing.T, backend *fakeLLM, opts ...Option) *Service {
	t.Helper()
	store, err := config.NewStore("")
	require.NoError(t, err)
	return New(backend, store, opts...)
}

func TestClassifyRejectsInvalidInput(t *testing.T) {
	backend := &fakeLLM{reply: reply("YES")}
	svc := newTestService(t, backend)

	for _, code := range []string{"", "   ", "ab", "12345"} {
		_, err := svc.Classify(code)
		require.Error(t, err, code)

		var cerr *Error
		require.ErrorAs(t, err, &cerr, code)
		assert.Equal(t, KindInvalidInput, cerr.Kind, code)
	}
	// Input was rejected before any model call.
	assert.Empty(t, backend.prompts)
}

func TestClassifySuccess(t *testing.T) {
	backend := &fakeLLM{reply: reply("YES")}
	svc := newTestService(t, backend)

	result, err := svc.Classify(puppetManifest)
	require.NoError(t, err)

	assert.Equal(t, "Puppet", result.Classification)
	assert.True(t, result.Convertible)
	assert.False(t, result.OverrideApplied)
	assert.Equal(t, model.SourceAIWithContext, result.ConfidenceSource)
	require.NotNil(t, result.PatternAnalysis)
	assert.Equal(t, "puppet", result.PatternAnalysis.DetectedTool)
	assert.Equal(t, 360000.0, result.ManualEstimateMS)
	assert.GreaterOrEqual(t, result.DurationMS, 0.0)
}

func TestClassifyOverridesNegativeVerdict(t *testing.T) {
	backend := &fakeLLM{reply: reply("NO - beyond Ansible")}
	svc := newTestService(t, backend)

	result, err := svc.Classify(puppetManifest)
	require.NoError(t, err)

	assert.True(t, result.Convertible)
	assert.True(t, result.OverrideApplied)
	require.NotNil(t, result.OriginalAIDecision)
	assert.False(t, *result.OriginalAIDecision)
	assert.Equal(t, model.SourcePatternOverride, result.ConfidenceSource)
}

func TestClassifyWrapsBackendFailure(t *testing.T) {
	cause := errors.New("connection refused")
	svc := newTestService(t, &fakeLLM{err: cause})

	_, err := svc.Classify(puppetManifest)
	require.Error(t, err)

	var cerr *Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, KindClassificationFailed, cerr.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestClassifyPromptCarriesInstructionsAndCode(t *testing.T) {
	backend := &fakeLLM{reply: reply("YES")}
	svc := newTestService(t, backend)

	_, err := svc.Classify(puppetManifest)
	require.NoError(t, err)

	require.Len(t, backend.prompts, 1)
	prompt := backend.prompts[0]
	assert.Contains(t, prompt, "Infrastructure-as-Code analyst")
	assert.Contains(t, prompt, puppetManifest)
	assert.Contains(t, prompt, "Detected tool: puppet")
}

func TestClassifyEnvelope(t *testing.T) {
	svc := newTestService(t, &fakeLLM{reply: reply("YES")})

	env := svc.ClassifyEnvelope(puppetManifest)
	assert.True(t, env.Success)
	require.NotNil(t, env.Data)
	assert.Empty(t, env.ErrorType)
	assert.Equal(t, Version, env.Version)
	assert.False(t, env.Timestamp.IsZero())

	env = svc.ClassifyEnvelope("")
	assert.False(t, env.Success)
	assert.Nil(t, env.Data)
	assert.Equal(t, string(KindInvalidInput), env.ErrorType)
}

func TestBatchClassifyIsolatesFailures(t *testing.T) {
	svc := newTestService(t, &fakeLLM{reply: reply("YES")})

	results := svc.BatchClassify([]string{puppetManifest, "", puppetManifest})
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, string(KindInvalidInput), results[1].ErrorType)
	assert.True(t, results[2].Success)

	for i, env := range results {
		require.NotNil(t, env.BatchIndex, i)
		assert.Equal(t, i, *env.BatchIndex)
	}
}

func TestBatchClassifyEmpty(t *testing.T) {
	svc := newTestService(t, &fakeLLM{reply: reply("YES")})
	assert.Empty(t, svc.BatchClassify(nil))
}

func TestScreenWithoutModelCall(t *testing.T) {
	backend := &fakeLLM{reply: reply("YES")}
	svc := newTestService(t, backend)

	analysis := svc.Screen(puppetManifest)
	assert.Equal(t, "puppet", analysis.DetectedTool)
	assert.Empty(t, backend.prompts)
}
