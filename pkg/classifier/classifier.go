// Package classifier orchestrates the classification pipeline: validate,
// screen, prompt, model call, parse, resolve, measure.
package classifier

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/convert2ansible/iac-ai/pkg/config"
	"github.com/convert2ansible/iac-ai/pkg/estimate"
	"github.com/convert2ansible/iac-ai/pkg/llm"
	"github.com/convert2ansible/iac-ai/pkg/model"
	"github.com/convert2ansible/iac-ai/pkg/parser"
	"github.com/convert2ansible/iac-ai/pkg/patterns"
	"github.com/convert2ansible/iac-ai/pkg/prompts"
	"github.com/convert2ansible/iac-ai/pkg/resolver"
)

// Version tags every envelope so callers can tell which pipeline produced
// a stored result.
const Version = "hybrid-analysis-1.0"

// minSnippetLength is the trimmed length a snippet must exceed.
const minSnippetLength = 5

// batchProgressEvery controls how often batch progress is logged.
const batchProgressEvery = 10

// Service runs classifications against one reasoning backend. Classification
// is synchronous; batch work is strictly sequential.
type Service struct {
	backend  llm.LLM
	screener *patterns.Screener
	parser   *parser.Parser
	store    *config.Store
	log      *zap.Logger

	// Last instruction version used, kept to log configuration swaps. The
	// snapshot read and its use within one call are deliberately not atomic
	// with respect to Reload; a mid-call reload affects the next call.
	lastVersion atomic.Uint64
}

// Option customizes a Service.
type Option func(*Service)

// WithLogger attaches a structured logger; the default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithConvertibleStrategy swaps the yes/no parsing strategy for the
// Convertible section.
func WithConvertibleStrategy(strategy parser.ConvertibleStrategy) Option {
	return func(s *Service) { s.parser = parser.New(strategy) }
}

// New builds a service around a reasoning backend and an instruction store.
func New(backend llm.LLM, store *config.Store, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		screener: patterns.NewScreener(),
		parser:   parser.New(nil),
		store:    store,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.lastVersion.Store(store.Snapshot().Version)
	return s
}

// Classify runs the full pipeline for one snippet.
func (s *Service) Classify(code string) (*model.ClassificationResult, error) {
	if len(strings.TrimSpace(code)) <= minSnippetLength {
		return nil, invalidInput("invalid or empty code snippet provided")
	}

	start := time.Now()

	snap := s.store.Snapshot()
	if prev := s.lastVersion.Swap(snap.Version); prev != snap.Version {
		s.log.Info("instruction set changed",
			zap.Uint64("previous_version", prev),
			zap.Uint64("version", snap.Version))
	}

	analysis := s.screener.Screen(code)
	s.log.Debug("pattern screening complete",
		zap.String("detected_tool", analysis.DetectedTool),
		zap.Float64("confidence", analysis.ConfidenceScore))

	prompt := prompts.BuildClassifyPrompt(snap.Instructions, code, analysis)

	raw, err := s.backend.Chat(prompt)
	if err != nil {
		s.log.Error("model call failed", zap.Error(err))
		return nil, classificationFailed("classification failed", err)
	}

	result := s.parser.Parse(raw)
	resolver.Resolve(analysis, result)
	result.Metrics = estimate.Compute(result.Classification, time.Since(start))

	s.log.Info("classification complete",
		zap.String("classification", result.Classification),
		zap.Bool("convertible", result.Convertible),
		zap.String("confidence_source", string(result.ConfidenceSource)),
		zap.Bool("override_applied", result.OverrideApplied),
		zap.Float64("duration_ms", result.DurationMS))

	return result, nil
}

// ClassifyEnvelope wraps Classify in the wire envelope, mapping failures to
// their error kind instead of returning an error.
func (s *Service) ClassifyEnvelope(code string) model.Envelope {
	env := model.Envelope{
		Timestamp: time.Now().UTC(),
		Version:   Version,
	}

	result, err := s.Classify(code)
	if err != nil {
		env.Error = err.Error()
		env.ErrorType = string(errKind(err))
		return env
	}

	env.Success = true
	env.Data = result
	return env
}

// BatchClassify processes snippets strictly in order. A failing item is
// captured in place and never aborts the rest of the batch.
func (s *Service) BatchClassify(snippets []string) []model.Envelope {
	s.log.Info("starting batch classification", zap.Int("count", len(snippets)))

	results := make([]model.Envelope, 0, len(snippets))
	for i, code := range snippets {
		env := s.ClassifyEnvelope(code)
		idx := i
		env.BatchIndex = &idx
		results = append(results, env)

		if (i+1)%batchProgressEvery == 0 {
			s.log.Info("batch progress",
				zap.Int("processed", i+1),
				zap.Int("total", len(snippets)))
		}
	}

	s.log.Info("batch classification complete", zap.Int("results", len(results)))
	return results
}

// Screen exposes the heuristic stage on its own, without a model call.
func (s *Service) Screen(code string) *model.PatternAnalysis {
	return s.screener.Screen(code)
}

// ReloadConfig re-reads the instruction file and reports the new snapshot.
func (s *Service) ReloadConfig() (config.Snapshot, error) {
	return s.store.Reload()
}

// ConfigInfo reports the instruction store state for diagnostics.
func (s *Service) ConfigInfo() config.Info {
	return s.store.Info()
}

func errKind(err error) ErrorKind {
	var cerr *Error
	if errors.As(err, &cerr) {
		return cerr.Kind
	}
	return KindClassificationFailed
}
