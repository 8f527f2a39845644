// Package analyze asks a hosted language model for a short social media
// critique of extracted text.
package analyze

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/postcritic/backend/internal/models"
	"go.uber.org/zap"
)

// Degradation policies.
const (
	PolicyError  = "error"
	PolicyCanned = "canned"
)

// MissingKeyMessage is returned under PolicyError when no API key is configured.
const MissingKeyMessage = "Error: API Key missing on Server."

// CannedCritique is returned under PolicyCanned whenever no model answers.
const CannedCritique = `Here are 3 quick improvements:

1. Open with a hook. Lead with a bold claim, a question or a surprising number so readers stop scrolling.
2. Make it scannable. Use short paragraphs, line breaks and one idea per line.
3. End with a clear call to action. Ask a question or tell readers exactly what to do next.`

var (
	// ErrMissingKey means the analyzer was built without credentials.
	ErrMissingKey = errors.New("API key missing on server")
	// ErrEmptyResponse means a model answered with no text.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// Generator sends a prompt to the named model and returns its text.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

// Options configures an Analyzer.
type Options struct {
	Model          string
	FallbackModels []string
	Policy         string
	Timeout        time.Duration
}

// Analyzer tries each model in order and never fails: when no model answers
// the result carries a degradation message chosen by the policy.
type Analyzer struct {
	gen     Generator
	models  []string
	policy  string
	timeout time.Duration
	logger  *zap.Logger
}

// New creates an Analyzer. A nil gen means no credentials are configured.
func New(gen Generator, opts Options, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	chain := make([]string, 0, 1+len(opts.FallbackModels))
	seen := make(map[string]bool)
	for _, m := range append([]string{opts.Model}, opts.FallbackModels...) {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		chain = append(chain, m)
	}
	policy := opts.Policy
	if policy != PolicyCanned {
		policy = PolicyError
	}
	return &Analyzer{
		gen:     gen,
		models:  chain,
		policy:  policy,
		timeout: opts.Timeout,
		logger:  logger,
	}
}

// Enabled reports whether a generator is configured.
func (a *Analyzer) Enabled() bool {
	return a.gen != nil
}

// Models returns the attempt order.
func (a *Analyzer) Models() []string {
	return append([]string(nil), a.models...)
}

// Analyze returns the critique for text. Result.Text is never empty.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.AnalysisResult {
	if a.gen == nil {
		a.logger.Warn("analysis skipped", zap.Error(ErrMissingKey))
		return a.degrade(ErrMissingKey)
	}

	prompt, err := BuildPrompt(text)
	if err != nil {
		a.logger.Error("failed to build prompt", zap.Error(err))
		return a.degrade(err)
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	lastErr := errors.New("no models configured")
	for _, model := range a.models {
		start := time.Now()
		out, err := a.gen.Generate(ctx, model, prompt)
		if err == nil && strings.TrimSpace(out) == "" {
			err = ErrEmptyResponse
		}
		if err != nil {
			lastErr = err
			a.logger.Warn("model attempt failed",
				zap.String("model", model),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			if ctx.Err() != nil {
				break
			}
			continue
		}

		a.logger.Info("analysis complete",
			zap.String("model", model),
			zap.Duration("duration", time.Since(start)),
			zap.Int("chars", len(out)),
		)
		return models.AnalysisResult{Text: out, Model: model}
	}

	return a.degrade(lastErr)
}

func (a *Analyzer) degrade(err error) models.AnalysisResult {
	result := models.AnalysisResult{Degraded: true}
	switch {
	case a.policy == PolicyCanned:
		result.Text = CannedCritique
	case errors.Is(err, ErrMissingKey):
		result.Text = MissingKeyMessage
	default:
		result.Text = "AI Error: " + err.Error()
	}
	return result
}
