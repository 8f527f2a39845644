// fakes.go - Fake OCR engines and text generators for testing
package testutil

import (
	"context"
	"sync"
)

// FakeEngine implements ocr.Engine with a canned answer.
type FakeEngine struct {
	Text string
	Err  error

	mu    sync.Mutex
	calls [][]byte
}

func (f *FakeEngine) Name() string {
	return "fake"
}

func (f *FakeEngine) Recognize(ctx context.Context, png []byte) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, png)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.Text, f.Err
}

// Calls returns the images passed to Recognize, in order.
func (f *FakeEngine) Calls() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]byte(nil), f.calls...)
}

// GeneratorReply is the scripted answer for one model.
type GeneratorReply struct {
	Text string
	Err  error
}

// FakeGenerator implements analyze.Generator with per-model replies.
// Models without a reply fail.
type FakeGenerator struct {
	Replies map[string]GeneratorReply

	mu      sync.Mutex
	models  []string
	prompts []string
}

// NewFakeGenerator creates a generator with no scripted replies.
func NewFakeGenerator() *FakeGenerator {
	return &FakeGenerator{Replies: make(map[string]GeneratorReply)}
}

// Reply scripts the answer for model.
func (f *FakeGenerator) Reply(model, text string, err error) *FakeGenerator {
	f.Replies[model] = GeneratorReply{Text: text, Err: err}
	return f
}

func (f *FakeGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	f.mu.Lock()
	f.models = append(f.models, model)
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	reply, ok := f.Replies[model]
	if !ok {
		return "", &UnknownModelError{Model: model}
	}
	return reply.Text, reply.Err
}

// Models returns the models Generate was called with, in order.
func (f *FakeGenerator) Models() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.models...)
}

// Prompts returns the prompts Generate was called with, in order.
func (f *FakeGenerator) Prompts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.prompts...)
}

// UnknownModelError is returned for models without a scripted reply.
type UnknownModelError struct {
	Model string
}

func (e *UnknownModelError) Error() string {
	return "models/" + e.Model + " is not found"
}
