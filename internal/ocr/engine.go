// Package ocr turns raster images into text.
package ocr

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Engine selection values accepted by Select.
const (
	EngineAuto    = "auto"
	EngineCLI     = "cli"
	EngineLibrary = "library"
)

// Engine recognizes text in a PNG-encoded image.
type Engine interface {
	Name() string
	Recognize(ctx context.Context, png []byte) (string, error)
}

var (
	defaultMu     sync.RWMutex
	defaultEngine Engine
)

// SetDefaultEngine registers the in-process engine. Engine packages call it
// from init when they are linked into the binary.
func SetDefaultEngine(e Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}

// DefaultEngine returns the registered in-process engine, or nil.
func DefaultEngine() Engine {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultEngine
}

// Select resolves the configured engine kind to an Engine.
// "auto" prefers a registered in-process engine and falls back to the CLI.
func Select(kind, binaryPath string, logger *zap.Logger) (Engine, error) {
	switch kind {
	case "", EngineAuto:
		if e := DefaultEngine(); e != nil {
			return e, nil
		}
		return NewCLIEngine(binaryPath, logger), nil
	case EngineCLI:
		return NewCLIEngine(binaryPath, logger), nil
	case EngineLibrary:
		if e := DefaultEngine(); e != nil {
			return e, nil
		}
		return nil, fmt.Errorf("ocr engine %q is not linked in; rebuild with -tags tesseract", kind)
	default:
		return nil, fmt.Errorf("unknown ocr engine %q", kind)
	}
}
