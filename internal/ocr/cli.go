package ocr

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"go.uber.org/zap"
)

const windowsBinaryPath = `C:\Program Files\Tesseract-OCR\tesseract.exe`

// DefaultBinaryPath is where the tesseract executable is expected on this platform.
func DefaultBinaryPath() string {
	return defaultBinaryPath(runtime.GOOS)
}

func defaultBinaryPath(goos string) string {
	if goos == "windows" {
		return windowsBinaryPath
	}
	return "tesseract"
}

// CLIEngine shells out to the tesseract executable, feeding the image on stdin.
type CLIEngine struct {
	path   string
	runner Runner
	logger *zap.Logger
}

// NewCLIEngine creates an engine for the binary at path. An empty path
// means DefaultBinaryPath.
func NewCLIEngine(path string, logger *zap.Logger) *CLIEngine {
	if path == "" {
		path = DefaultBinaryPath()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLIEngine{
		path:   path,
		runner: execRunner{logger: logger},
		logger: logger,
	}
}

// WithRunner replaces the command runner.
func (e *CLIEngine) WithRunner(r Runner) *CLIEngine {
	e.runner = r
	return e
}

// Path returns the tesseract binary the engine invokes.
func (e *CLIEngine) Path() string {
	return e.path
}

func (e *CLIEngine) Name() string {
	return "tesseract-cli"
}

// Recognize runs `tesseract stdin stdout` over the image.
func (e *CLIEngine) Recognize(ctx context.Context, png []byte) (string, error) {
	stdout, stderr, err := e.runner.Run(ctx, png, e.path, "stdin", "stdout")
	if err != nil {
		if msg := strings.TrimSpace(string(stderr)); msg != "" {
			return "", fmt.Errorf("tesseract: %w: %s", err, msg)
		}
		return "", fmt.Errorf("tesseract: %w", err)
	}
	return string(stdout), nil
}
