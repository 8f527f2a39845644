package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GEMINI_API_KEY", "PORT", "BIND_ADDRESS", "TESSERACT_PATH", "OCR_ENGINE",
		"GEMINI_MODEL", "GEMINI_FALLBACK_MODELS", "GEMINI_BASE_URL", "ANALYSIS_FALLBACK", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigCreatesDefaultFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "conf", "postcritic.yaml")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "model: gemini-2.5-flash")
	assert.Contains(t, string(data), "fallback: error")

	// Loading the generated file yields the same configuration.
	again, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadConfigReadsFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "postcritic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8080
ocr:
  engine: cli
  tesseract_path: /usr/local/bin/tesseract
analysis:
  model: gemini-2.0-flash
  fallback_models: []
  fallback: canned
  timeout_seconds: 30
log:
  level: debug
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.BindAddress, "unset keys keep defaults")
	assert.Equal(t, "cli", cfg.OCR.Engine)
	assert.Equal(t, "/usr/local/bin/tesseract", cfg.OCR.TesseractPath)
	assert.Equal(t, "gemini-2.0-flash", cfg.Analysis.Model)
	assert.Empty(t, cfg.Analysis.FallbackModels)
	assert.Equal(t, "canned", cfg.Analysis.Fallback)
	assert.Equal(t, 30*time.Second, cfg.AnalysisTimeout())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "postcritic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 8080\nanalysis:\n  model: from-file\n"), 0o644))

	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_MODEL", "from-env")
	t.Setenv("GEMINI_FALLBACK_MODELS", "a, b,,c")
	t.Setenv("ANALYSIS_FALLBACK", "canned")
	t.Setenv("OCR_ENGINE", "cli")
	t.Setenv("TESSERACT_PATH", `C:\tools\tesseract.exe`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Analysis.APIKey)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "from-env", cfg.Analysis.Model)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Analysis.FallbackModels)
	assert.Equal(t, "canned", cfg.Analysis.Fallback)
	assert.Equal(t, "cli", cfg.OCR.Engine)
	assert.Equal(t, `C:\tools\tesseract.exe`, cfg.OCR.TesseractPath)
}

func TestAPIKeyIsNeverSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "postcritic.yaml")
	cfg := DefaultConfig()
	cfg.Analysis.APIKey = "super-secret"
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "super-secret")
}

func TestInvalidPortEnvIsIgnored(t *testing.T) {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides(func(key string) string {
		if key == "PORT" {
			return "not-a-number"
		}
		return ""
	})
	assert.Equal(t, 10000, cfg.Server.Port)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "postcritic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("analysis:\n  fallback: silent\n"), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, `invalid analysis.fallback "silent"`)

	require.NoError(t, os.WriteFile(path, []byte("ocr:\n  engine: paddle\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, `invalid ocr.engine "paddle"`)

	require.NoError(t, os.WriteFile(path, []byte("server: [\n"), 0o644))
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestGetters(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "0.0.0.0:10000", cfg.GetServerAddr())
	assert.Equal(t, []string{"*"}, cfg.GetAllowOrigins())
	assert.Zero(t, cfg.AnalysisTimeout())

	cfg.Server.AllowOrigins = "http://a.test, http://b.test"
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.GetAllowOrigins())

	cfg.Server.AllowOrigins = " "
	assert.Equal(t, []string{"*"}, cfg.GetAllowOrigins())
}
