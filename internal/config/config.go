// Package config provides YAML-based configuration with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root configuration document.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	OCR      OCRConfig      `yaml:"ocr"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port                int    `yaml:"port"`
	BindAddress         string `yaml:"bind_address"`
	EnableCORS          bool   `yaml:"enable_cors"`
	AllowOrigins        string `yaml:"allow_origins"`
	ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int    `yaml:"idle_timeout_seconds"`
	MaxUploadBytes      int64  `yaml:"max_upload_bytes"`
	EnableCompression   bool   `yaml:"enable_compression"`
	CompressionLevel    int    `yaml:"compression_level"`
}

// OCRConfig selects the OCR engine.
type OCRConfig struct {
	// Engine is auto, cli or library.
	Engine        string `yaml:"engine"`
	TesseractPath string `yaml:"tesseract_path"`
}

// AnalysisConfig configures the hosted model. APIKey is never written to disk.
type AnalysisConfig struct {
	APIKey         string   `yaml:"-"`
	BaseURL        string   `yaml:"base_url,omitempty"`
	Model          string   `yaml:"model"`
	FallbackModels []string `yaml:"fallback_models"`
	// Fallback is error or canned.
	Fallback       string `yaml:"fallback"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	RequestLogging bool   `yaml:"request_logging"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:                10000,
			BindAddress:         "0.0.0.0",
			EnableCORS:          true,
			AllowOrigins:        "*",
			ReadTimeoutSeconds:  60,
			WriteTimeoutSeconds: 120,
			IdleTimeoutSeconds:  120,
			MaxUploadBytes:      20 << 20,
			EnableCompression:   true,
			CompressionLevel:    5,
		},
		OCR: OCRConfig{
			Engine: "auto",
		},
		Analysis: AnalysisConfig{
			Model:          "gemini-2.5-flash",
			FallbackModels: []string{"gemini-2.0-flash", "gemini-1.5-flash"},
			Fallback:       "error",
		},
		Log: LogConfig{
			Level:          "info",
			Format:         "json",
			RequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file, creating it with defaults
// when it does not exist. Environment variables override file values.
func LoadConfig(configPath string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := cfg.Save(configPath); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides(os.Getenv)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *AppConfig) Save(configPath string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte("# postcritic configuration\n# This file is auto-generated on first run. GEMINI_API_KEY is read from the environment only.\n\n")
	if dir := filepath.Dir(configPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	if err := os.WriteFile(configPath, append(header, out...), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// applyEnvironmentOverrides lets environment variables override config values
func (c *AppConfig) applyEnvironmentOverrides(getenv func(string) string) {
	c.Analysis.APIKey = getenv("GEMINI_API_KEY")

	if port := getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if addr := getenv("BIND_ADDRESS"); addr != "" {
		c.Server.BindAddress = addr
	}
	if path := getenv("TESSERACT_PATH"); path != "" {
		c.OCR.TesseractPath = path
	}
	if engine := getenv("OCR_ENGINE"); engine != "" {
		c.OCR.Engine = engine
	}
	if model := getenv("GEMINI_MODEL"); model != "" {
		c.Analysis.Model = model
	}
	if models := getenv("GEMINI_FALLBACK_MODELS"); models != "" {
		c.Analysis.FallbackModels = splitList(models)
	}
	if baseURL := getenv("GEMINI_BASE_URL"); baseURL != "" {
		c.Analysis.BaseURL = baseURL
	}
	if fallback := getenv("ANALYSIS_FALLBACK"); fallback != "" {
		c.Analysis.Fallback = fallback
	}
	if level := getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
}

// Validate checks enumerated values and limits.
func (c *AppConfig) Validate() error {
	switch c.OCR.Engine {
	case "auto", "cli", "library":
	default:
		return fmt.Errorf("invalid ocr.engine %q: want auto, cli or library", c.OCR.Engine)
	}
	switch c.Analysis.Fallback {
	case "error", "canned":
	default:
		return fmt.Errorf("invalid analysis.fallback %q: want error or canned", c.Analysis.Fallback)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("invalid server.max_upload_bytes %d", c.Server.MaxUploadBytes)
	}
	if c.Analysis.TimeoutSeconds < 0 {
		return fmt.Errorf("invalid analysis.timeout_seconds %d", c.Analysis.TimeoutSeconds)
	}
	return nil
}

// GetServerAddr returns the server bind address
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}

// GetAllowOrigins splits the comma separated origin list, defaulting to "*".
func (c *AppConfig) GetAllowOrigins() []string {
	origins := splitList(c.Server.AllowOrigins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// AnalysisTimeout returns the per-request model timeout; zero means none.
func (c *AppConfig) AnalysisTimeout() time.Duration {
	return time.Duration(c.Analysis.TimeoutSeconds) * time.Second
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
