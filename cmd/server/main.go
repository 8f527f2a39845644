package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/postcritic/backend/internal/analyze"
	"github.com/postcritic/backend/internal/api"
	"github.com/postcritic/backend/internal/config"
	"github.com/postcritic/backend/internal/extract"
	"github.com/postcritic/backend/internal/logging"
	"github.com/postcritic/backend/internal/ocr"
	"github.com/postcritic/backend/internal/web"
	"go.uber.org/zap"
)

// Version info (set during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	configPath := flag.String("config", "postcritic.yaml", "path to the YAML configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, *configPath, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, configPath string, logger *zap.Logger) error {
	engine, err := ocr.Select(cfg.OCR.Engine, cfg.OCR.TesseractPath, logger.Named("ocr"))
	if err != nil {
		return fmt.Errorf("select ocr engine: %w", err)
	}

	var generator analyze.Generator
	if cfg.Analysis.APIKey != "" {
		generator = analyze.NewGeminiGenerator(cfg.Analysis.APIKey, cfg.Analysis.BaseURL)
	} else {
		logger.Warn("GEMINI_API_KEY is not set; analysis will return the fallback message")
	}
	analyzer := analyze.New(generator, analyze.Options{
		Model:          cfg.Analysis.Model,
		FallbackModels: cfg.Analysis.FallbackModels,
		Policy:         cfg.Analysis.Fallback,
		Timeout:        cfg.AnalysisTimeout(),
	}, logger.Named("analyze"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	api.SetupMiddleware(e, api.MiddlewareConfig{
		Logger:            logger.Named("http"),
		RequestLogging:    cfg.Log.RequestLogging,
		MaxUploadBytes:    cfg.Server.MaxUploadBytes,
		EnableCORS:        cfg.Server.EnableCORS,
		AllowOrigins:      cfg.GetAllowOrigins(),
		EnableCompression: cfg.Server.EnableCompression,
		CompressionLevel:  cfg.Server.CompressionLevel,
	})

	api.RegisterRoutes(e, api.NewHandlers(&api.Dependencies{
		Extractor:      extract.New(engine, logger.Named("extract")),
		Analyzer:       analyzer,
		OCREngine:      engine.Name(),
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		Version:        Version,
		Logger:         logger.Named("api"),
	}))

	if web.HasEmbeddedFiles() {
		if err := web.RegisterStaticRoutes(e); err != nil {
			logger.Warn("failed to register static routes", zap.Error(err))
		}
	}

	s := &http.Server{
		Addr:         cfg.GetServerAddr(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	fmt.Printf("\n")
	fmt.Printf("╔═══════════════════════════════════════════════════════════╗\n")
	fmt.Printf("║           PostCritic Server                               ║\n")
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Version:    %-45s║\n", Version)
	fmt.Printf("║  Build Time: %-45s║\n", BuildTime)
	fmt.Printf("║  OCR:        %-45s║\n", engine.Name())
	fmt.Printf("║  Model:      %-45s║\n", cfg.Analysis.Model)
	fmt.Printf("╠═══════════════════════════════════════════════════════════╣\n")
	fmt.Printf("║  Config:    %-46s║\n", configPath)
	fmt.Printf("║  Listen:    http://%-38s║\n", cfg.GetServerAddr())
	fmt.Printf("╚═══════════════════════════════════════════════════════════╝\n")
	fmt.Printf("\n")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.StartServer(s)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
