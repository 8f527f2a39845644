// routes.go - Route registration and middleware setup
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Dependencies holds all handler dependencies
type Dependencies struct {
	Extractor      Extractor
	Analyzer       Analyzer
	OCREngine      string
	MaxUploadBytes int64
	Version        string
	Logger         *zap.Logger
}

// Handlers holds all handler instances
type Handlers struct {
	Health  HealthHandler
	Analyze AnalyzeHandler
}

// NewHandlers creates all handler instances
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(deps.Version, deps.OCREngine, deps.Analyzer),
		Analyze: NewAnalyzeHandler(deps.Extractor, deps.Analyzer, deps.MaxUploadBytes, deps.Logger),
	}
}

// RegisterRoutes registers all API routes with the Echo instance
func RegisterRoutes(e *echo.Echo, handlers *Handlers) {
	e.POST("/analyze", handlers.Analyze.HandleAnalyze)

	apiGroup := e.Group("/api")
	apiGroup.GET("/health", handlers.Health.HandleHealth)
}

// MiddlewareConfig selects the common middleware
type MiddlewareConfig struct {
	Logger            *zap.Logger
	RequestLogging    bool
	MaxUploadBytes    int64
	EnableCORS        bool
	AllowOrigins      []string
	EnableCompression bool
	CompressionLevel  int
}

// SetupMiddleware configures the error handler and common middleware
func SetupMiddleware(e *echo.Echo, cfg MiddlewareConfig) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	if cfg.RequestLogging {
		e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			Skipper: func(c echo.Context) bool {
				return c.Request().URL.Path == "/api/health"
			},
			HandleError:  true,
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogRemoteIP:  true,
			LogError:     true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				fields := []zap.Field{
					zap.String("method", v.Method),
					zap.String("uri", v.URI),
					zap.Int("status", v.Status),
					zap.Duration("latency", v.Latency),
					zap.String("request_id", v.RequestID),
					zap.String("remote_ip", v.RemoteIP),
				}
				if v.Error != nil {
					logger.Warn("request", append(fields, zap.Error(v.Error))...)
					return nil
				}
				logger.Info("request", fields...)
				return nil
			},
		}))
	}

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("panic recovered",
				zap.String("path", c.Request().URL.Path),
				zap.Error(err),
				zap.ByteString("stack", stack),
			)
			return err
		},
	}))

	if cfg.MaxUploadBytes > 0 {
		e.Use(middleware.BodyLimit(bodyLimit(cfg.MaxUploadBytes)))
	}

	if cfg.EnableCORS {
		origins := cfg.AllowOrigins
		if len(origins) == 0 {
			origins = []string{"*"}
		}
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
			MaxAge:       int((12 * time.Hour).Seconds()),
		}))
	}

	if cfg.EnableCompression {
		e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
			Level: cfg.CompressionLevel,
			Skipper: acceptsMsgpack,
		}))
	}
}

// bodyLimit leaves 1 MiB of headroom over the file limit for multipart framing.
func bodyLimit(maxUploadBytes int64) string {
	return fmt.Sprintf("%dK", (maxUploadBytes>>10)+1024)
}
