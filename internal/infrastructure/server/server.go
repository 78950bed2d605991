package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/hypercomplex/internal/api/http"
	"github.com/GriffinCanCode/hypercomplex/internal/api/middleware"
	"github.com/GriffinCanCode/hypercomplex/internal/domain/service"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/config"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/logging"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/hypercomplex/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex"
	"github.com/GriffinCanCode/hypercomplex/internal/providers/hypercomplex/common"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	logger   *logging.Logger
	config   *config.Config
	metrics  *monitoring.Metrics
	tracer   *tracing.Tracer
	http     *nethttp.Server
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	logger.Info("Initializing hypercomplex server",
		zap.String("port", cfg.Server.Port),
		zap.Int("default_dimension", cfg.Algebra.Dimension),
		zap.Int("default_precision", cfg.Algebra.Precision),
	)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("hypercomplex", logger.Named("tracing").Logger)

	registry := service.NewRegistry(logger, metrics)
	if err := registry.Register(hypercomplex.NewProvider(common.Defaults{
		Dimension: cfg.Algebra.Dimension,
		Precision: cfg.Algebra.Precision,
		Tolerance: cfg.Algebra.Tolerance,
	})); err != nil {
		tracer.Close()
		return nil, fmt.Errorf("failed to register hypercomplex provider: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.String("scope", cfg.RateLimit.Scope),
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		if cfg.RateLimit.Scope == config.ScopeGlobal {
			router.Use(middleware.GlobalRateLimit(rl))
		} else {
			router.Use(middleware.RateLimit(rl))
		}
	}

	handlers := http.NewHandlers(registry, metrics)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)

	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	router.GET("/algebras", handlers.ListAlgebras)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/stats", handlers.Stats)

	logger.Info("Server initialized successfully")

	return &Server{
		router:   router,
		registry: registry,
		logger:   logger,
		config:   cfg,
		metrics:  metrics,
		tracer:   tracer,
	}, nil
}

// newLogger picks the console logger in development and the JSON logger
// otherwise
func newLogger(cfg config.LogConfig) (*logging.Logger, error) {
	switch {
	case cfg.Development:
		return logging.NewDevelopment(), nil
	case cfg.Level == "":
		return logging.NewDefault(), nil
	default:
		return logging.New(logging.Config{Level: cfg.Level})
	}
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() nethttp.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	addr := net.JoinHostPort(s.config.Server.Host, s.config.Server.Port)
	s.http = &nethttp.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.logger.Info("Starting HTTP server", zap.String("addr", addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Close gracefully shuts down the server
func (s *Server) Close(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var err error
	if s.http != nil {
		if err = s.http.Shutdown(ctx); err != nil {
			s.logger.Error("HTTP shutdown failed", zap.Error(err))
		}
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return err
}
