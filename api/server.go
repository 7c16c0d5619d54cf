package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Aidin1998/hello-service/api/responses"
	"github.com/Aidin1998/hello-service/common/apiutil"
	"github.com/Aidin1998/hello-service/docs"
	"github.com/Aidin1998/hello-service/internal/config"
	"github.com/Aidin1998/hello-service/pkg/errors"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

// Server represents the API server
type Server struct {
	router    *gin.Engine
	logger    *zap.Logger
	cfg       *config.Config
	greetings metric.Int64Counter
}

// instrumentationName scopes the OpenTelemetry instruments recorded by the API
const instrumentationName = "github.com/Aidin1998/hello-service/api"

// NewServer creates the API server and registers every route. The returned
// server is ready to serve; its routes are not changed afterwards.
//
// The API document behind /docs is process-wide: NewServer stamps it with
// cfg's service identity, so the last server built decides what every
// server's docs report.
func NewServer(logger *zap.Logger, cfg *config.Config) *Server {
	server := &Server{
		logger:    logger,
		cfg:       cfg,
		greetings: newGreetingsCounter(logger),
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(apiutil.RequestID())
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(gin.CustomRecovery(server.recoverPanic))
	router.Use(otelgin.Middleware(cfg.Service.Name))
	if cfg.Metrics.Enabled {
		router.Use(apiutil.MetricsMiddleware())
	}
	if cfg.CORS.AllowsAnyHeader() {
		router.Use(apiutil.EchoRequestedHeaders())
	}
	router.Use(newCORS(cfg.CORS))

	router.NoRoute(server.noRoute)
	router.NoMethod(server.noMethod)

	// Docs metadata follows the configured service identity
	docs.SetInfo(cfg.Service.Name, cfg.Service.Description, cfg.Service.Version)

	server.router = router
	server.registerRoutes()
	return server
}

// newGreetingsCounter records greetings on the global meter provider, which
// exports them when telemetry metrics are enabled.
func newGreetingsCounter(logger *zap.Logger) metric.Int64Counter {
	counter, err := otel.Meter(instrumentationName).Int64Counter("hello_service.greetings",
		metric.WithDescription("Greetings returned by the hello endpoint"),
		metric.WithUnit("{greeting}"))
	if err != nil {
		logger.Warn("Failed to create greetings counter", zap.Error(err))
		counter, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("hello_service.greetings")
	}
	return counter
}

// newCORS allows every origin, method and header with credentials. Browsers
// refuse a literal "*" on credentialed requests, so the wildcard origin is
// answered by echoing the caller's Origin and the wildcard header list is
// left to EchoRequestedHeaders.
func newCORS(c config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		ExposeHeaders:    []string{"Content-Length", apiutil.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           c.MaxAge,
	}
	if !c.AllowsAnyHeader() {
		corsConfig.AllowHeaders = c.AllowHeaders
	}
	if c.AllowsAnyOrigin() {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	} else {
		corsConfig.AllowOrigins = c.AllowOrigins
	}
	return cors.New(corsConfig)
}

// Router returns the internal Gin engine for testing purposes
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting API server",
			zap.String("addr", ln.Addr().String()),
			zap.String("service", s.cfg.Service.Name))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("API server stopped: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("API server stopped: %w", err)
	}

	s.logger.Info("Server shutdown complete")
	return nil
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.GET("/", s.root)
	s.router.GET("/health", s.healthCheck)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/hello/:name", s.hello)
	}

	if s.cfg.Metrics.Enabled {
		s.router.GET(s.cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	if s.cfg.Docs.Enabled {
		s.registerDocs()
	}
}

func (s *Server) noRoute(c *gin.Context) {
	responses.Problem(c, http.StatusNotFound,
		fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path))
}

func (s *Server) noMethod(c *gin.Context) {
	responses.Problem(c, http.StatusMethodNotAllowed,
		fmt.Sprintf("method %s not allowed on %s", c.Request.Method, c.Request.URL.Path))
}

func (s *Server) recoverPanic(c *gin.Context, recovered any) {
	s.logger.Error("HTTP server panic recovered",
		zap.Any("panic", recovered),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))

	problem := errors.NewInternalError("An internal server error occurred", c.Request.URL.Path)
	if err, ok := recovered.(error); ok {
		problem = errors.AsProblem(err, c.Request.URL.Path)
	}
	responses.Error(c, problem)
	c.Abort()
}
