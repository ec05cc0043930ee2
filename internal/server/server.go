package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"claims-assistant/config"
	"claims-assistant/internal/db"
	"claims-assistant/internal/handlers"
	"claims-assistant/internal/models"
	"claims-assistant/internal/repositories"
	"claims-assistant/internal/routes"
	"claims-assistant/internal/services"
	"claims-assistant/internal/workers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	redisConnectTimeout = 5 * time.Second
	workerStopTimeout   = 10 * time.Second
)

// corsMiddleware adds CORS headers to all responses
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Server owns the HTTP listener and every long-lived component behind it
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	sessions   *services.SessionManager
	workers    *workers.WorkerPool
	library    repositories.LibraryRepository
}

// New wires the services, repositories and routes described by cfg
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := services.NewMetrics(registry)

	claimList, err := loadClaims(cfg, logger)
	if err != nil {
		return nil, err
	}
	claims, err := services.NewClaimService(claimList)
	if err != nil {
		return nil, fmt.Errorf("invalid claims: %w", err)
	}

	// Document readiness runs on the worker pool
	docRepo := repositories.NewMemoryDocumentRepository()
	workerCfg := workers.DefaultWorkerConfig(workers.ReadinessWorkerName)
	workerCfg.Concurrency = cfg.Documents.Workers
	workerCfg.ProcessingDelay = cfg.Documents.ProcessingDelay
	if cfg.Documents.QueueSize > 0 {
		workerCfg.QueueSize = cfg.Documents.QueueSize
	}
	readiness := workers.NewReadinessWorker(workers.ReadinessWorkerConfig{
		WorkerConfig: workerCfg,
		Documents:    docRepo,
		Observer:     metrics,
		Logger:       logger.Named("workers").Sugar(),
	})
	pool := workers.NewWorkerPool()
	pool.AddWorker(readiness)

	documents := services.NewDocumentService(docRepo, readiness, metrics, logger.Named("documents"))
	if err := documents.Seed(ctx, config.DefaultDocuments()); err != nil {
		return nil, fmt.Errorf("failed to seed documents: %w", err)
	}

	libraryRepo := initializeLibraryRepository(ctx, cfg, logger)
	library := services.NewLibraryService(libraryRepo, logger.Named("library"))

	checks := map[string]handlers.HealthCheck{
		"library": libraryRepo.Ping,
	}
	responder, err := newResponder(cfg, logger, checks)
	if err != nil {
		libraryRepo.Close()
		return nil, err
	}
	sessions := services.NewSessionManager(responder, metrics, logger.Named("conversation"))

	h := &routes.Handlers{
		Health:    handlers.HealthCheckHandler,
		Home:      handlers.HomeHandler,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
		Readiness: handlers.NewReadinessHandler(checks, logger.Named("health")),
		Assistant: handlers.NewAssistantHandler(logger.Named("assistant")),
		Claims:    handlers.NewClaimHandler(claims, sessions, documents, logger.Named("claims")),
		Documents: handlers.NewDocumentHandler(claims, documents, logger.Named("documents")),
		Tabs:      handlers.NewTabHandler(claims, sessions, logger.Named("tabs")),
		Library:   handlers.NewLibraryHandler(library, logger.Named("library")),
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router, h)

	// Add Swagger endpoints
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(
		httpSwagger.URL(cfg.Server.SwaggerURL),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("none"),
		httpSwagger.DomID("swagger-ui"),
	))

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr,
			Handler:           corsMiddleware(router),
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger:   logger,
		sessions: sessions,
		workers:  pool,
		library:  libraryRepo,
	}, nil
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start launches the background workers
func (s *Server) Start(ctx context.Context) error {
	if err := s.workers.StartAll(ctx); err != nil {
		return fmt.Errorf("failed to start workers: %w", err)
	}
	s.logger.Info("Background workers started", zap.Int("workers", s.workers.Count()))
	return nil
}

// ListenAndServe serves HTTP until Shutdown is called
func (s *Server) ListenAndServe() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Serve accepts connections on listener until Shutdown is called
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info("HTTP server listening", zap.String("addr", listener.Addr().String()))
	if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests, cancels outstanding dispatches,
// stops the workers and releases the library store.
// Sessions close while HTTP drains: wait=true handlers block on their dispatch
// and only return once it is cancelled.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error

	sessionsClosed := make(chan struct{})
	go func() {
		s.sessions.Close()
		close(sessionsClosed)
	}()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	<-sessionsClosed

	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), workerStopTimeout)
	defer cancel()
	if err := s.workers.StopAll(stopCtx); err != nil {
		errs = append(errs, fmt.Errorf("worker shutdown: %w", err))
	}
	if err := s.library.Close(); err != nil {
		errs = append(errs, fmt.Errorf("library close: %w", err))
	}

	for _, stats := range s.workers.GetAllStats() {
		s.logger.Info("Worker stopped",
			zap.String("worker", stats.WorkerName),
			zap.Int64("processed", stats.JobsProcessed),
			zap.Int64("succeeded", stats.JobsSucceeded),
			zap.Int64("skipped", stats.JobsSkipped),
			zap.Int64("failed", stats.JobsFailed))
	}
	return errors.Join(errs...)
}

func loadClaims(cfg *config.Config, logger *zap.Logger) ([]models.Claim, error) {
	if cfg.ClaimsFile == "" {
		return config.DefaultClaims(), nil
	}
	claims, err := config.LoadClaims(cfg.ClaimsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load claims: %w", err)
	}
	logger.Info("Loaded claims file", zap.String("path", cfg.ClaimsFile), zap.Int("claims", len(claims)))
	return claims, nil
}

// initializeLibraryRepository connects the Redis library store, falling
// back to process memory when Redis is disabled or unreachable
func initializeLibraryRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) repositories.LibraryRepository {
	if !cfg.Redis.Enabled {
		logger.Info("Redis disabled, library kept in memory")
		return repositories.NewMemoryLibraryRepository()
	}

	redisConfig := getRedisConfig(cfg)
	logger.Info("Connecting to Redis", zap.String("addr", redisConfig.Addr()), zap.Int("db", redisConfig.DB))

	client, err := db.Connect(ctx, redisConfig, redisConnectTimeout)
	if err != nil {
		logger.Warn("Redis connection failed, library kept in memory",
			zap.Error(err),
			zap.String("hint", "docker run -d -p 6379:6379 redis:7-alpine"))
		return repositories.NewMemoryLibraryRepository()
	}
	logger.Info("Redis connected", zap.String("key_prefix", cfg.Redis.KeyPrefix))

	return repositories.NewRedisLibraryRepository(client.GetClient(), cfg.Redis.KeyPrefix)
}

func getRedisConfig(cfg *config.Config) db.RedisConfig {
	redisConfig := db.DefaultRedisConfig()
	redisConfig.Host = cfg.Redis.Host
	redisConfig.Port = cfg.Redis.Port
	redisConfig.Password = cfg.Redis.Password
	redisConfig.DB = cfg.Redis.DB
	if cfg.Redis.PoolSize > 0 {
		redisConfig.PoolSize = cfg.Redis.PoolSize
	}
	return redisConfig
}

// newResponder picks the answer backend; the LLM backend also gets a readiness check
func newResponder(cfg *config.Config, logger *zap.Logger, checks map[string]handlers.HealthCheck) (services.Responder, error) {
	switch cfg.Dispatch.Responder {
	case config.ResponderMock:
		logger.Info("Using mock responder",
			zap.Duration("min_delay", cfg.Dispatch.MinDelay),
			zap.Duration("max_delay", cfg.Dispatch.MaxDelay))
		return services.NewMockResponder(cfg.Dispatch.MinDelay, cfg.Dispatch.MaxDelay), nil
	case config.ResponderLLM:
		llm := services.NewLLMResponder(services.LLMResponderConfig{
			BaseURL: cfg.LLM.BaseURL,
			Model:   cfg.LLM.Model,
			Timeout: cfg.LLM.Timeout,
		})
		checks["llm"] = llm.HealthCheck
		logger.Info("Using LLM responder", zap.String("base_url", cfg.LLM.BaseURL), zap.String("model", cfg.LLM.Model))
		return llm, nil
	default:
		return nil, fmt.Errorf("unknown responder %q", cfg.Dispatch.Responder)
	}
}
