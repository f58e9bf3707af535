package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"certportal/internal/auth"
	"certportal/internal/certificates"
	"certportal/internal/config"
	"certportal/internal/jobs"
	"certportal/internal/metrics"
	"certportal/internal/middlewares"
	"certportal/internal/storage"
	"certportal/internal/version"
	"certportal/internal/views"
	"certportal/internal/workflow"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	logCloser   io.Closer
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	database    *storage.DatabaseProvider
	sessions    *auth.SessionManager
	jobManager  *jobs.JobManager
	instanceID  string
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger, logCloser, err := setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	fail := func(err error) (*Server, error) {
		cancel()
		_ = logCloser.Close()
		return nil, err
	}

	if cfg.UsesDefaultSessionSecret() {
		logger.Warn("session cookies are signed with the built-in secret, set SESSION_SECRET in production")
	}

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		logger.Error("failed to initialize session manager", "error", err)
		return fail(err)
	}

	if sessionManager.RedisClient != nil && cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		collector := redisprometheus.NewCollector(metrics.Namespace, metrics.SubsystemSessions, sessionManager.RedisClient)
		if err := prometheus.Register(collector); err != nil {
			logger.Debug("failed to register redis session collector: already registered", "error", err)
		}
	}

	database, err := storage.NewDatabaseProvider(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize database provider", "error", err)
		return fail(err)
	}

	logger.Debug("running database migrations")
	if err := database.RunMigrations(ctx); err != nil {
		logger.Error("failed to run database migrations", "error", err)
		_ = database.Close()
		return fail(err)
	}
	logger.Debug("database migrations completed")

	certs := certificates.NewFileStore(cfg.Certificate.Path, cfg.Certificate.MaxUploadBytes)

	jobManager := jobs.NewJobManager(logger)
	jobManager.Register(jobs.NewCertificateWatchJob(certs, cfg.Certificate.WatchInterval, logger))

	appCtx, err := newAppContext(ctx, cfg, logger, sessionManager, database, certs)
	if err != nil {
		_ = database.Close()
		return fail(err)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           setupRouter(appCtx),
		ReadHeaderTimeout: 10 * time.Second,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugServer = &http.Server{
			Addr:              fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler:           setupDebugRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	hostname := os.Getenv("HOSTNAME")
	if hostname == "" {
		hostname = uuid.New().String()
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		logCloser:   logCloser,
		appCtx:      appCtx,
		httpServer:  httpServer,
		debugServer: debugServer,
		database:    database,
		sessions:    sessionManager,
		jobManager:  jobManager,
		instanceID:  hostname,
		cancel:      cancel,
	}, nil
}

// newAppContext wires the request independent dependencies shared by every handler.
func newAppContext(ctx context.Context, cfg *config.Config, logger *slog.Logger, sessions *auth.SessionManager, database storage.StorageProvider, certs certificates.CertificateProvider) (*middlewares.AppContext, error) {
	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	tracker := workflow.NewTracker(database, database, sessions, logger, cfg.Server.CompanyWebsite)

	return middlewares.NewAppContext(ctx, cfg, logger, sessions, database, certs, tracker, renderer), nil
}

func (s *Server) Start() error {
	defer s.close()

	s.jobManager.Start(s.appCtx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port, "instance", s.instanceID, "version", version.GetFullVersion())
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	s.logger.Info("Server Exited")
	return nil
}

// close releases everything New acquired.
func (s *Server) close() {
	s.cancel()

	if err := s.database.Close(); err != nil {
		s.logger.Error("failed to close database", "error", err)
	}

	if s.sessions.RedisClient != nil {
		if err := s.sessions.RedisClient.Close(); err != nil {
			s.logger.Error("failed to close redis client", "error", err)
		}
	}

	_ = s.logCloser.Close()
}
