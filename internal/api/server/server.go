package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/api/middleware"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/scheduler"
)

// Config holds the diagnostics server configuration
type Config struct {
	Debug        bool
	Listen       string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// ReadyFunc returns when the agent became ready, nil while starting
type ReadyFunc func() *time.Time

// Server serves agent health, scheduler status and prometheus metrics on loopback
type Server struct {
	config     Config
	scheduler  scheduler.Scheduler
	ready      ReadyFunc
	httpServer *http.Server
}

// New creates a new diagnostics server
func New(cfg Config, s scheduler.Scheduler, ready ReadyFunc) *Server {
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 5 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	return &Server{config: cfg, scheduler: s, ready: ready}
}

// Router builds the gin router
func (s *Server) Router() *gin.Engine {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recover())
	router.Use(middleware.Observe())

	router.GET("/healthz", s.health)
	router.GET("/status", s.status)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

// Start listens and serves until Shutdown is called
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.config.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.config.Listen, err)
	}
	return s.Serve(ln)
}

// Serve serves on an existing listener until Shutdown is called
func (s *Server) Serve(ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	logger.Info("Starting diagnostics server", zap.String("address", ln.Addr().String()))

	if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to serve diagnostics: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down diagnostics server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}
	return nil
}

func (s *Server) health(c *gin.Context) {
	since := s.ready()
	if since == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready", "readySince": since})
}

func (s *Server) status(c *gin.Context) {
	st := s.scheduler.Status()
	c.JSON(http.StatusOK, gin.H{
		"scheduled":       st.Scheduled,
		"running":         st.Running,
		"lastRunStarted":  st.LastRunStarted,
		"lastRunFinished": st.LastRunFinished,
		"scansRun":        st.ScansRun,
		"optOutsRun":      st.OptOutsRun,
		"failures":        st.Failures,
		"aborted":         st.Aborted,
	})
}
