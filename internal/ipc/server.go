package ipc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/logger"
)

// Handler is implemented by the agent to serve requests.
// Every method must return quickly, long operations continue in the background.
//
//go:generate mockgen -source=server.go -destination=../mocks/ipc_handler.go -package=mocks -mock_names=Handler=MockIPCHandler
type Handler interface {
	ProfileSaved(ctx context.Context) error
	AppLaunched(ctx context.Context) error
	StartImmediateOperations(ctx context.Context, showWebView bool) error
	StartScheduledOperations(ctx context.Context, showWebView bool) error
	RunAllOptOuts(ctx context.Context, showWebView bool) error
	OpenBrowser(ctx context.Context, domain string) error
	DebugMetadata(ctx context.Context) (*DebugMetadata, error)
}

// ServerConfig holds the agent side IPC configuration
type ServerConfig struct {
	Host           string
	Port           int // -1 picks a random port
	SubjectPrefix  string
	StartupTimeout time.Duration
	Debug          bool
}

// Server hosts the IPC endpoint of the agent on an embedded NATS server
type Server struct {
	config    ServerConfig
	handler   Handler
	json      adapter.JSON
	connector adapter.NatsConnector
	clock     adapter.Clock

	ns  *natsserver.Server
	nc  adapter.NatsConn
	sub *nats.Subscription

	ready      atomic.Bool
	readyMu    sync.RWMutex
	readySince *time.Time
}

// NewServer creates the agent IPC server
func NewServer(config ServerConfig, handler Handler, json adapter.JSON, connector adapter.NatsConnector, clock adapter.Clock) *Server {
	if config.StartupTimeout <= 0 {
		config.StartupTimeout = 10 * time.Second
	}
	return &Server{
		config:    config,
		handler:   handler,
		json:      json,
		connector: connector,
		clock:     clock,
	}
}

// Start brings up the embedded NATS server and subscribes to commands.
// Requests other than ping are refused until MarkReady is called.
func (s *Server) Start() error {
	opts := &natsserver.Options{
		ServerName: "dbp-agent",
		Host:       s.config.Host,
		Port:       s.config.Port,
		NoSigs:     true,
		MaxPayload: 1024 * 1024,
	}

	ns, err := natsserver.NewServer(opts)
	if err != nil {
		return fmt.Errorf("failed to create NATS server: %w", err)
	}
	ns.SetLogger(newNatsLogger(logger.Named("nats")), s.config.Debug, false)

	go ns.Start()
	if !ns.ReadyForConnections(s.config.StartupTimeout) {
		ns.Shutdown()
		return fmt.Errorf("NATS server not ready within %s", s.config.StartupTimeout)
	}
	s.ns = ns

	nc, err := s.connector.Connect(ns.ClientURL(),
		nats.Name("dbp-agent"),
		nats.ClosedHandler(func(*nats.Conn) {
			logger.Info("Agent IPC connection closed")
		}),
	)
	if err != nil {
		ns.Shutdown()
		return fmt.Errorf("failed to connect to embedded NATS server: %w", err)
	}
	s.nc = nc

	sub, err := nc.Subscribe(CommandSubject(s.config.SubjectPrefix), s.handleMsg)
	if err != nil {
		s.Shutdown()
		return fmt.Errorf("failed to subscribe to commands: %w", err)
	}
	s.sub = sub

	logger.Info("Agent IPC server listening", zap.String("url", ns.ClientURL()))
	return nil
}

// MarkReady lets the server answer requests and announces readiness to waiting clients
func (s *Server) MarkReady() error {
	now := s.clock.Now()
	s.readyMu.Lock()
	s.readySince = &now
	s.readyMu.Unlock()
	s.ready.Store(true)

	if err := s.nc.Publish(ReadySubject(s.config.SubjectPrefix), []byte(now.UTC().Format(time.RFC3339Nano))); err != nil {
		return fmt.Errorf("failed to announce readiness: %w", err)
	}
	if err := s.nc.Flush(); err != nil {
		return fmt.Errorf("failed to flush readiness announcement: %w", err)
	}
	logger.Info("Agent ready")
	return nil
}

// ReadySince returns when the agent became ready, nil while starting
func (s *Server) ReadySince() *time.Time {
	s.readyMu.RLock()
	defer s.readyMu.RUnlock()
	return s.readySince
}

// ClientURL returns the URL clients connect to
func (s *Server) ClientURL() string {
	if s.ns == nil {
		return ""
	}
	return s.ns.ClientURL()
}

// Shutdown drains the connection and stops the embedded server
func (s *Server) Shutdown() {
	s.ready.Store(false)
	if s.nc != nil {
		if err := s.nc.Drain(); err != nil {
			logger.Warn("Failed to drain agent IPC connection", zap.Error(err))
			s.nc.Close()
		}
	}
	if s.ns != nil {
		s.ns.Shutdown()
		s.ns.WaitForShutdown()
	}
	logger.Info("Agent IPC server stopped")
}

func (s *Server) handleMsg(msg *nats.Msg) {
	if msg.Reply == "" {
		logger.Warn("Dropping IPC message without reply subject", zap.String("subject", msg.Subject))
		return
	}

	var req Request
	if err := s.json.Unmarshal(msg.Data, &req); err != nil {
		s.respond(msg.Reply, Response{Error: fmt.Sprintf("malformed request: %v", err)})
		return
	}

	resp := s.dispatch(context.Background(), req)
	resp.ID = req.ID
	s.respond(msg.Reply, resp)
}

func (s *Server) dispatch(ctx context.Context, req Request) Response {
	if err := req.Validate(); err != nil {
		return Response{Error: err.Error()}
	}
	if !s.ready.Load() {
		return Response{Error: ErrNotReady.Error()}
	}

	log := logger.FromContext(ctx).With(zap.String("verb", string(req.Verb)), zap.String("request_id", req.ID))
	log.Debug("Handling IPC request")

	var (
		metadata *DebugMetadata
		err      error
	)
	switch req.Verb {
	case VerbPing:
	case VerbProfileSaved:
		err = s.handler.ProfileSaved(ctx)
	case VerbAppLaunched:
		err = s.handler.AppLaunched(ctx)
	case VerbStartImmediateOperations:
		err = s.handler.StartImmediateOperations(ctx, req.ShowWebView)
	case VerbStartScheduledOperations:
		err = s.handler.StartScheduledOperations(ctx, req.ShowWebView)
	case VerbRunAllOptOuts:
		err = s.handler.RunAllOptOuts(ctx, req.ShowWebView)
	case VerbOpenBrowser:
		err = s.handler.OpenBrowser(ctx, req.Domain)
	case VerbGetDebugMetadata:
		metadata, err = s.handler.DebugMetadata(ctx)
		if err == nil && metadata != nil {
			metadata.ReadySince = s.ReadySince()
		}
	}
	if err != nil {
		log.Error("IPC request failed", zap.Error(err))
		return Response{Error: err.Error()}
	}
	return Response{OK: true, Metadata: metadata}
}

func (s *Server) respond(reply string, resp Response) {
	data, err := s.json.Marshal(resp)
	if err != nil {
		logger.Error(fmt.Errorf("failed to marshal IPC response: %w", err))
		return
	}
	if err := s.nc.Publish(reply, data); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
		logger.Error(fmt.Errorf("failed to send IPC response: %w", err))
	}
}

// natsLogger routes embedded server logs to zap
type natsLogger struct {
	log *zap.SugaredLogger
}

func newNatsLogger(l *zap.Logger) *natsLogger {
	return &natsLogger{log: l.Sugar()}
}

func (l *natsLogger) Noticef(format string, v ...any) { l.log.Infof(format, v...) }
func (l *natsLogger) Warnf(format string, v ...any)   { l.log.Warnf(format, v...) }
func (l *natsLogger) Fatalf(format string, v ...any)  { l.log.Errorf(format, v...) }
func (l *natsLogger) Errorf(format string, v ...any)  { l.log.Errorf(format, v...) }
func (l *natsLogger) Debugf(format string, v ...any)  { l.log.Debugf(format, v...) }
func (l *natsLogger) Tracef(format string, v ...any)  { l.log.Debugf(format, v...) }
