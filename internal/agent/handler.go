package agent

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/ipc"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/scheduler"
)

// Handler serves app requests inside the agent.
// Long operations are acknowledged right away and keep running in the background.
type Handler struct {
	scheduler scheduler.Scheduler
	launcher  adapter.ProcessLauncher
	version   string

	// base context for background operations; canceled on shutdown
	ctx context.Context
	wg  sync.WaitGroup
}

// NewHandler creates the agent request handler
func NewHandler(ctx context.Context, s scheduler.Scheduler, launcher adapter.ProcessLauncher, version string) *Handler {
	return &Handler{
		scheduler: s,
		launcher:  launcher,
		version:   version,
		ctx:       ctx,
	}
}

var _ ipc.Handler = (*Handler)(nil)

// ProfileSaved scans the new profile right away and keeps the scheduler running afterwards
func (h *Handler) ProfileSaved(ctx context.Context) error {
	logger.InfoCtx(ctx, "Profile saved, starting immediate operations")
	h.background("profileSaved", func(ctx context.Context) error {
		if err := h.scheduler.StartImmediateOperations(ctx, false); err != nil {
			return err
		}
		h.scheduler.StartScheduledOperations(ctx, false)
		return nil
	})
	return nil
}

func (h *Handler) AppLaunched(ctx context.Context) error {
	h.scheduler.StartScheduledOperations(ctx, false)
	return nil
}

func (h *Handler) StartImmediateOperations(_ context.Context, showWebView bool) error {
	h.background("startImmediateOperations", func(ctx context.Context) error {
		return h.scheduler.StartImmediateOperations(ctx, showWebView)
	})
	return nil
}

func (h *Handler) StartScheduledOperations(ctx context.Context, showWebView bool) error {
	h.scheduler.StartScheduledOperations(ctx, showWebView)
	return nil
}

func (h *Handler) RunAllOptOuts(_ context.Context, showWebView bool) error {
	h.background("runAllOptOuts", func(ctx context.Context) error {
		return h.scheduler.RunAllOptOuts(ctx, showWebView)
	})
	return nil
}

// OpenBrowser opens a broker site in the user's browser for debugging
func (h *Handler) OpenBrowser(ctx context.Context, domain string) error {
	target := domain
	if !strings.Contains(target, "://") {
		target = "https://" + target
	}
	u, err := url.Parse(target)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid domain %q", domain)
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	p, err := h.launcher.Start(browserCommand(), []string{u.String()}, nil)
	if err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	go func() {
		_ = p.Wait()
	}()
	logger.InfoCtx(ctx, "Opened browser", zap.String("host", u.Host))
	return nil
}

func (h *Handler) DebugMetadata(_ context.Context) (*ipc.DebugMetadata, error) {
	status := h.scheduler.Status()
	return &ipc.DebugMetadata{
		AgentVersion:    h.version,
		AgentPID:        os.Getpid(),
		Scheduled:       status.Scheduled,
		Running:         status.Running,
		LastRunStarted:  status.LastRunStarted,
		LastRunFinished: status.LastRunFinished,
		ScansRun:        status.ScansRun,
		OptOutsRun:      status.OptOutsRun,
		Failures:        status.Failures,
	}, nil
}

// Wait blocks until background operations have returned
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) background(name string, fn func(ctx context.Context) error) {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if err := fn(h.ctx); err != nil {
			logger.ErrorCtx(h.ctx, fmt.Errorf("%s failed: %w", name, err))
		}
	}()
}

func browserCommand() string {
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
