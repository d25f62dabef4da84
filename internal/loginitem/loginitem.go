package loginitem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/logger"
)

const (
	pidFileName        = "agent.pid"
	defaultStopTimeout = 10 * time.Second
)

// ErrAgentNotConfigured is returned when no agent binary is configured
var ErrAgentNotConfigured = errors.New("agent binary path is not configured")

var errStillRunning = errors.New("agent still running")

// Config holds where the agent binary lives and where its state is kept
type Config struct {
	AgentPath       string
	AgentConfigFile string
	StateDir        string
	// StopTimeout bounds how long Disable waits for the agent to exit before killing it
	StopTimeout time.Duration
}

// LoginItem starts and stops the background agent.
// The item is enabled while its pid file exists, even if the process has died since.
//
//go:generate mockgen -source=loginitem.go -destination=../mocks/loginitem.go -package=mocks -mock_names=LoginItem=MockLoginItem
type LoginItem interface {
	// Enable starts the agent unless it is already running
	Enable(ctx context.Context) error
	// Disable terminates the agent, waits for it to exit and forgets it
	Disable(ctx context.Context) error
	// IsEnabled reports whether the agent was enabled and not disabled since
	IsEnabled() bool
	// IsRunning reports whether the agent process is alive
	IsRunning() bool
}

type loginItem struct {
	config   Config
	fs       adapter.FileSystem
	launcher adapter.ProcessLauncher
}

// NewLoginItem creates a login item backed by a pid file in the state directory
func NewLoginItem(config Config, fs adapter.FileSystem, launcher adapter.ProcessLauncher) LoginItem {
	if config.StopTimeout <= 0 {
		config.StopTimeout = defaultStopTimeout
	}
	return &loginItem{config: config, fs: fs, launcher: launcher}
}

func (l *loginItem) pidFile() string {
	return filepath.Join(l.config.StateDir, pidFileName)
}

func (l *loginItem) Enable(ctx context.Context) error {
	if l.IsRunning() {
		return nil
	}
	if l.config.AgentPath == "" {
		return ErrAgentNotConfigured
	}
	if err := l.fs.MkdirAll(l.config.StateDir, 0o700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	var args []string
	if l.config.AgentConfigFile != "" {
		args = append(args, "--config", l.config.AgentConfigFile)
	}
	p, err := l.launcher.Start(l.config.AgentPath, args, nil)
	if err != nil {
		return fmt.Errorf("failed to start agent: %w", err)
	}
	if err := l.fs.WriteFile(l.pidFile(), []byte(strconv.Itoa(p.Pid())), 0o600); err != nil {
		_ = p.Signal(syscall.SIGTERM)
		return fmt.Errorf("failed to write agent pid file: %w", err)
	}

	logger.InfoCtx(ctx, "Agent started", zap.Int("pid", p.Pid()))
	return nil
}

func (l *loginItem) Disable(ctx context.Context) error {
	pid, ok := l.readPID()
	if !ok {
		return nil
	}

	if p, err := l.launcher.Find(pid); err == nil {
		l.terminate(ctx, pid, p)
	}
	if err := l.fs.Remove(l.pidFile()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove agent pid file: %w", err)
	}

	logger.InfoCtx(ctx, "Agent stopped", zap.Int("pid", pid))
	return nil
}

// terminate asks the agent to exit and waits until it has, killing it after the stop timeout
func (l *loginItem) terminate(ctx context.Context, pid int, p adapter.Process) {
	if err := p.Signal(syscall.SIGTERM); err != nil {
		if !errors.Is(err, os.ErrProcessDone) {
			logger.WarnCtx(ctx, "Failed to signal agent", zap.Int("pid", pid), zap.Error(err))
		}
		return
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 20 * time.Millisecond
	b.MaxInterval = 500 * time.Millisecond
	b.MaxElapsedTime = l.config.StopTimeout

	err := backoff.Retry(func() error {
		if p.Signal(syscall.Signal(0)) == nil {
			return errStillRunning
		}
		return nil
	}, backoff.WithContext(b, ctx))
	if err == nil {
		return
	}

	logger.WarnCtx(ctx, "Agent did not exit in time, killing it",
		zap.Int("pid", pid),
		zap.Duration("timeout", l.config.StopTimeout),
		zap.Error(err))
	if err := p.Signal(syscall.SIGKILL); err != nil && !errors.Is(err, os.ErrProcessDone) {
		logger.WarnCtx(ctx, "Failed to kill agent", zap.Int("pid", pid), zap.Error(err))
	}
}

func (l *loginItem) IsEnabled() bool {
	_, ok := l.readPID()
	return ok
}

func (l *loginItem) IsRunning() bool {
	pid, ok := l.readPID()
	if !ok {
		return false
	}
	p, err := l.launcher.Find(pid)
	if err != nil {
		return false
	}
	return p.Signal(syscall.Signal(0)) == nil
}

func (l *loginItem) readPID() (int, bool) {
	data, err := l.fs.ReadFile(l.pidFile())
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}
	return pid, true
}
