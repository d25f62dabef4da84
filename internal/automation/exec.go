package automation

import (
	"context"
	"errors"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/logger"
)

const maxStderrMessage = 512

// execRunner drives an external automation engine binary.
// The action is the first argument, the request is written to stdin and the response read from stdout.
type execRunner struct {
	enginePath string
	timeout    time.Duration
	json       adapter.JSON
	launcher   adapter.ProcessLauncher
}

// NewExecRunner creates a runner backed by the engine binary at enginePath
func NewExecRunner(enginePath string, timeout time.Duration, json adapter.JSON, launcher adapter.ProcessLauncher) Runner {
	return &execRunner{
		enginePath: enginePath,
		timeout:    timeout,
		json:       json,
		launcher:   launcher,
	}
}

func (r *execRunner) Scan(ctx context.Context, broker domain.Broker, query domain.ProfileQuery) ([]domain.ExtractedProfile, error) {
	resp, err := r.run(ctx, engineRequest{
		Action: actionScan,
		Broker: newEngineBroker(broker),
		Query:  newEngineQuery(query),
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.ExtractedProfile, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		profiles = append(profiles, p.toDomain())
	}
	return profiles, nil
}

func (r *execRunner) OptOut(ctx context.Context, broker domain.Broker, query domain.ProfileQuery, extracted domain.ExtractedProfile) error {
	_, err := r.run(ctx, engineRequest{
		Action:    actionOptOut,
		Broker:    newEngineBroker(broker),
		Query:     newEngineQuery(query),
		Extracted: newEngineProfile(extracted),
	})
	return err
}

func (r *execRunner) run(ctx context.Context, req engineRequest) (*engineResponse, error) {
	req.ShowWebView = ShowWebView(ctx)
	payload, err := r.json.Marshal(req)
	if err != nil {
		return nil, domain.NewAutomationError(domain.AutomationErrorParsing, "failed to encode request: %v", err)
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	stdout, stderr, runErr := r.launcher.Run(runCtx, r.enginePath, []string{req.Action}, payload)
	logger.DebugCtx(ctx, "Automation engine finished",
		zap.String("action", req.Action),
		zap.String("broker", req.Broker.Name),
		zap.Duration("duration", time.Since(start)),
		zap.Error(runErr))

	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, domain.NewAutomationError(domain.AutomationErrorTimeout, "%s on %s exceeded %s", req.Action, req.Broker.Name, r.timeout)
	}
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		return nil, domain.NewAutomationError(domain.AutomationErrorEngineUnavailable, "%v", runErr)
	}

	// an engine reporting a structured error may still exit non-zero
	var resp engineResponse
	parseErr := r.json.Unmarshal(stdout, &resp)
	if parseErr == nil && resp.Error != nil {
		return nil, resp.Error.toDomain()
	}
	if runErr != nil {
		return nil, domain.NewAutomationError(domain.AutomationErrorUnknown, "engine failed: %v: %s", runErr, stderrMessage(stderr))
	}
	if parseErr != nil {
		return nil, domain.NewAutomationError(domain.AutomationErrorParsing, "invalid engine response: %v", parseErr)
	}
	return &resp, nil
}

func stderrMessage(stderr []byte) string {
	msg := strings.TrimSpace(string(stderr))
	if len(msg) > maxStderrMessage {
		msg = msg[:maxStderrMessage]
	}
	return msg
}
