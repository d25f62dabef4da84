package feature

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/logger"
)

// Name is the privacy configuration flag of the feature
const Name = "dataBrokerProtection"

// EntitlementProvider reports whether the user's subscription includes the feature
//
//go:generate mockgen -source=gatekeeper.go -destination=../mocks/feature.go -package=mocks -mock_names=EntitlementProvider=MockEntitlementProvider,PrivacyConfig=MockPrivacyConfig,Gatekeeper=MockGatekeeper
type EntitlementProvider interface {
	HasEntitlement(ctx context.Context) (bool, error)
}

// PrivacyConfig reports remotely controlled feature flags
type PrivacyConfig interface {
	IsFeatureEnabled(name string) bool
}

// Status explains the gatekeeper's decision
type Status struct {
	PrivacyEnabled bool
	InRollout      bool
	Entitled       bool
}

// Enabled reports whether every condition holds
func (s Status) Enabled() bool {
	return s.PrivacyEnabled && s.InRollout && s.Entitled
}

// Gatekeeper decides whether the feature is available to this install
type Gatekeeper interface {
	IsEnabled(ctx context.Context) (bool, error)
	Status(ctx context.Context) (Status, error)
}

type gatekeeper struct {
	privacy     PrivacyConfig
	rollout     *Rollout
	percent     int
	entitlement EntitlementProvider
}

// NewGatekeeper creates a gatekeeper; percent is the share of installs the feature is rolled out to
func NewGatekeeper(privacy PrivacyConfig, rollout *Rollout, percent int, entitlement EntitlementProvider) Gatekeeper {
	return &gatekeeper{
		privacy:     privacy,
		rollout:     rollout,
		percent:     percent,
		entitlement: entitlement,
	}
}

func (g *gatekeeper) IsEnabled(ctx context.Context) (bool, error) {
	status, err := g.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Enabled(), nil
}

// Status evaluates the conditions in order and stops at the first that fails
func (g *gatekeeper) Status(ctx context.Context) (Status, error) {
	var status Status

	status.PrivacyEnabled = g.privacy.IsFeatureEnabled(Name)
	if !status.PrivacyEnabled {
		return status, nil
	}

	in, err := g.rollout.IsIn(ctx, g.percent)
	if err != nil {
		return status, fmt.Errorf("failed to evaluate rollout: %w", err)
	}
	status.InRollout = in
	if !in {
		return status, nil
	}

	entitled, err := g.entitlement.HasEntitlement(ctx)
	if err != nil {
		return status, fmt.Errorf("failed to check entitlement: %w", err)
	}
	status.Entitled = entitled

	logger.DebugCtx(ctx, "Evaluated feature gate",
		zap.Bool("privacy_enabled", status.PrivacyEnabled),
		zap.Bool("in_rollout", status.InRollout),
		zap.Bool("entitled", status.Entitled))
	return status, nil
}

// StaticEntitlement is an entitlement decided by configuration
type StaticEntitlement bool

func (e StaticEntitlement) HasEntitlement(context.Context) (bool, error) {
	return bool(e), nil
}

// StaticPrivacyConfig is a privacy configuration with fixed flags
type StaticPrivacyConfig map[string]bool

func (c StaticPrivacyConfig) IsFeatureEnabled(name string) bool {
	return c[name]
}
