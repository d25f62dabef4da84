package feature

import (
	"context"
	"errors"
	"fmt"

	"github.com/brokerguard/dbp/internal/datamanager"
	"github.com/brokerguard/dbp/internal/logger"
	"github.com/brokerguard/dbp/internal/loginitem"
)

// KeyResetter removes the encryption keys of the vault
//
//go:generate mockgen -source=disabler.go -destination=../mocks/key_resetter.go -package=mocks -mock_names=KeyResetter=MockKeyResetter
type KeyResetter interface {
	Reset() error
}

// Disabler turns the feature off and wipes what it stored
type Disabler struct {
	dm         datamanager.DataManager
	vault      KeyResetter
	bridge     loginitem.Bridge
	gatekeeper Gatekeeper
}

// NewDisabler creates a disabler
func NewDisabler(dm datamanager.DataManager, vault KeyResetter, bridge loginitem.Bridge, gatekeeper Gatekeeper) *Disabler {
	return &Disabler{dm: dm, vault: vault, bridge: bridge, gatekeeper: gatekeeper}
}

// Disable stops the agent, deletes all profile data and removes the keys.
// Every step runs even if an earlier one failed.
func (d *Disabler) Disable(ctx context.Context) error {
	var errs []error

	if err := d.stopAgent(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop agent: %w", err))
	}
	if err := d.dm.DeleteAllData(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete data: %w", err))
	}
	if err := d.vault.Reset(); err != nil {
		errs = append(errs, fmt.Errorf("failed to reset vault: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Feature disabled and data removed")
	return nil
}

// DisableIfNotAllowed wipes the feature when the gatekeeper no longer allows it.
// It reports whether the feature was disabled.
func (d *Disabler) DisableIfNotAllowed(ctx context.Context) (bool, error) {
	enabled, err := d.gatekeeper.IsEnabled(ctx)
	if err != nil {
		return false, err
	}
	if enabled {
		return false, nil
	}

	profile, err := d.dm.FetchProfile(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if profile == nil {
		return false, nil
	}

	logger.InfoCtx(ctx, "Feature no longer allowed, disabling")
	return true, d.Disable(ctx)
}

func (d *Disabler) stopAgent(ctx context.Context) error {
	done := make(chan error, 1)
	d.bridge.DataDeleted(func(err error) { done <- err })
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
