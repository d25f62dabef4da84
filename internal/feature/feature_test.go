package feature_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/domain"
	"github.com/brokerguard/dbp/internal/feature"
	"github.com/brokerguard/dbp/internal/loginitem"
	"github.com/brokerguard/dbp/internal/mocks"
)

// memoryKV is an in-memory key value store
type memoryKV map[string]string

func (m memoryKV) GetKeyValue(_ context.Context, key string) (*string, error) {
	v, ok := m[key]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func (m memoryKV) SetKeyValue(_ context.Context, key string, value string) error {
	m[key] = value
	return nil
}

func TestRollout_RollIsSticky(t *testing.T) {
	kv := memoryKV{}
	rolls := 0
	r := feature.NewRolloutWithRoll(kv, func() int {
		rolls++
		return 40
	})
	ctx := context.Background()

	in, err := r.IsIn(ctx, 50)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = r.IsIn(ctx, 39)
	require.NoError(t, err)
	assert.False(t, in)

	in, err = r.IsIn(ctx, 40)
	require.NoError(t, err)
	assert.True(t, in)

	// a new rollout over the same store reuses the roll
	again := feature.NewRolloutWithRoll(kv, func() int {
		rolls++
		return 90
	})
	roll, err := again.Roll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 40, roll)
	assert.Equal(t, 1, rolls)
}

func TestRollout_InvalidStoredRollIsReplaced(t *testing.T) {
	kv := memoryKV{"feature.rollout.roll": "250"}
	r := feature.NewRolloutWithRoll(kv, func() int { return 7 })

	roll, err := r.Roll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, roll)
	assert.Equal(t, "7", kv["feature.rollout.roll"])
}

func TestRollout_DefaultRollInRange(t *testing.T) {
	r := feature.NewRollout(memoryKV{})
	roll, err := r.Roll(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, roll, 1)
	assert.LessOrEqual(t, roll, 100)

	in, err := r.IsIn(context.Background(), 100)
	require.NoError(t, err)
	assert.True(t, in)
	in, err = r.IsIn(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, in)
}

func TestRollout_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	st.EXPECT().GetKeyValue(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk I/O error"))

	_, err := feature.NewRollout(st).IsIn(context.Background(), 50)
	assert.ErrorContains(t, err, "failed to read rollout roll")
}

func TestGatekeeper(t *testing.T) {
	tests := []struct {
		name         string
		privacy      bool
		percent      int
		entitled     bool
		entitleErr   error
		checkEntitle bool
		want         feature.Status
		wantErr      bool
	}{
		{
			name:    "privacy flag off",
			privacy: false,
			percent: 100,
			want:    feature.Status{},
		},
		{
			name:    "outside rollout",
			privacy: true,
			percent: 10,
			want:    feature.Status{PrivacyEnabled: true},
		},
		{
			name:         "not entitled",
			privacy:      true,
			percent:      100,
			checkEntitle: true,
			want:         feature.Status{PrivacyEnabled: true, InRollout: true},
		},
		{
			name:         "enabled",
			privacy:      true,
			percent:      50,
			entitled:     true,
			checkEntitle: true,
			want:         feature.Status{PrivacyEnabled: true, InRollout: true, Entitled: true},
		},
		{
			name:         "entitlement failure",
			privacy:      true,
			percent:      100,
			entitleErr:   errors.New("subscription service unavailable"),
			checkEntitle: true,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			entitlement := mocks.NewMockEntitlementProvider(ctrl)
			if tt.checkEntitle {
				call := entitlement.EXPECT().HasEntitlement(gomock.Any()).Return(tt.entitled, tt.entitleErr)
				if !tt.wantErr {
					// Status and IsEnabled each ask once
					call.Times(2)
				}
			}
			privacy := feature.StaticPrivacyConfig{feature.Name: tt.privacy}
			rollout := feature.NewRolloutWithRoll(memoryKV{}, func() int { return 42 })

			gk := feature.NewGatekeeper(privacy, rollout, tt.percent, entitlement)
			status, err := gk.Status(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)

			enabled, err := gk.IsEnabled(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want.Enabled(), enabled)
		})
	}
}

func TestStaticEntitlement(t *testing.T) {
	ok, err := feature.StaticEntitlement(true).HasEntitlement(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

type disablerEnv struct {
	disabler   *feature.Disabler
	dm         *mocks.MockDataManager
	vault      *mocks.MockKeyResetter
	bridge     *mocks.MockBridge
	gatekeeper *mocks.MockGatekeeper
}

func setupDisabler(t *testing.T) *disablerEnv {
	ctrl := gomock.NewController(t)
	env := &disablerEnv{
		dm:         mocks.NewMockDataManager(ctrl),
		vault:      mocks.NewMockKeyResetter(ctrl),
		bridge:     mocks.NewMockBridge(ctrl),
		gatekeeper: mocks.NewMockGatekeeper(ctrl),
	}
	env.disabler = feature.NewDisabler(env.dm, env.vault, env.bridge, env.gatekeeper)
	return env
}

func completeWith(err error) func(loginitem.Completion) {
	return func(c loginitem.Completion) { c(err) }
}

func TestDisabler_Disable(t *testing.T) {
	env := setupDisabler(t)

	gomock.InOrder(
		env.bridge.EXPECT().DataDeleted(gomock.Any()).Do(completeWith(nil)),
		env.dm.EXPECT().DeleteAllData(gomock.Any()).Return(nil),
		env.vault.EXPECT().Reset().Return(nil),
	)

	require.NoError(t, env.disabler.Disable(context.Background()))
}

func TestDisabler_DisableContinuesAfterFailures(t *testing.T) {
	env := setupDisabler(t)

	env.bridge.EXPECT().DataDeleted(gomock.Any()).Do(completeWith(errors.New("agent unreachable")))
	env.dm.EXPECT().DeleteAllData(gomock.Any()).Return(nil)
	env.vault.EXPECT().Reset().Return(errors.New("keychain locked"))

	err := env.disabler.Disable(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to stop agent")
	assert.ErrorContains(t, err, "failed to reset vault")
	assert.NotContains(t, err.Error(), "failed to delete data")
}

func TestDisabler_DisableIfNotAllowed(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		env := setupDisabler(t)
		env.gatekeeper.EXPECT().IsEnabled(gomock.Any()).Return(true, nil)

		disabled, err := env.disabler.DisableIfNotAllowed(context.Background())
		require.NoError(t, err)
		assert.False(t, disabled)
	})

	t.Run("not allowed without profile", func(t *testing.T) {
		env := setupDisabler(t)
		env.gatekeeper.EXPECT().IsEnabled(gomock.Any()).Return(false, nil)
		env.dm.EXPECT().FetchProfile(gomock.Any()).Return(nil, nil)

		disabled, err := env.disabler.DisableIfNotAllowed(context.Background())
		require.NoError(t, err)
		assert.False(t, disabled)
	})

	t.Run("not allowed with profile", func(t *testing.T) {
		env := setupDisabler(t)
		env.gatekeeper.EXPECT().IsEnabled(gomock.Any()).Return(false, nil)
		env.dm.EXPECT().FetchProfile(gomock.Any()).Return(&domain.Profile{BirthYear: 1980}, nil)
		env.bridge.EXPECT().DataDeleted(gomock.Any()).Do(completeWith(nil))
		env.dm.EXPECT().DeleteAllData(gomock.Any()).Return(nil)
		env.vault.EXPECT().Reset().Return(nil)

		disabled, err := env.disabler.DisableIfNotAllowed(context.Background())
		require.NoError(t, err)
		assert.True(t, disabled)
	})
}
