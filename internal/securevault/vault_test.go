package securevault_test

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brokerguard/dbp/internal/securevault"
)

func newTestVault(t *testing.T) (*securevault.Vault, securevault.KeyStoreProvider) {
	ks := securevault.NewKeyStoreProvider(keyring.NewArrayKeyring(nil))
	v := securevault.NewVault(newTestCrypto(), ks)
	require.NoError(t, v.Bootstrap())
	return v, ks
}

func TestVault_Bootstrap(t *testing.T) {
	v, ks := newTestVault(t)

	password, err := ks.GeneratedPassword()
	require.NoError(t, err)
	l1, err := ks.L1Key()
	require.NoError(t, err)
	wrapped, err := ks.EncryptedL2Key()
	require.NoError(t, err)

	assert.NotEmpty(t, password)
	assert.Len(t, l1, securevault.KeyLength)
	assert.Greater(t, len(wrapped), securevault.SaltLength+securevault.KeyLength)
	assert.False(t, v.IsUnlocked())

	// bootstrapping again keeps the existing keys
	require.NoError(t, v.Bootstrap())
	l1Again, err := ks.L1Key()
	require.NoError(t, err)
	wrappedAgain, err := ks.EncryptedL2Key()
	require.NoError(t, err)
	assert.Equal(t, l1, l1Again)
	assert.Equal(t, wrapped, wrappedAgain)
}

func TestVault_BootstrapWithoutPasswordForExistingL2(t *testing.T) {
	ks := securevault.NewKeyStoreProvider(keyring.NewArrayKeyring(nil))
	require.NoError(t, ks.StoreEncryptedL2Key([]byte("orphaned wrapped key material")))

	v := securevault.NewVault(newTestCrypto(), ks)
	err := v.Bootstrap()
	assert.ErrorIs(t, err, securevault.ErrMissingGeneratedPassword)
}

func TestVault_L2RequiresUnlock(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.L2Encrypt([]byte("John"))
	assert.ErrorIs(t, err, securevault.ErrAuthenticationRequired)
	_, err = v.L2Decrypt([]byte("anything"))
	assert.ErrorIs(t, err, securevault.ErrAuthenticationRequired)

	require.NoError(t, v.Unlock())
	assert.True(t, v.IsUnlocked())

	sealed, err := v.L2Encrypt([]byte("John"))
	require.NoError(t, err)
	plain, err := v.L2Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "John", string(plain))

	v.Lock()
	assert.False(t, v.IsUnlocked())
	_, err = v.L2Decrypt(sealed)
	assert.ErrorIs(t, err, securevault.ErrAuthenticationRequired)

	// unlocking again gives access to previously written data
	require.NoError(t, v.Unlock())
	plain, err = v.L2Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "John", string(plain))
}

type countingCrypto struct {
	securevault.CryptoProvider
	derivations int
}

func (c *countingCrypto) DeriveKeyFromPassword(password, salt []byte) []byte {
	c.derivations++
	return c.CryptoProvider.DeriveKeyFromPassword(password, salt)
}

func TestVault_WrappingKeyDerivedOncePerUnlock(t *testing.T) {
	ks := securevault.NewKeyStoreProvider(keyring.NewArrayKeyring(nil))
	crypto := &countingCrypto{CryptoProvider: newTestCrypto()}
	v := securevault.NewVault(crypto, ks)
	require.NoError(t, v.Bootstrap())
	bootstrapped := crypto.derivations

	require.NoError(t, v.Unlock())
	assert.Equal(t, bootstrapped, crypto.derivations, "unlock alone derives nothing")

	var sealed []byte
	for _, value := range []string{"John", "Doe", "Austin"} {
		var err error
		sealed, err = v.L2Encrypt([]byte(value))
		require.NoError(t, err)
	}
	_, err := v.L2Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, bootstrapped+1, crypto.derivations)

	// lock drops the wrapping key, the next unlock derives it again
	v.Lock()
	require.NoError(t, v.Unlock())
	plain, err := v.L2Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "Austin", string(plain))
	assert.Equal(t, bootstrapped+2, crypto.derivations)
}

func TestVault_L2EncryptIsDeterministic(t *testing.T) {
	v, _ := newTestVault(t)
	require.NoError(t, v.Unlock())

	a, err := v.L2Encrypt([]byte("Doe"))
	require.NoError(t, err)
	b, err := v.L2Encrypt([]byte("Doe"))
	require.NoError(t, err)
	c, err := v.L2Encrypt([]byte("Roe"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotContains(t, string(a), "Doe")
}

func TestVault_MissingL2Key(t *testing.T) {
	ks := securevault.NewKeyStoreProvider(keyring.NewArrayKeyring(nil))
	require.NoError(t, ks.StoreGeneratedPassword([]byte("password")))

	v := securevault.NewVault(newTestCrypto(), ks)
	require.NoError(t, v.Unlock())

	_, err := v.L2Encrypt([]byte("data"))
	assert.ErrorIs(t, err, securevault.ErrMissingL2Key)
}

func TestVault_UnlockWithoutPassword(t *testing.T) {
	ks := securevault.NewKeyStoreProvider(keyring.NewArrayKeyring(nil))
	v := securevault.NewVault(newTestCrypto(), ks)

	assert.ErrorIs(t, v.Unlock(), securevault.ErrMissingGeneratedPassword)
	assert.False(t, v.IsUnlocked())
}

func TestVault_L1(t *testing.T) {
	v, _ := newTestVault(t)

	// L1 does not need the vault unlocked
	sealed, err := v.L1Encrypt([]byte("1"))
	require.NoError(t, err)
	plain, err := v.L1Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "1", string(plain))
}

func TestVault_Reset(t *testing.T) {
	v, ks := newTestVault(t)
	require.NoError(t, v.Unlock())

	require.NoError(t, v.Reset())
	assert.False(t, v.IsUnlocked())

	l1, err := ks.L1Key()
	require.NoError(t, err)
	assert.Nil(t, l1)
	_, err = v.L1Encrypt([]byte("x"))
	assert.ErrorIs(t, err, securevault.ErrMissingL1Key)

	// a fresh bootstrap creates a new hierarchy
	require.NoError(t, v.Bootstrap())
	require.NoError(t, v.Unlock())
	_, err = v.L2Encrypt([]byte("x"))
	require.NoError(t, err)
}
