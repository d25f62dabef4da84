package securevault

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/logger"
)

// Vault is the two-tier key hierarchy protecting the database.
//
// The L1 key lives in the keychain in the clear and protects low-sensitivity values.
// The L2 key is stored wrapped by a key derived from the generated password, so L2 operations
// need the vault unlocked. The derived wrapping key is kept until Lock since argon2id is far too
// slow to run per field; the unwrapped L2 key itself never outlives a single call.
type Vault struct {
	crypto   CryptoProvider
	keystore KeyStoreProvider

	mu       sync.Mutex
	password []byte
	// wrapped L2 item and the key derived for its salt, derived once per unlock
	wrappedL2 []byte
	kek       []byte
}

// NewVault creates a locked vault
func NewVault(crypto CryptoProvider, keystore KeyStoreProvider) *Vault {
	return &Vault{crypto: crypto, keystore: keystore}
}

// Bootstrap creates the keychain items that do not exist yet
func (v *Vault) Bootstrap() error {
	l1, err := v.keystore.L1Key()
	if err != nil {
		return err
	}
	if l1 == nil {
		l1, err = v.crypto.GenerateSecretKey()
		if err != nil {
			return err
		}
		if err := v.keystore.StoreL1Key(l1); err != nil {
			return err
		}
		logger.Info("Created vault L1 key")
	}
	zero(l1)

	password, err := v.keystore.GeneratedPassword()
	if err != nil {
		return err
	}
	wrapped, err := v.keystore.EncryptedL2Key()
	if err != nil {
		return err
	}

	switch {
	case wrapped != nil && password == nil:
		// the L2 key cannot be unwrapped any more
		return fmt.Errorf("cannot bootstrap vault: %w", ErrMissingGeneratedPassword)
	case wrapped != nil:
		zero(password)
		return nil
	}

	if password == nil {
		password, err = v.crypto.GeneratePassword()
		if err != nil {
			return err
		}
		if err := v.keystore.StoreGeneratedPassword(password); err != nil {
			return err
		}
		logger.Info("Created vault generated password")
	}
	defer zero(password)

	l2, err := v.crypto.GenerateSecretKey()
	if err != nil {
		return err
	}
	defer zero(l2)

	wrapped, err = v.wrap(l2, password)
	if err != nil {
		return err
	}
	if err := v.keystore.StoreEncryptedL2Key(wrapped); err != nil {
		return err
	}
	logger.Info("Created vault L2 key", zap.Int("wrapped_length", len(wrapped)))
	return nil
}

// Unlock loads the generated password so L2 operations can run
func (v *Vault) Unlock() error {
	password, err := v.keystore.GeneratedPassword()
	if err != nil {
		return err
	}
	if password == nil {
		return ErrMissingGeneratedPassword
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.wipe()
	v.password = password
	return nil
}

// Lock wipes every piece of key material held in memory
func (v *Vault) Lock() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.wipe()
}

// IsUnlocked reports whether L2 operations are possible
func (v *Vault) IsUnlocked() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.password != nil
}

// Reset deletes all key material, locally and in the keychain
func (v *Vault) Reset() error {
	v.Lock()
	return v.keystore.DeleteAll()
}

// L1Encrypt encrypts data with the L1 key
func (v *Vault) L1Encrypt(data []byte) ([]byte, error) {
	key, err := v.l1Key()
	if err != nil {
		return nil, err
	}
	defer zero(key)
	return v.crypto.Encrypt(data, key)
}

// L1Decrypt decrypts data encrypted with L1Encrypt
func (v *Vault) L1Decrypt(data []byte) ([]byte, error) {
	key, err := v.l1Key()
	if err != nil {
		return nil, err
	}
	defer zero(key)
	return v.crypto.Decrypt(data, key)
}

// L2Encrypt encrypts data with the L2 key.
// Encryption is deterministic so equal values produce equal ciphertexts.
func (v *Vault) L2Encrypt(data []byte) ([]byte, error) {
	key, err := v.l2Key()
	if err != nil {
		return nil, err
	}
	defer zero(key)
	return v.crypto.EncryptDeterministic(data, key)
}

// L2Decrypt decrypts data encrypted with L2Encrypt
func (v *Vault) L2Decrypt(data []byte) ([]byte, error) {
	key, err := v.l2Key()
	if err != nil {
		return nil, err
	}
	defer zero(key)
	return v.crypto.Decrypt(data, key)
}

func (v *Vault) l1Key() ([]byte, error) {
	key, err := v.keystore.L1Key()
	if err != nil {
		return nil, err
	}
	if key == nil {
		return nil, ErrMissingL1Key
	}
	return key, nil
}

// l2Key returns a fresh copy of the unwrapped L2 key, the caller zeroes it
func (v *Vault) l2Key() ([]byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.password == nil {
		return nil, ErrAuthenticationRequired
	}

	if v.wrappedL2 == nil {
		wrapped, err := v.keystore.EncryptedL2Key()
		if err != nil {
			return nil, err
		}
		if wrapped == nil {
			return nil, ErrMissingL2Key
		}
		if len(wrapped) <= SaltLength {
			return nil, fmt.Errorf("wrapped l2 key: %w", ErrInvalidCiphertext)
		}
		v.wrappedL2 = wrapped
		v.kek = v.crypto.DeriveKeyFromPassword(v.password, wrapped[:SaltLength])
	}

	key, err := v.crypto.Decrypt(v.wrappedL2[SaltLength:], v.kek)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap l2 key: %w", err)
	}
	return key, nil
}

// wrap encrypts the L2 key under a password-derived key, prefixing the salt
func (v *Vault) wrap(l2, password []byte) ([]byte, error) {
	salt, err := v.crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	kek := v.crypto.DeriveKeyFromPassword(password, salt)
	defer zero(kek)

	sealed, err := v.crypto.Encrypt(l2, kek)
	if err != nil {
		return nil, err
	}
	return append(salt, sealed...), nil
}

// wipe must be called with mu held
func (v *Vault) wipe() {
	zero(v.password)
	zero(v.kek)
	v.password = nil
	v.kek = nil
	v.wrappedL2 = nil
}
