package adapter

import (
	"github.com/99designs/keyring"
)

// Keyring defines the subset of keychain operations used by the keystore.
// keyring.ArrayKeyring satisfies it, which is what tests use.
//
//go:generate mockgen -source=keyring.go -destination=../mocks/keyring.go -package=mocks -mock_names=Keyring=MockKeyring
type Keyring interface {
	Get(key string) (keyring.Item, error)
	Set(item keyring.Item) error
	Remove(key string) error
}

// KeyringConfig describes how to open the platform keychain
type KeyringConfig struct {
	ServiceName  string
	Backends     []string
	FileDir      string
	FilePassword string
}

// OpenKeyring opens the platform keychain for the given service.
// Items are never synchronized to other devices.
func OpenKeyring(cfg KeyringConfig) (Keyring, error) {
	backends := make([]keyring.BackendType, 0, len(cfg.Backends))
	for _, b := range cfg.Backends {
		backends = append(backends, keyring.BackendType(b))
	}

	return keyring.Open(keyring.Config{
		AllowedBackends:                backends,
		ServiceName:                    cfg.ServiceName,
		KeychainName:                   "login",
		KeychainTrustApplication:       true,
		KeychainSynchronizable:         false,
		KeychainAccessibleWhenUnlocked: false,
		FileDir:                        cfg.FileDir,
		FilePasswordFunc:               keyring.FixedStringPrompt(cfg.FilePassword),
	})
}
