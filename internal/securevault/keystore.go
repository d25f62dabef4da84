package securevault

import (
	"errors"

	"github.com/99designs/keyring"

	"github.com/brokerguard/dbp/internal/adapter"
)

// Keychain item keys
const (
	GeneratedPasswordItem = "generated-password"
	L1KeyItem             = "l1-key"
	L2KeyItem             = "l2-key"
)

// KeyStoreProvider persists the vault's key material in the platform keychain.
// Getters return (nil, nil) when the item does not exist.
//
//go:generate mockgen -source=keystore.go -destination=../mocks/keystore_provider.go -package=mocks -mock_names=KeyStoreProvider=MockKeyStoreProvider
type KeyStoreProvider interface {
	GeneratedPassword() ([]byte, error)
	StoreGeneratedPassword(password []byte) error
	L1Key() ([]byte, error)
	StoreL1Key(key []byte) error
	EncryptedL2Key() ([]byte, error)
	StoreEncryptedL2Key(key []byte) error
	DeleteAll() error
}

type keyStoreProvider struct {
	keyring adapter.Keyring
}

// NewKeyStoreProvider creates a keystore backed by the given keyring
func NewKeyStoreProvider(kr adapter.Keyring) KeyStoreProvider {
	return &keyStoreProvider{keyring: kr}
}

func (k *keyStoreProvider) GeneratedPassword() ([]byte, error) {
	return k.read(GeneratedPasswordItem)
}

func (k *keyStoreProvider) StoreGeneratedPassword(password []byte) error {
	return k.write(GeneratedPasswordItem, password, "DBP generated password")
}

func (k *keyStoreProvider) L1Key() ([]byte, error) {
	return k.read(L1KeyItem)
}

func (k *keyStoreProvider) StoreL1Key(key []byte) error {
	return k.write(L1KeyItem, key, "DBP L1 key")
}

func (k *keyStoreProvider) EncryptedL2Key() ([]byte, error) {
	return k.read(L2KeyItem)
}

func (k *keyStoreProvider) StoreEncryptedL2Key(key []byte) error {
	return k.write(L2KeyItem, key, "DBP L2 key")
}

// DeleteAll removes every vault item, ignoring items that are already gone
func (k *keyStoreProvider) DeleteAll() error {
	var errs []error
	for _, item := range []string{GeneratedPasswordItem, L1KeyItem, L2KeyItem} {
		if err := k.keyring.Remove(item); err != nil && !isNotFound(err) {
			errs = append(errs, &KeystoreError{Op: "delete", Field: item, Err: err})
		}
	}
	return errors.Join(errs...)
}

func (k *keyStoreProvider) read(field string) ([]byte, error) {
	item, err := k.keyring.Get(field)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, &KeystoreError{Op: "read", Field: field, Err: err}
	}
	// callers zero key material they are done with, so never hand out the backend's buffer
	return append([]byte(nil), item.Data...), nil
}

func (k *keyStoreProvider) write(field string, data []byte, label string) error {
	err := k.keyring.Set(keyring.Item{
		Key:                         field,
		Data:                        append([]byte(nil), data...),
		Label:                       label,
		KeychainNotTrustApplication: false,
		KeychainNotSynchronizable:   true,
	})
	if err != nil {
		return &KeystoreError{Op: "write", Field: field, Err: err}
	}
	return nil
}

func isNotFound(err error) bool {
	return errors.Is(err, keyring.ErrKeyNotFound)
}
