package securevault

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired is returned by L2 operations while the vault is locked
	ErrAuthenticationRequired = errors.New("vault is locked: authentication required")

	// ErrMissingL1Key is returned when the L1 key item is absent from the keychain
	ErrMissingL1Key = errors.New("l1 key is missing from the keychain")

	// ErrMissingL2Key is returned when the wrapped L2 key item is absent from the keychain
	ErrMissingL2Key = errors.New("l2 key is missing from the keychain")

	// ErrMissingGeneratedPassword is returned when unlocking without a generated password item
	ErrMissingGeneratedPassword = errors.New("generated password is missing from the keychain")

	// ErrInvalidCiphertext is returned when data is too short or fails authentication
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrInvalidKeyLength is returned when a key is not 32 bytes long
	ErrInvalidKeyLength = errors.New("invalid key length")
)

// KeystoreError is a keychain failure, carrying the item involved and the underlying backend error
type KeystoreError struct {
	Op    string
	Field string
	Err   error
}

func (e *KeystoreError) Error() string {
	return fmt.Sprintf("keystore %s %s: %v", e.Op, e.Field, e.Err)
}

func (e *KeystoreError) Unwrap() error {
	return e.Err
}
