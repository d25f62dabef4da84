package securevault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

const (
	// KeyLength is the size of every symmetric key in bytes (AES-256)
	KeyLength = 32
	// SaltLength is the size of the password derivation salt
	SaltLength = 16
	// passwordEntropy is the number of random bytes behind a generated password
	passwordEntropy = 32

	encryptionInfo = "dbp-vault-encryption-v1"
	nonceInfo      = "dbp-vault-nonce-v1"
)

// Argon2Params tunes the password-based key derivation
type Argon2Params struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2Params are the RFC 9106 second recommended parameters
var DefaultArgon2Params = Argon2Params{Time: 3, Memory: 64 * 1024, Threads: 4}

// CryptoProvider groups the cryptographic primitives of the vault
//
//go:generate mockgen -source=crypto.go -destination=../mocks/crypto_provider.go -package=mocks -mock_names=CryptoProvider=MockCryptoProvider
type CryptoProvider interface {
	// GenerateSecretKey returns a fresh random 256-bit key
	GenerateSecretKey() ([]byte, error)
	// GenerateSalt returns a fresh random salt for DeriveKeyFromPassword
	GenerateSalt() ([]byte, error)
	// GeneratePassword returns a random, printable password
	GeneratePassword() ([]byte, error)
	// DeriveKeyFromPassword stretches a password into a 256-bit key
	DeriveKeyFromPassword(password, salt []byte) []byte
	// Encrypt seals data with AES-256-GCM under a random nonce
	Encrypt(data, key []byte) ([]byte, error)
	// EncryptDeterministic seals data with AES-256-GCM under a nonce derived from the plaintext.
	// Equal plaintexts give equal ciphertexts, which lets encrypted columns take part in keys.
	EncryptDeterministic(data, key []byte) ([]byte, error)
	// Decrypt opens data sealed by either Encrypt variant
	Decrypt(data, key []byte) ([]byte, error)
}

type cryptoProvider struct {
	params Argon2Params
	rand   io.Reader
}

// NewCryptoProvider creates a crypto provider with the default argon2id parameters
func NewCryptoProvider() CryptoProvider {
	return NewCryptoProviderWithParams(DefaultArgon2Params)
}

// NewCryptoProviderWithParams creates a crypto provider with custom argon2id parameters
func NewCryptoProviderWithParams(params Argon2Params) CryptoProvider {
	return &cryptoProvider{params: params, rand: rand.Reader}
}

func (c *cryptoProvider) random(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(c.rand, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

func (c *cryptoProvider) GenerateSecretKey() ([]byte, error) {
	return c.random(KeyLength)
}

func (c *cryptoProvider) GenerateSalt() ([]byte, error) {
	return c.random(SaltLength)
}

func (c *cryptoProvider) GeneratePassword() ([]byte, error) {
	raw, err := c.random(passwordEntropy)
	if err != nil {
		return nil, err
	}
	defer zero(raw)

	password := make([]byte, base64.RawURLEncoding.EncodedLen(len(raw)))
	base64.RawURLEncoding.Encode(password, raw)
	return password, nil
}

func (c *cryptoProvider) DeriveKeyFromPassword(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, c.params.Time, c.params.Memory, c.params.Threads, KeyLength)
}

func (c *cryptoProvider) Encrypt(data, key []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	nonce, err := c.random(aead.NonceSize())
	if err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, data, nil), nil
}

func (c *cryptoProvider) EncryptDeterministic(data, key []byte) ([]byte, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKeyLength
	}
	encKey, err := subKey(key, encryptionInfo)
	if err != nil {
		return nil, err
	}
	defer zero(encKey)
	macKey, err := subKey(key, nonceInfo)
	if err != nil {
		return nil, err
	}
	defer zero(macKey)

	aead, err := newAEAD(encKey)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, macKey)
	mac.Write(data)
	nonce := mac.Sum(nil)[:aead.NonceSize()]

	// the key tag lets Decrypt tell the two layouts apart
	out := make([]byte, 0, 1+len(nonce)+len(data)+aead.Overhead())
	out = append(out, deterministicTag)
	out = append(out, nonce...)
	return aead.Seal(out, nonce, data, nil), nil
}

func (c *cryptoProvider) Decrypt(data, key []byte) ([]byte, error) {
	if len(data) > 0 && data[0] == deterministicTag && len(data) >= 1+gcmNonceSize+gcmTagSize {
		if plain, err := c.decryptDeterministic(data[1:], key); err == nil {
			return plain, nil
		}
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	if len(data) < aead.NonceSize()+aead.Overhead() {
		return nil, ErrInvalidCiphertext
	}
	nonce, sealed := data[:aead.NonceSize()], data[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	return plain, nil
}

func (c *cryptoProvider) decryptDeterministic(data, key []byte) ([]byte, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKeyLength
	}
	encKey, err := subKey(key, encryptionInfo)
	if err != nil {
		return nil, err
	}
	defer zero(encKey)

	aead, err := newAEAD(encKey)
	if err != nil {
		return nil, err
	}
	nonce, sealed := data[:aead.NonceSize()], data[aead.NonceSize():]
	plain, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	return plain, nil
}

const (
	deterministicTag byte = 0xd1
	gcmNonceSize          = 12
	gcmTagSize            = 16
)

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeyLength {
		return nil, ErrInvalidKeyLength
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func subKey(key []byte, info string) ([]byte, error) {
	out := make([]byte, KeyLength)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("failed to derive sub-key: %w", err)
	}
	return out, nil
}

// zero overwrites key material in place
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
