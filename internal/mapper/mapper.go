package mapper

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/brokerguard/dbp/internal/adapter"
	"github.com/brokerguard/dbp/internal/securevault"
)

// ErrInvalidInt32 is returned when an encoded integer does not have 4 bytes
var ErrInvalidInt32 = errors.New("encoded int32 must be 4 bytes")

// EncryptionMechanism encrypts and decrypts column values
type EncryptionMechanism struct {
	Encrypt func(data []byte) ([]byte, error)
	Decrypt func(data []byte) ([]byte, error)
}

// VaultMechanism encrypts columns with the L2 key of the vault
func VaultMechanism(v *securevault.Vault) EncryptionMechanism {
	return EncryptionMechanism{
		Encrypt: v.L2Encrypt,
		Decrypt: v.L2Decrypt,
	}
}

// Mapper converts between domain models and encrypted database rows
type Mapper struct {
	mechanism EncryptionMechanism
	json      adapter.JSON
}

// NewMapper creates a new mapper
func NewMapper(mechanism EncryptionMechanism, json adapter.JSON) *Mapper {
	return &Mapper{mechanism: mechanism, json: json}
}

func (m *Mapper) encrypt(s string) ([]byte, error) {
	ct, err := m.mechanism.Encrypt([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt value: %w", err)
	}
	return ct, nil
}

func (m *Mapper) decrypt(b []byte) (string, error) {
	pt, err := m.mechanism.Decrypt(b)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt value: %w", err)
	}
	return string(pt), nil
}

// encryptOptional returns the zero-length absent marker for nil
func (m *Mapper) encryptOptional(s *string) ([]byte, error) {
	if s == nil {
		return []byte{}, nil
	}
	return m.encrypt(*s)
}

func (m *Mapper) decryptOptional(b []byte) (*string, error) {
	if len(b) == 0 {
		return nil, nil
	}
	s, err := m.decrypt(b)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (m *Mapper) encryptInt(v int) ([]byte, error) {
	ct, err := m.mechanism.Encrypt(EncodeInt32(v))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt value: %w", err)
	}
	return ct, nil
}

func (m *Mapper) decryptInt(b []byte) (int, error) {
	pt, err := m.mechanism.Decrypt(b)
	if err != nil {
		return 0, fmt.Errorf("failed to decrypt value: %w", err)
	}
	return DecodeInt32(pt)
}

// EncodeInt32 encodes v as 4 big-endian bytes
func EncodeInt32(v int) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, uint32(int32(v)))
	return b
}

// DecodeInt32 decodes 4 big-endian bytes
func DecodeInt32(b []byte) (int, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidInt32, len(b))
	}
	return int(int32(binary.BigEndian.Uint32(b))), nil
}
