package gdpr

import (
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"
)

// FieldEncryptor encrypts and decrypts single field values. Both Encryptor
// and RotatingEncryptor satisfy it.
type FieldEncryptor interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// EncryptionService provides field-level encryption for the application.
// It wraps a FieldEncryptor and owns the key lifecycle at startup.
type EncryptionService struct {
	encryptor FieldEncryptor
	key       []byte
	generated bool
}

// NewEncryptionService creates a new encryption service.
//
// If key is empty, a fresh random key is generated and a warning is logged:
// the operator must persist the key (see KeyHex) or data encrypted during
// this run becomes unreadable after a restart.
//
// If key is non-empty, it must be a valid 64-character hex string encoding a
// 32-byte AES-256 key. An invalid key causes an error so the application
// refuses to start with a misconfigured key.
func NewEncryptionService(key string, logger zerolog.Logger) (*EncryptionService, error) {
	if key == "" {
		keyBytes, err := GenerateKey()
		if err != nil {
			return nil, fmt.Errorf("encryption service: %w", err)
		}
		enc, err := NewEncryptor(keyBytes)
		if err != nil {
			return nil, fmt.Errorf("encryption service: %w", err)
		}
		logger.Warn().Msg("ENCRYPTION_KEY is not set: generated an ephemeral key; persist it or encrypted fields are unreadable after restart")
		return &EncryptionService{
			encryptor: enc,
			key:       keyBytes,
			generated: true,
		}, nil
	}

	keyBytes, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("ENCRYPTION_KEY is not valid hex: %w", err)
	}

	if len(keyBytes) != KeySize {
		return nil, fmt.Errorf("ENCRYPTION_KEY must be %d bytes (%d hex chars), got %d bytes", KeySize, KeySize*2, len(keyBytes))
	}

	enc, err := NewEncryptor(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("create field encryptor: %w", err)
	}

	logger.Info().Msg("field-level encryption enabled")
	return &EncryptionService{
		encryptor: enc,
		key:       keyBytes,
	}, nil
}

// Encryptor returns the underlying FieldEncryptor. This is useful for passing
// the encryptor to components that accept a FieldEncryptor.
func (s *EncryptionService) Encryptor() FieldEncryptor {
	return s.encryptor
}

// EncryptField encrypts a single field value.
func (s *EncryptionService) EncryptField(value string) (string, error) {
	return s.encryptor.Encrypt(value)
}

// DecryptField decrypts a single field value.
func (s *EncryptionService) DecryptField(value string) (string, error) {
	return s.encryptor.Decrypt(value)
}

// KeyHex returns the active key as a hex string, for persisting a generated
// key to configuration.
func (s *EncryptionService) KeyHex() string {
	return hex.EncodeToString(s.key)
}

// KeyGenerated reports whether the service generated its own key because
// none was configured.
func (s *EncryptionService) KeyGenerated() bool {
	return s.generated
}
