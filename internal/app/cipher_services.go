package app

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
)

// cipherService implements the CipherService interface
type cipherService struct {
	keySizeBits int
	cipher      textbook.Cipher
	keyFormat   textbook.KeyFormat
	logger      logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(
	keySizeBits int,
	cipher textbook.Cipher,
	keyFormat textbook.KeyFormat,
	logger logger.Logger,
) (textbook.CipherService, error) {
	if err := textbook.ValidateKeySize(keySizeBits); err != nil {
		return nil, err
	}
	if cipher == nil || keyFormat == nil {
		return nil, fmt.Errorf("cipher and key format are required")
	}
	return &cipherService{
		keySizeBits: keySizeBits,
		cipher:      cipher,
		keyFormat:   keyFormat,
		logger:      logger,
	}, nil
}

// Parameters returns the sizes derived from the configured key size
func (s *cipherService) Parameters() textbook.Parameters {
	return textbook.Parameters{
		KeySizeBits:      s.keySizeBits,
		MaxSourceSize:    s.cipher.MaxSourceSize(),
		MaxKeyStringSize: textbook.MaxKeyStringSize(s.keySizeBits),
		PublicExponent:   textbook.PublicExponent,
	}
}

// Encrypt rejects plaintexts of MaxSourceSize bytes or more, one byte stricter than
// the cipher itself: the last byte of a block is reserved for the string terminator.
func (s *cipherService) Encrypt(ctx context.Context, plaintext, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(plaintext) >= s.cipher.MaxSourceSize() {
		return "", fmt.Errorf("%w: %w: source is too long", textbook.ErrValue, textbook.ErrMessageTooLong)
	}
	parsedKey, err := s.parseKey(key)
	if err != nil {
		return "", err
	}

	ciphertext, err := s.cipher.Encrypt([]byte(plaintext), parsedKey)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}

	s.logger.Debug("Encrypted ", len(plaintext), " bytes of plaintext")
	return ciphertext, nil
}

// Decrypt returns the decrypted text up to its first NUL byte.
func (s *cipherService) Decrypt(ctx context.Context, ciphertext, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(ciphertext) > textbook.MaxNumberDigits(s.keySizeBits) {
		return "", fmt.Errorf("%w: %w: ciphertext is too long", textbook.ErrValue, textbook.ErrInvalidCiphertext)
	}
	parsedKey, err := s.parseKey(key)
	if err != nil {
		return "", err
	}

	plaintext, err := s.cipher.Decrypt(ciphertext, parsedKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}
	if i := bytes.IndexByte(plaintext, 0); i >= 0 {
		plaintext = plaintext[:i]
	}

	s.logger.Debug("Decrypted ", len(plaintext), " bytes of plaintext")
	return string(plaintext), nil
}

func (s *cipherService) parseKey(key string) (textbook.Key, error) {
	if len(key) >= textbook.MaxKeyStringSize(s.keySizeBits) {
		return textbook.Key{}, fmt.Errorf("%w: %w: key is too long", textbook.ErrValue, textbook.ErrKeyTooLong)
	}
	parsedKey, err := s.keyFormat.Parse(key)
	if err != nil {
		return textbook.Key{}, fmt.Errorf("%w: %w", textbook.ErrValue, err)
	}
	return parsedKey, nil
}
