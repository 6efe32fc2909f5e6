package cryptography

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
)

// rawCipher implements textbook.Cipher: c = m^e mod n on a single block, no padding.
// Encryption is deterministic and malleable.
type rawCipher struct {
	keySizeBits int
	codec       textbook.Codec
	logger      logger.Logger
}

// NewCipher creates a cipher for blocks of a keySizeBits modulus
func NewCipher(keySizeBits int, codec textbook.Codec, logger logger.Logger) (textbook.Cipher, error) {
	if err := textbook.ValidateKeySize(keySizeBits); err != nil {
		return nil, err
	}
	if codec == nil {
		return nil, fmt.Errorf("codec cannot be nil")
	}
	return &rawCipher{
		keySizeBits: keySizeBits,
		codec:       codec,
		logger:      logger,
	}, nil
}

// MaxSourceSize returns keySizeBits/8 - 2
func (c *rawCipher) MaxSourceSize() int {
	return textbook.MaxSourceSize(c.keySizeBits)
}

// Encrypt rejects messages longer than MaxSourceSize before any arithmetic,
// then returns message^e mod n in base 36.
func (c *rawCipher) Encrypt(message []byte, key textbook.Key) (string, error) {
	if len(message) > c.MaxSourceSize() {
		return "", fmt.Errorf("%w: %d bytes, at most %d fit into a block", textbook.ErrMessageTooLong, len(message), c.MaxSourceSize())
	}
	if err := key.Validate(); err != nil {
		return "", err
	}

	number := c.codec.Encode(message)
	if number.Cmp(key.Modulus) >= 0 {
		return "", fmt.Errorf("%w: message value is not below the modulus", textbook.ErrMessageTooLong)
	}

	number.Exp(number, key.Exponent, key.Modulus)

	c.logger.Debug("Encrypted ", len(message), " bytes")
	return number.Text(textbook.KeyNumberBase), nil
}

// Decrypt returns the decrypted block without its leading zero padding. A
// message that itself started with zero bytes comes back without them.
func (c *rawCipher) Decrypt(ciphertext string, key textbook.Key) ([]byte, error) {
	block, err := c.DecryptBlock(ciphertext, key)
	if err != nil {
		return nil, err
	}
	return bytes.TrimLeft(block, "\x00"), nil
}

// DecryptBlock returns ciphertext^d mod n as a MaxSourceSize byte block.
func (c *rawCipher) DecryptBlock(ciphertext string, key textbook.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	number, err := c.parseCiphertext(ciphertext, key.Modulus)
	if err != nil {
		return nil, err
	}

	number.Exp(number, key.Exponent, key.Modulus)

	block, err := c.codec.Decode(number, c.MaxSourceSize())
	if err != nil {
		return nil, fmt.Errorf("%w: decrypted value does not fit into a block: %w", textbook.ErrInvalidCiphertext, err)
	}

	c.logger.Debug("Decrypted a ", len(block), "-byte block")
	return block, nil
}

func (c *rawCipher) parseCiphertext(ciphertext string, modulus *big.Int) (*big.Int, error) {
	number, ok := parseNumber(ciphertext)
	if !ok {
		return nil, fmt.Errorf("%w: not a base-36 number", textbook.ErrInvalidCiphertext)
	}
	if number.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: value is not below the modulus", textbook.ErrInvalidCiphertext)
	}
	return number, nil
}
