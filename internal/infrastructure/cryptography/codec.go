package cryptography

import (
	"fmt"
	"math/big"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
)

// blockCodec implements textbook.Codec with big-endian byte order
type blockCodec struct{}

// NewBlockCodec creates a big-endian block codec
func NewBlockCodec() textbook.Codec {
	return &blockCodec{}
}

// Encode interprets data as a big-endian unsigned integer. Length limits are the caller's concern.
func (c *blockCodec) Encode(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// Decode writes number into exactly length bytes, most significant byte first,
// padding with zeros on the left.
func (c *blockCodec) Decode(number *big.Int, length int) ([]byte, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: block length must not be negative, got %d", textbook.ErrInvalidParameter, length)
	}
	if number == nil || number.Sign() < 0 {
		return nil, fmt.Errorf("%w: only non-negative numbers can be decoded", textbook.ErrInvalidParameter)
	}
	if size := (number.BitLen() + 7) / 8; size > length {
		return nil, fmt.Errorf("%w: number needs %d bytes, block holds %d", textbook.ErrInvalidParameter, size, length)
	}

	block := make([]byte, length)
	number.FillBytes(block)
	return block, nil
}
