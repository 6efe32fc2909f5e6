package textbook

import (
	"io"
	"math/big"
)

// PrimeGenerator produces probable primes.
type PrimeGenerator interface {
	// Generate returns an odd probable prime with exactly bits significant bits,
	// drawing its starting point from rng.
	Generate(bits int, rng io.Reader) (*big.Int, error)
}

// KeyGenerator derives RSA key pairs.
type KeyGenerator interface {
	// Generate creates a key pair with a keySizeBits modulus and public exponent 65537.
	Generate(keySizeBits int, rng io.Reader) (*KeyPair, error)
}

// Codec converts fixed-size byte blocks to and from integers (big-endian).
type Codec interface {
	// Encode interprets data as a big-endian unsigned integer.
	Encode(data []byte) *big.Int

	// Decode renders number into exactly length bytes, zero padded on the left.
	Decode(number *big.Int, length int) ([]byte, error)
}

// Cipher is the raw RSA transform of a single block.
type Cipher interface {
	// MaxSourceSize returns the largest message accepted by Encrypt.
	MaxSourceSize() int

	// Encrypt computes message^e mod n and returns it in base 36.
	Encrypt(message []byte, key Key) (string, error)

	// Decrypt computes ciphertext^d mod n and returns the message without its block padding.
	Decrypt(ciphertext string, key Key) ([]byte, error)

	// DecryptBlock computes ciphertext^d mod n and returns the whole MaxSourceSize block.
	DecryptBlock(ciphertext string, key Key) ([]byte, error)
}

// KeyFormat converts keys to and from their "<exponent> <modulus>" text form.
type KeyFormat interface {
	Render(key Key) string
	Parse(text string) (Key, error)
}
