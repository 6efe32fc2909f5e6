package textbook

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// Key is one usable half of a key pair: an exponent and the shared modulus.
type Key struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// NewKey copies exponent and modulus into a new Key
func NewKey(exponent, modulus *big.Int) Key {
	return Key{
		Exponent: new(big.Int).Set(exponent),
		Modulus:  new(big.Int).Set(modulus),
	}
}

// Validate checks that the key can drive modular exponentiation
func (k Key) Validate() error {
	if k.Exponent == nil || k.Modulus == nil {
		return fmt.Errorf("%w: exponent and modulus are required", ErrMalformedKey)
	}
	if k.Exponent.Sign() <= 0 {
		return fmt.Errorf("%w: exponent must be positive", ErrMalformedKey)
	}
	if k.Modulus.Cmp(one) <= 0 {
		return fmt.Errorf("%w: modulus must be greater than one", ErrMalformedKey)
	}
	return nil
}

// Equal reports whether both keys hold the same integers
func (k Key) Equal(other Key) bool {
	return cmpInt(k.Exponent, other.Exponent) && cmpInt(k.Modulus, other.Modulus)
}

func cmpInt(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

// KeyPair is the result of key generation. It is not modified after creation.
type KeyPair struct {
	KeySizeBits     int
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Modulus         *big.Int
}

// PublicKey returns the (e, n) half of the pair
func (kp *KeyPair) PublicKey() Key {
	return NewKey(kp.PublicExponent, kp.Modulus)
}

// PrivateKey returns the (d, n) half of the pair
func (kp *KeyPair) PrivateKey() Key {
	return NewKey(kp.PrivateExponent, kp.Modulus)
}

// maxNumber returns 2^bits - 1
func maxNumber(bits int) *big.Int {
	n := new(big.Int).Lsh(one, uint(bits))
	return n.Sub(n, one)
}
