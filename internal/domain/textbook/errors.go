package textbook

import "errors"

var (
	// ErrInvalidParameter is returned for unusable bit lengths and buffer sizes
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNotInvertible is returned when the public exponent has no inverse modulo the totient
	ErrNotInvertible = errors.New("public exponent is not invertible")

	// ErrMessageTooLong is returned when a message does not fit into one block
	ErrMessageTooLong = errors.New("message too long")

	// ErrInvalidCiphertext is returned for malformed or out of range ciphertexts
	ErrInvalidCiphertext = errors.New("invalid ciphertext")

	// ErrMalformedKey is returned when a key string or key value cannot be used
	ErrMalformedKey = errors.New("malformed key")

	// ErrKeyTooLong is returned when a key string exceeds the configured key size
	ErrKeyTooLong = errors.New("key too long")

	// ErrValue marks argument errors raised at the string boundary, before the core is called
	ErrValue = errors.New("value error")
)
