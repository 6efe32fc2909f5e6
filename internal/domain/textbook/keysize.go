package textbook

import "fmt"

// ValidateKeySize checks that keySizeBits splits into two equal whole-byte primes
// and leaves room for at least one message byte.
func ValidateKeySize(keySizeBits int) error {
	if keySizeBits < MinKeySizeBits || keySizeBits > MaxKeySizeBits {
		return fmt.Errorf("%w: key size must be between %d and %d bits, got %d",
			ErrInvalidParameter, MinKeySizeBits, MaxKeySizeBits, keySizeBits)
	}
	if keySizeBits%16 != 0 {
		return fmt.Errorf("%w: key size must be a multiple of 16 bits, got %d", ErrInvalidParameter, keySizeBits)
	}
	return nil
}
