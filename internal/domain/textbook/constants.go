package textbook

// PublicExponent is the fixed public exponent e = 2^16 + 1
const PublicExponent = 65537

// KeyNumberBase is the radix used for keys and ciphertexts in text form
const KeyNumberBase = 36

// DefaultKeySizeBits is the modulus size used when nothing else is configured
const DefaultKeySizeBits = 1024

// MinKeySizeBits is the smallest supported modulus size
const MinKeySizeBits = 32

// DefaultPrimalityRounds is the number of Miller-Rabin rounds run on a prime candidate
const DefaultPrimalityRounds = 1000

// sourceSizeReserve is the number of bytes a block keeps below the modulus byte length
const sourceSizeReserve = 2

// MaxSourceSize returns the largest message, in bytes, that fits into one block
// of a keySizeBits modulus.
func MaxSourceSize(keySizeBits int) int {
	return keySizeBits/8 - sourceSizeReserve
}

// MaxKeyStringSize returns the bound a key string of a keySizeBits key stays below:
// two base-36 numbers of at most keySizeBits bits, a separator and a terminator.
func MaxKeyStringSize(keySizeBits int) int {
	return 2*MaxNumberDigits(keySizeBits) + 2
}

// MaxNumberDigits returns the number of base-36 digits of 2^keySizeBits - 1.
func MaxNumberDigits(keySizeBits int) int {
	if keySizeBits <= 0 {
		return 0
	}
	return len(maxNumber(keySizeBits).Text(KeyNumberBase))
}

// MaxKeySizeBits is the largest supported modulus size
const MaxKeySizeBits = 16384
