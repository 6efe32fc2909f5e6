package textbook

import "context"

// KeyStrings holds both halves of a generated key pair in text form
type KeyStrings struct {
	PublicKey  string
	PrivateKey string
}

// Parameters describes the deployment-wide settings callers need to size their input
type Parameters struct {
	KeySizeBits      int
	MaxSourceSize    int
	MaxKeyStringSize int
	PublicExponent   int
}

// KeyGenerationService generates key pairs and returns them as key strings.
type KeyGenerationService interface {
	// GenerateKeys returns a new (public, private) key string pair
	GenerateKeys(ctx context.Context) (*KeyStrings, error)
}

// CipherService is the string level encrypt/decrypt surface offered to host callers.
type CipherService interface {
	// Encrypt encrypts plaintext with a key string and returns the base-36 ciphertext.
	// Plaintext of MaxSourceSize bytes or more is rejected with ErrValue.
	Encrypt(ctx context.Context, plaintext, key string) (string, error)

	// Decrypt decrypts a base-36 ciphertext with a key string.
	Decrypt(ctx context.Context, ciphertext, key string) (string, error)

	// Parameters returns the sizes the service enforces
	Parameters() Parameters
}
