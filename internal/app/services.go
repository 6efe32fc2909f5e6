package app

import (
	"fmt"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/infrastructure/cryptography"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/config"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/randsource"
)

// Services holds the binding services shared by the CLI and the REST API
type Services struct {
	KeyGeneration textbook.KeyGenerationService
	Cipher        textbook.CipherService
}

// NewServices wires the cryptographic processors and the binding services for settings
func NewServices(settings *config.RSASettings, log logger.Logger) (*Services, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid RSA settings: %w", err)
	}

	randSource, err := randsource.New(settings.SeedSource, settings.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to create random source: %w", err)
	}
	if settings.SeedSource != config.SeedSourceCrypto {
		log.Warn("Seed source ", settings.SeedSource, " is not cryptographically secure, generated keys are for demonstration only")
	}

	primeGenerator, err := cryptography.NewPrimeGenerator(settings.PrimalityRounds, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(primeGenerator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	cipher, err := cryptography.NewCipher(settings.KeySizeBits, cryptography.NewBlockCodec(), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	keyFormat := cryptography.NewKeyFormat()

	keyGenerationService, err := NewKeyGenerationService(settings.KeySizeBits, keyGenerator, keyFormat, randSource, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generation service: %w", err)
	}

	cipherService, err := NewCipherService(settings.KeySizeBits, cipher, keyFormat, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher service: %w", err)
	}

	log.Info("Services initialized for ", settings.KeySizeBits, "-bit keys")
	return &Services{
		KeyGeneration: keyGenerationService,
		Cipher:        cipherService,
	}, nil
}
