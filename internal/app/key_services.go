package app

import (
	"context"
	"fmt"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/randsource"
)

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	keySizeBits  int
	keyGenerator textbook.KeyGenerator
	keyFormat    textbook.KeyFormat
	randSource   randsource.Source
	logger       logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(
	keySizeBits int,
	keyGenerator textbook.KeyGenerator,
	keyFormat textbook.KeyFormat,
	randSource randsource.Source,
	logger logger.Logger,
) (textbook.KeyGenerationService, error) {
	if err := textbook.ValidateKeySize(keySizeBits); err != nil {
		return nil, err
	}
	if keyGenerator == nil || keyFormat == nil || randSource == nil {
		return nil, fmt.Errorf("key generator, key format and random source are required")
	}
	return &keyGenerationService{
		keySizeBits:  keySizeBits,
		keyGenerator: keyGenerator,
		keyFormat:    keyFormat,
		randSource:   randSource,
		logger:       logger,
	}, nil
}

// GenerateKeys generates a key pair with a generator of its own and renders both halves.
// Generation cannot be interrupted; ctx is only checked before it starts.
func (s *keyGenerationService) GenerateKeys(ctx context.Context) (*textbook.KeyStrings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	keyPair, err := s.keyGenerator.Generate(s.keySizeBits, s.randSource.New())
	if err != nil {
		return nil, fmt.Errorf("failed to generate keys: %w", err)
	}

	return &textbook.KeyStrings{
		PublicKey:  s.keyFormat.Render(keyPair.PublicKey()),
		PrivateKey: s.keyFormat.Render(keyPair.PrivateKey()),
	}, nil
}
