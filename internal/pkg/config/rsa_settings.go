package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/validators"
)

// Seed source constants
const (
	SeedSourceTime   = "time"
	SeedSourceFixed  = "fixed"
	SeedSourceCrypto = "crypto"
)

// RSASettings holds the build/deploy time parameters of key generation and the cipher
type RSASettings struct {
	KeySizeBits     int    `mapstructure:"key_size_bits" validate:"required,keysize"`
	PrimalityRounds int    `mapstructure:"primality_rounds" validate:"required,min=1,max=10000"`
	SeedSource      string `mapstructure:"seed_source" validate:"required,oneof=time fixed crypto"`
	Seed            int64  `mapstructure:"seed"`
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("keysize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register keysize validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	return nil
}
