package cryptography

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
)

var one = big.NewInt(1)

// keyGenerator implements textbook.KeyGenerator
type keyGenerator struct {
	primes textbook.PrimeGenerator
	logger logger.Logger
}

// NewKeyGenerator creates a key generator drawing its primes from primes
func NewKeyGenerator(primes textbook.PrimeGenerator, logger logger.Logger) (textbook.KeyGenerator, error) {
	if primes == nil {
		return nil, fmt.Errorf("prime generator cannot be nil")
	}
	return &keyGenerator{
		primes: primes,
		logger: logger,
	}, nil
}

// Generate builds n = p*q from two keySizeBits/2-bit primes, fixes e = 65537 and
// derives d = e^-1 mod (p-1)(q-1). A second prime equal to the first is drawn again.
// A non-invertible e is reported as textbook.ErrNotInvertible and not retried.
func (g *keyGenerator) Generate(keySizeBits int, rng io.Reader) (*textbook.KeyPair, error) {
	if err := textbook.ValidateKeySize(keySizeBits); err != nil {
		return nil, err
	}
	primeBits := keySizeBits / 2

	p, err := g.primes.Generate(primeBits, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate p: %w", err)
	}

	var q *big.Int
	for {
		q, err = g.primes.Generate(primeBits, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to generate q: %w", err)
		}
		if q.Cmp(p) != 0 {
			break
		}
		g.logger.Warn("Generated q equal to p, drawing q again")
	}

	modulus := new(big.Int).Mul(p, q)

	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	totient := pMinusOne.Mul(pMinusOne, qMinusOne)

	publicExponent := big.NewInt(textbook.PublicExponent)
	privateExponent := new(big.Int).ModInverse(publicExponent, totient)
	if privateExponent == nil {
		return nil, fmt.Errorf("%w: gcd(%d, totient) != 1", textbook.ErrNotInvertible, textbook.PublicExponent)
	}

	g.logger.Info("Generated RSA key pair with a ", modulus.BitLen(), "-bit modulus")
	return &textbook.KeyPair{
		KeySizeBits:     keySizeBits,
		PublicExponent:  publicExponent,
		PrivateExponent: privateExponent,
		Modulus:         modulus,
	}, nil
}
