package cryptography

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/logger"
)

var two = big.NewInt(2)

// primeGenerator implements textbook.PrimeGenerator with a forward search over odd candidates
type primeGenerator struct {
	rounds int
	logger logger.Logger
}

// NewPrimeGenerator creates a prime generator running rounds Miller-Rabin rounds per candidate
func NewPrimeGenerator(rounds int, logger logger.Logger) (textbook.PrimeGenerator, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("%w: primality rounds must be positive, got %d", textbook.ErrInvalidParameter, rounds)
	}
	return &primeGenerator{
		rounds: rounds,
		logger: logger,
	}, nil
}

// Generate draws a random bits-bit number from rng, forces its top bit and walks
// forward to the first probable prime. Composite candidates are skipped silently.
// If the walk runs past bits significant bits a new starting point is drawn.
func (g *primeGenerator) Generate(bits int, rng io.Reader) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime size must be at least 2 bits, got %d", textbook.ErrInvalidParameter, bits)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is required", textbook.ErrInvalidParameter)
	}

	for {
		candidate, err := randomBits(bits, rng)
		if err != nil {
			return nil, err
		}
		candidate.SetBit(candidate, bits-1, 1)

		if prime := g.nextPrime(candidate, bits); prime != nil {
			return prime, nil
		}
		g.logger.Debug("Prime search left the ", bits, "-bit range, drawing a new candidate")
	}
}

// nextPrime returns the first odd probable prime >= candidate that still has
// exactly bits bits, or nil if there is none. candidate is modified.
func (g *primeGenerator) nextPrime(candidate *big.Int, bits int) *big.Int {
	candidate.SetBit(candidate, 0, 1)
	for ; candidate.BitLen() == bits; candidate.Add(candidate, two) {
		if candidate.ProbablyPrime(g.rounds) {
			return candidate
		}
	}
	return nil
}

// randomBits reads a uniformly distributed number in [0, 2^bits) from rng
func randomBits(bits int, rng io.Reader) (*big.Int, error) {
	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bits: %w", err)
	}
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xff >> excess)
	}
	return new(big.Int).SetBytes(buf), nil
}
