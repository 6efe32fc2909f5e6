//go:build unit
// +build unit

package cryptography

import (
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/randsource"
	"github.com/pbsphp/schoolboy-rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
)

const (
	TestKeySize1024 = 1024
	TestKeySize512  = 512
	TestKeySize256  = 256
	TestRounds      = 20
)

// sequencePrimes returns its primes in order, ignoring the requested size
type sequencePrimes struct {
	primes []int64
	calls  int
}

func (s *sequencePrimes) Generate(_ int, _ io.Reader) (*big.Int, error) {
	if s.calls >= len(s.primes) {
		return nil, errors.New("no more primes")
	}
	p := big.NewInt(s.primes[s.calls])
	s.calls++
	return p, nil
}

func fixedRNG(seed int64) io.Reader {
	return randsource.NewFixedSource(seed).New()
}

func setupKeyGenerator(t *testing.T, rounds int) textbook.KeyGenerator {
	t.Helper()
	log := testutil.SetupTestLogger(t)

	primes, err := NewPrimeGenerator(rounds, log)
	require.NoError(t, err)

	generator, err := NewKeyGenerator(primes, log)
	require.NoError(t, err)
	return generator
}

func setupCipher(t *testing.T, keySizeBits int) textbook.Cipher {
	t.Helper()
	cipher, err := NewCipher(keySizeBits, NewBlockCodec(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return cipher
}
