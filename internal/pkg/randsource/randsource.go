// Package randsource hands out the random generators used for key generation.
//
// A Source is owned by whoever creates it. Every call to New returns a generator
// that belongs to the caller alone, so concurrent key generations never share
// generator state. The time and fixed sources are seeded math/rand generators and
// are NOT suitable for real keys; the crypto source reads from the OS.
package randsource

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
	"math/rand"
	"sync/atomic"
	"time"
)

// Seed source kinds
const (
	KindTime   = "time"
	KindFixed  = "fixed"
	KindCrypto = "crypto"
)

// Source creates random generators for generation calls.
type Source interface {
	// New returns a generator for exactly one caller.
	New() io.Reader
}

// New builds the Source of the given kind. seed is only used by KindFixed.
func New(kind string, seed int64) (Source, error) {
	switch kind {
	case KindTime:
		return NewTimeSource(time.Now), nil
	case KindFixed:
		return NewFixedSource(seed), nil
	case KindCrypto:
		return NewCryptoSource(), nil
	default:
		return nil, fmt.Errorf("unsupported seed source: %s", kind)
	}
}

// TimeSource seeds each generator from the wall clock plus a per-source counter,
// so successive calls within the same second still get distinct seeds.
type TimeSource struct {
	now       func() time.Time
	increment atomic.Int64
}

// NewTimeSource creates a TimeSource reading the clock through now
func NewTimeSource(now func() time.Time) *TimeSource {
	return &TimeSource{now: now}
}

// Seed returns the next seed
func (s *TimeSource) Seed() int64 {
	return s.now().Unix() + s.increment.Add(1) - 1
}

// New returns a math/rand generator seeded with the next seed
func (s *TimeSource) New() io.Reader {
	return rand.New(rand.NewSource(s.Seed()))
}

// FixedSource yields the same sequence of generators on every run.
type FixedSource struct {
	seed      int64
	increment atomic.Int64
}

// NewFixedSource creates a FixedSource starting at seed
func NewFixedSource(seed int64) *FixedSource {
	return &FixedSource{seed: seed}
}

// New returns a math/rand generator seeded with seed, seed+1, ... on successive calls
func (s *FixedSource) New() io.Reader {
	return rand.New(rand.NewSource(s.seed + s.increment.Add(1) - 1))
}

// CryptoSource hands out the operating system's random reader.
type CryptoSource struct{}

// NewCryptoSource creates a CryptoSource
func NewCryptoSource() *CryptoSource {
	return &CryptoSource{}
}

// New returns crypto/rand.Reader, which is safe for concurrent use
func (s *CryptoSource) New() io.Reader {
	return cryptorand.Reader
}
