//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"strings"
	"testing"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFormat_Render(t *testing.T) {
	format := NewKeyFormat()

	key := textbook.Key{Exponent: big.NewInt(textbook.PublicExponent), Modulus: big.NewInt(3233)}
	// 65537 = 1ekh in base 36, 3233 = 2ht
	assert.Equal(t, "1ekh 2ht", format.Render(key))
}

func TestKeyFormat_RoundTrip(t *testing.T) {
	format := NewKeyFormat()
	generator := setupKeyGenerator(t, TestRounds)

	keyPair, err := generator.Generate(TestKeySize512, fixedRNG(11))
	require.NoError(t, err)

	for _, key := range []textbook.Key{keyPair.PublicKey(), keyPair.PrivateKey()} {
		text := format.Render(key)
		assert.Equal(t, strings.TrimSpace(text), text)
		assert.Equal(t, 1, strings.Count(text, " "))

		parsed, err := format.Parse(text)
		require.NoError(t, err)
		assert.True(t, parsed.Equal(key))
	}
}

func TestKeyFormat_Parse(t *testing.T) {
	format := NewKeyFormat()

	tests := []struct {
		name     string
		text     string
		exponent int64
		modulus  int64
		wantErr  bool
	}{
		{"canonical", "1ekh 2ht", 65537, 3233, false},
		{"upper case", "1EKH 2HT", 65537, 3233, false},
		{"surrounding whitespace", "  1ekh\t\n2ht \n", 65537, 3233, false},
		{"leading zeros", "001ekh 02ht", 65537, 3233, false},
		{"empty", "", 0, 0, true},
		{"whitespace only", " \t ", 0, 0, true},
		{"one token", "1ekh", 0, 0, true},
		{"three tokens", "1ekh 2ht 1", 0, 0, true},
		{"semicolon separator", "1ekh;2ht", 0, 0, true},
		{"sign prefix", "-1ekh 2ht", 0, 0, true},
		{"plus prefix", "1ekh +2ht", 0, 0, true},
		{"non base-36 character", "1ekh 2h_t", 0, 0, true},
		{"non ascii digit", "1ekh 2hé", 0, 0, true},
		{"zero modulus", "1ekh 0", 0, 0, true},
		{"zero exponent", "0 2ht", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := format.Parse(tt.text)
			if tt.wantErr {
				assert.ErrorIs(t, err, textbook.ErrMalformedKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.exponent, key.Exponent.Int64())
			assert.Equal(t, tt.modulus, key.Modulus.Int64())
		})
	}
}
