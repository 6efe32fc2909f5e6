//go:build unit
// +build unit

package textbook

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValidate(t *testing.T) {
	tests := []struct {
		name    string
		key     Key
		wantErr bool
	}{
		{"valid key", Key{Exponent: big.NewInt(PublicExponent), Modulus: big.NewInt(3233)}, false},
		{"missing exponent", Key{Modulus: big.NewInt(3233)}, true},
		{"missing modulus", Key{Exponent: big.NewInt(17)}, true},
		{"zero exponent", Key{Exponent: big.NewInt(0), Modulus: big.NewInt(3233)}, true},
		{"negative exponent", Key{Exponent: big.NewInt(-17), Modulus: big.NewInt(3233)}, true},
		{"modulus of one", Key{Exponent: big.NewInt(17), Modulus: big.NewInt(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedKey)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyEqual(t *testing.T) {
	a := Key{Exponent: big.NewInt(17), Modulus: big.NewInt(3233)}
	b := NewKey(big.NewInt(17), big.NewInt(3233))
	c := Key{Exponent: big.NewInt(2753), Modulus: big.NewInt(3233)}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(Key{}))
	assert.True(t, Key{}.Equal(Key{}))
}

func TestKeyPairSplit(t *testing.T) {
	kp := &KeyPair{
		KeySizeBits:     12,
		PublicExponent:  big.NewInt(17),
		PrivateExponent: big.NewInt(2753),
		Modulus:         big.NewInt(3233),
	}

	pub := kp.PublicKey()
	priv := kp.PrivateKey()

	assert.Equal(t, int64(17), pub.Exponent.Int64())
	assert.Equal(t, int64(2753), priv.Exponent.Int64())
	assert.Equal(t, 0, pub.Modulus.Cmp(priv.Modulus))

	// the halves own their integers
	pub.Modulus.SetInt64(1)
	assert.Equal(t, int64(3233), kp.Modulus.Int64())
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 126, MaxSourceSize(1024))
	assert.Equal(t, 2, MaxSourceSize(32))

	// 2^1024 - 1 needs 199 base-36 digits
	assert.Equal(t, 199, MaxNumberDigits(1024))
	assert.Equal(t, 2*199+2, MaxKeyStringSize(1024))
	assert.Equal(t, 0, MaxNumberDigits(0))
}
