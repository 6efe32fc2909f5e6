//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockCodec(t *testing.T) {
	codec := NewBlockCodec()

	t.Run("EncodeIsBigEndian", func(t *testing.T) {
		assert.Equal(t, int64(0x0102), codec.Encode([]byte{0x01, 0x02}).Int64())
		assert.Equal(t, int64(0), codec.Encode(nil).Int64())
		assert.Equal(t, int64(0x02), codec.Encode([]byte{0x00, 0x02}).Int64())
	})

	t.Run("DecodePadsOnTheLeft", func(t *testing.T) {
		block, err := codec.Decode(big.NewInt(0x0102), 4)
		require.NoError(t, err)
		assert.Equal(t, []byte{0x00, 0x00, 0x01, 0x02}, block)
	})

	t.Run("DecodeExactLength", func(t *testing.T) {
		block, err := codec.Decode(big.NewInt(0xffff), 2)
		require.NoError(t, err)
		assert.Equal(t, []byte{0xff, 0xff}, block)
	})

	t.Run("DecodeZero", func(t *testing.T) {
		block, err := codec.Decode(big.NewInt(0), 3)
		require.NoError(t, err)
		assert.Equal(t, []byte{0, 0, 0}, block)

		empty, err := codec.Decode(big.NewInt(0), 0)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("BlockRoundTrip", func(t *testing.T) {
		source := []byte("This is source text. Looks like it works fine!")
		block, err := codec.Decode(codec.Encode(source), textbook.MaxSourceSize(TestKeySize1024))
		require.NoError(t, err)

		assert.Len(t, block, textbook.MaxSourceSize(TestKeySize1024))
		padding := len(block) - len(source)
		assert.Equal(t, make([]byte, padding), block[:padding])
		assert.Equal(t, source, block[padding:])
	})

	t.Run("DecodeRejectsOversizedNumbers", func(t *testing.T) {
		_, err := codec.Decode(big.NewInt(0x010000), 2)
		assert.ErrorIs(t, err, textbook.ErrInvalidParameter)
	})

	t.Run("DecodeRejectsNegativeInput", func(t *testing.T) {
		_, err := codec.Decode(big.NewInt(-1), 4)
		assert.ErrorIs(t, err, textbook.ErrInvalidParameter)

		_, err = codec.Decode(big.NewInt(1), -1)
		assert.ErrorIs(t, err, textbook.ErrInvalidParameter)

		_, err = codec.Decode(nil, 4)
		assert.ErrorIs(t, err, textbook.ErrInvalidParameter)
	})
}
