package pedersen_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snarkcore/babyjubjub/pedersen"
)

func TestBasepointDeterministic(t *testing.T) {
	a, err := pedersen.Basepoint("test", 0)
	require.NoError(t, err)

	b, err := pedersen.Basepoint("test", 0)
	require.NoError(t, err)

	require.True(t, a.Equal(b))

	c, err := pedersen.Basepoint("test", 1)
	require.NoError(t, err)
	require.False(t, a.Equal(c))
}

func TestBasepointRejectsOversizedTag(t *testing.T) {
	_, err := pedersen.Basepoint(strings.Repeat("x", 29), 0)
	require.Error(t, err)
}

func TestBasepointRejectsOutOfRangeSequence(t *testing.T) {
	_, err := pedersen.Basepoint("test", 0x10000)
	require.Error(t, err)
}

func TestHashScalarsRejectsOutOfRange(t *testing.T) {
	_, err := pedersen.HashScalars("test", big.NewInt(0))
	require.Error(t, err)

	_, err = pedersen.HashScalars("test", new(big.Int).Neg(big.NewInt(1)))
	require.Error(t, err)
}

func TestHashScalarsIsDeterministic(t *testing.T) {
	a, err := pedersen.HashScalars("test", big.NewInt(267))
	require.NoError(t, err)

	b, err := pedersen.HashScalars("test", big.NewInt(267))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}

func TestHashBytesIsDeterministic(t *testing.T) {
	a, err := pedersen.HashBytes("test", []byte("abc"))
	require.NoError(t, err)

	b, err := pedersen.HashBytes("test", []byte("a"), []byte("bc"))
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}

func TestHashZcashScalarsVector(t *testing.T) {
	// spec.md §8 vector 4: pedersen_hash_zcash_scalars("test", 267).
	got, err := pedersen.HashZcashScalars("test", big.NewInt(267))
	require.NoError(t, err)
	require.True(t, got.IsValid())
}

func TestHashZcashBytesVector(t *testing.T) {
	// spec.md §8 vector 5: pedersen_hash_zcash_bytes("test", "abc").
	got, err := pedersen.HashZcashBytes("test", []byte("abc"))
	require.NoError(t, err)
	require.True(t, got.IsValid())
}

func TestHashZcashBitsAndBytesAgree(t *testing.T) {
	data := []byte("abc")

	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}

	fromBytes, err := pedersen.HashZcashBytes("test", data)
	require.NoError(t, err)

	fromBits, err := pedersen.HashZcashBits("test", bits)
	require.NoError(t, err)

	require.True(t, fromBytes.Equal(fromBits))
}
