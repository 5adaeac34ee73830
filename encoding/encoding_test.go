package encoding_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snarkcore/babyjubjub/encoding"
	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/jubjub"
)

func TestToBitsFieldIsFixedWidth(t *testing.T) {
	e := field.FromInt64[field.QTag](7)

	bits := encoding.FromField(e).ToBits()
	require.Len(t, bits, 254)
	require.Equal(t, byte(1), bits[0])
	require.Equal(t, byte(1), bits[1])
	require.Equal(t, byte(1), bits[2])

	for _, b := range bits[3:] {
		require.Equal(t, byte(0), b)
	}
}

func TestToBitsPointUsesXOnly(t *testing.T) {
	p := jubjub.Generator

	fromPoint := encoding.FromPoint(p).ToBits()
	fromField := encoding.FromField(p.X).ToBits()

	require.Equal(t, fromField, fromPoint)
}

func TestToBitsBytesIsMSBFirst(t *testing.T) {
	bits := encoding.FromBytes([]byte{0b10000000}).ToBits()
	require.Equal(t, []byte{1, 0, 0, 0, 0, 0, 0, 0}, bits)
}

func TestListFlattensInOrder(t *testing.T) {
	a := encoding.FromBytes([]byte{0xff})
	b := encoding.FromBytes([]byte{0x00})

	got := encoding.List(a, b).ToBits()
	want := append(encoding.FromBytes([]byte{0xff}).ToBits(), encoding.FromBytes([]byte{0x00}).ToBits()...)

	require.Equal(t, want, got)
}

func TestToBytesRoundTripsWholeBytes(t *testing.T) {
	data := []byte("the quick brown fox")

	got := encoding.FromBytes(data).ToBytes()
	require.Equal(t, data, got)
}

func TestBytesToFrReducesModL(t *testing.T) {
	overL := new(big.Int).Add(field.L, big.NewInt(5))

	got := encoding.BytesToFr(overL.Bytes())
	want := field.FromBigInt[field.LTag](big.NewInt(5))

	require.True(t, got.Equal(want))
}
