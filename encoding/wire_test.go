package encoding_test

import (
	"bytes"
	"encoding/gob"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/snarkcore/babyjubjub/encoding"
	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/jubjub"
)

func TestPointMsgpackRoundTrip(t *testing.T) {
	p := encoding.Point{Point: jubjub.Generator}

	data, err := msgpack.Marshal(p)
	require.NoError(t, err)

	var got encoding.Point
	require.NoError(t, msgpack.Unmarshal(data, &got))
	require.True(t, got.Equal(p.Point))
}

func TestPointGobRoundTrip(t *testing.T) {
	p := encoding.Point{Point: jubjub.Generator}

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(p))

	var got encoding.Point
	require.NoError(t, gob.NewDecoder(&buf).Decode(&got))
	require.True(t, got.Equal(p.Point))
}

func TestSignatureMsgpackRoundTrip(t *testing.T) {
	s := encoding.NewSignature(jubjub.Generator, field.FromInt64[field.QTag](42))

	data, err := msgpack.Marshal(s)
	require.NoError(t, err)

	var got encoding.Signature
	require.NoError(t, msgpack.Unmarshal(data, &got))
	require.Equal(t, s, got)
}

func TestSignatureGobRoundTrip(t *testing.T) {
	s := encoding.NewSignature(jubjub.Generator, field.FromInt64[field.QTag](42))

	var buf bytes.Buffer
	require.NoError(t, gob.NewEncoder(&buf).Encode(s))

	var got encoding.Signature
	require.NoError(t, gob.NewDecoder(&buf).Decode(&got))
	require.Equal(t, s, got)
}
