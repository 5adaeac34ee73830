package jubjub_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/jubjub"
)

const iterations = 100

func TestGeneratorAndBase8AreOnCurve(t *testing.T) {
	require.True(t, jubjub.Generator.IsValid())
	require.True(t, jubjub.Base8.IsValid())
}

func TestIdentityLaws(t *testing.T) {
	id := jubjub.Identity()
	require.True(t, id.IsIdentity())
	require.True(t, id.IsValid())

	p := jubjub.Base8

	require.True(t, p.Add(id).Equal(p))
	require.True(t, id.Add(p).Equal(p))
	require.True(t, p.Add(p.Neg()).Equal(id))
}

func TestAddCommutes(t *testing.T) {
	p := jubjub.Base8
	q := jubjub.Base8.Double()

	require.True(t, p.Add(q).Equal(q.Add(p)))
}

func TestVector7Doubling(t *testing.T) {
	a := jubjub.Point{
		X: field.FromBigInt[field.QTag](field.String2Int("17777552123799933955779906779655732241715742912184938656739573121738514868268")),
		Y: field.FromBigInt[field.QTag](field.String2Int("2626589144620713026669568689430873010625803728049924121243784502389097019475")),
	}
	require.True(t, a.IsValid())

	want := jubjub.Point{
		X: field.FromBigInt[field.QTag](field.String2Int("6890855772600357754907169075114257697580319025794532037257385534741338397365")),
		Y: field.FromBigInt[field.QTag](field.String2Int("4338620300185947561074059802482547481416142213883829469920100239455078257889")),
	}

	got := a.Double()
	require.True(t, got.Equal(want))
	require.True(t, a.Add(a).Equal(want))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	for i := 0; i < iterations; i++ {
		k := big.NewInt(int64(3*i + 1))
		p := jubjub.Base8.Mul(k)

		buf := p.Compress()
		back, err := jubjub.Decompress(buf[:])
		require.NoError(t, err)
		require.True(t, p.Equal(back))
	}
}

func TestFromYRecoversCanonicalSign(t *testing.T) {
	for i := 0; i < 20; i++ {
		k := big.NewInt(int64(5*i + 2))
		p := jubjub.Base8.Mul(k)

		recovered, err := jubjub.FromY(p.Y)
		require.NoError(t, err)

		require.True(t, recovered.X.Equal(p.X) || recovered.X.Equal(p.X.Neg()))
		require.True(t, recovered.X.Cmp(recovered.X.Neg()) <= 0)
		require.True(t, recovered.IsValid())
	}
}

func TestScalarMultAlgorithmsAgree(t *testing.T) {
	for i := 1; i <= 25; i++ {
		k := big.NewInt(int64(i*i + 7))

		dbl := jubjub.Base8.MulDoubleAndAdd(k)
		nafRes := jubjub.Base8.MulNAF(k)

		require.True(t, dbl.Equal(nafRes), "mismatch at k=%d (naf)", i)

		for w := uint(2); w <= 8; w++ {
			wnaf := jubjub.Base8.MulWNAF(w, k)
			require.True(t, dbl.Equal(wnaf), "mismatch at k=%d w=%d", i, w)
		}
	}
}

func TestMulByFullOrderIsIdentity(t *testing.T) {
	p := jubjub.Base8.MulDoubleAndAdd(jubjub.FullOrder)
	require.True(t, p.IsIdentity())
}

func TestMulByLIsLowOrder(t *testing.T) {
	p := jubjub.Generator.MulDoubleAndAdd(field.L)
	eight := p.MulDoubleAndAdd(jubjub.Cofact)
	require.True(t, eight.IsIdentity())
}

func TestScalarMultComposesAndCommutes(t *testing.T) {
	a := big.NewInt(11)
	b := big.NewInt(17)

	ab := new(big.Int).Mod(new(big.Int).Mul(a, b), jubjub.FullOrder)

	left := jubjub.Base8.Mul(a).Mul(b)
	right := jubjub.Base8.Mul(b).Mul(a)
	direct := jubjub.Base8.Mul(ab)

	require.True(t, left.Equal(right))
	require.True(t, left.Equal(direct))
}

func TestHashToPointProducesValidPoints(t *testing.T) {
	for i := 0; i < iterations; i++ {
		data := []byte{byte(i), byte(i >> 8), 0xAB}
		p := jubjub.HashToPoint(data)
		require.True(t, p.IsValid())
	}
}

func TestEtecRoundTrip(t *testing.T) {
	p := jubjub.Base8.Double()
	e := jubjub.FromAffine(p)
	require.True(t, e.IsValid())
	require.True(t, e.ToAffine().Equal(p))

	sum := e.Add(e)
	require.True(t, sum.ToAffine().Equal(p.Double()))

	dbl := e.Double()
	require.True(t, dbl.ToAffine().Equal(p.Double()))
}

func TestProjRoundTrip(t *testing.T) {
	p := jubjub.Base8.Double()
	r := jubjub.ProjFromAffine(p)
	require.True(t, r.IsValid())
	require.True(t, r.ToAffine().Equal(p))

	sum := r.Add(r)
	require.True(t, sum.ToAffine().Equal(p.Double()))

	dbl := r.Double()
	require.True(t, dbl.ToAffine().Equal(p.Double()))
}

func TestMontgomeryRoundTrip(t *testing.T) {
	p := jubjub.Base8.Double()
	m := jubjub.ToMontgomery(p)
	require.True(t, m.IsValid())
	require.True(t, m.ToAffine().Equal(p))
}

func TestAllLowOrderPointsCount(t *testing.T) {
	pts := jubjub.AllLowOrderPoints()
	require.Len(t, pts, 8)

	for _, p := range pts {
		require.True(t, p.IsValid())
	}
}
