// Package jubjub implements the BabyJubjub twisted Edwards curve over the
// BN254 scalar field, in four coordinate systems: affine (this file), Etec
// (extended), projective, and Montgomery. Each representation exposes the
// same informal capability set — Add/Double/Neg/IsValid/IsIdentity/ToAffine —
// as concrete, non-polymorphic types; callers pick a representation at the
// API boundary rather than dispatching through an interface.
package jubjub

import (
	"math/big"

	"github.com/snarkcore/babyjubjub/field"
	"github.com/snarkcore/babyjubjub/internal/errs"
)

// Curve constants (spec.md §6, byte-exact).
var (
	A      = field.FromInt64[field.QTag](168700)
	D      = field.FromInt64[field.QTag](168696)
	MontA  = field.FromInt64[field.QTag](168698)
	MontB  = field.FromInt64[field.QTag](1)
	Cofact = big.NewInt(8)
)

// FullOrder is E = h*l, the order of the full curve (not just the l-order
// subgroup).
var FullOrder = new(big.Int).Mul(Cofact, field.L)

// Point is an affine twisted Edwards point (x, y) satisfying
// a*x^2 + y^2 = 1 + d*x^2*y^2.
type Point struct {
	X, Y field.Fq
}

// Identity is the affine neutral element, (0, 1).
func Identity() Point {
	return Point{X: field.FromInt64[field.QTag](0), Y: field.FromInt64[field.QTag](1)}
}

// Generator is the canonical full-order (8*l) BabyJubjub base point,
// hardcoded rather than derived via hash_to_point (spec.md §3 permits
// either; this module documents the hardcoded choice).
var Generator = Point{
	X: field.FromBigInt[field.QTag](field.String2Int("995203441582195749578291179787384436505546430278305826713579947235728471134")),
	Y: field.FromBigInt[field.QTag](field.String2Int("5472060717959818805561601436314318772137091100104008585924551046643952123905")),
}

// Base8 is the canonical order-l subgroup generator (Generator scaled by
// the cofactor), the base point EdDSA signs against.
var Base8 = Point{
	X: field.FromBigInt[field.QTag](field.String2Int("5299619240641551281634865583518297030282874472190772894086521144482721001553")),
	Y: field.FromBigInt[field.QTag](field.String2Int("16950150798460657717958625567821834550301663161624707787222815936182638968203")),
}

// IsIdentity reports whether p is the neutral element.
func (p Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.Equal(field.FromInt64[field.QTag](1))
}

// Equal reports whether p and o are the same affine point.
func (p Point) Equal(o Point) bool {
	return p.X.Equal(o.X) && p.Y.Equal(o.Y)
}

// IsValid reports whether p satisfies the curve equation.
func (p Point) IsValid() bool {
	x2 := p.X.Mul(p.X)
	y2 := p.Y.Mul(p.Y)

	lhs := A.Mul(x2).Add(y2)
	rhs := field.FromInt64[field.QTag](1).Add(D.Mul(x2).Mul(y2))

	return lhs.Equal(rhs)
}

// Neg returns -p = (-x, y).
func (p Point) Neg() Point {
	return Point{X: p.X.Neg(), Y: p.Y}
}

// Add returns p + o using the affine twisted Edwards addition law
// (grounded on gtank/jubjub's Jubjub.Add, generalized from that curve's
// fixed a = -1 to BabyJubjub's a = 168700).
func (p Point) Add(o Point) Point {
	x1y2 := p.X.Mul(o.Y)
	y1x2 := p.Y.Mul(o.X)
	y1y2 := p.Y.Mul(o.Y)
	x1x2 := p.X.Mul(o.X)

	dx1x2y1y2 := D.Mul(x1x2).Mul(y1y2)
	one := field.FromInt64[field.QTag](1)

	xDen, err := one.Add(dx1x2y1y2).Invert()
	if err != nil {
		panic("jubjub: addition denominator is zero for valid curve points")
	}

	yDen, err := one.Sub(dx1x2y1y2).Invert()
	if err != nil {
		panic("jubjub: addition denominator is zero for valid curve points")
	}

	x3 := x1y2.Add(y1x2).Mul(xDen)
	y3 := y1y2.Sub(A.Mul(x1x2)).Mul(yDen)

	return Point{X: x3, Y: y3}
}

// Double returns p + p. Affine addition is complete for this curve (a is a
// square and d a non-square in Fq), so Double is simply Add(p, p); it is kept as a named
// operation for parity with the other representations, where doubling has
// a cheaper dedicated formula.
func (p Point) Double() Point {
	return p.Add(p)
}

// FromY solves the curve equation for x given y, returning the root with
// the canonical (smaller, as a big-endian integer) sign. Fails with
// errs.ErrNonResidue when x^2 has no square root in Fq.
func FromY(y field.Fq) (Point, error) {
	one := field.FromInt64[field.QTag](1)
	y2 := y.Mul(y)

	num := one.Sub(y2)
	den := A.Sub(D.Mul(y2))

	x2, err := num.Div(den)
	if err != nil {
		return Point{}, errs.Wrap("jubjub: from_y", err)
	}

	x, err := x2.Sqrt()
	if err != nil {
		return Point{}, err
	}

	return Point{X: canonicalSign(x), Y: y}, nil
}

// FromX solves the curve equation for y given x, returning the root with
// the canonical sign of y.
func FromX(x field.Fq) (Point, error) {
	one := field.FromInt64[field.QTag](1)
	x2 := x.Mul(x)

	num := one.Sub(A.Mul(x2))
	den := one.Sub(D.Mul(x2))

	y2, err := num.Div(den)
	if err != nil {
		return Point{}, errs.Wrap("jubjub: from_x", err)
	}

	y, err := y2.Sqrt()
	if err != nil {
		return Point{}, err
	}

	return Point{X: x, Y: canonicalSign(y)}, nil
}

// canonicalSign returns whichever of e, -e is smaller under big-endian
// integer ordering (spec.md §4.3).
func canonicalSign(e field.Fq) field.Fq {
	neg := e.Neg()
	if neg.Cmp(e) < 0 {
		return neg
	}

	return e
}

// isNegative reports whether e is the non-canonical ("negative") root,
// i.e. whether -e would have been chosen as canonical instead of e. Used by
// Compress to pick the sign bit independent of which root FromY returned.
func isNegative(e field.Fq) bool {
	return e.Neg().Cmp(e) < 0
}

const compressedSize = 32

// Compress returns the 32-byte little-endian encoding of y with the
// most-significant bit of the final byte set to the sign of x (spec.md §6).
func (p Point) Compress() [compressedSize]byte {
	out := p.Y.BytesLE()
	if isNegative(p.X) {
		out[compressedSize-1] |= 0x80
	}

	return out
}

// Decompress reverses Compress, failing with errs.ErrInvalidEncoding on a
// malformed buffer and errs.ErrNotOnCurve if the recovered point fails the
// curve-equation check.
func Decompress(buf []byte) (Point, error) {
	if len(buf) != compressedSize {
		return Point{}, errs.ErrInvalidEncoding
	}

	var raw [compressedSize]byte
	copy(raw[:], buf)

	sign := raw[compressedSize-1]&0x80 != 0
	raw[compressedSize-1] &= 0x7F

	y, err := field.SetBytesLE[field.QTag](raw[:])
	if err != nil {
		return Point{}, err
	}

	p, err := FromY(y)
	if err != nil {
		return Point{}, errs.Wrap("jubjub: decompress", err)
	}

	if isNegative(p.X) != sign {
		p.X = p.X.Neg()
	}

	if !p.IsValid() {
		return Point{}, errs.ErrNotOnCurve
	}

	return p, nil
}

// AllLowOrderPoints enumerates the h = 8 points of order dividing the
// cofactor, deterministically: a handful of fixed hash-to-point outputs
// scalar-multiplied by l, each low-order result expanded to its multiples,
// deduplicated (grounded on
// find_loworder_points.py's `p * JUBJUB_L` construction, made
// deterministic since test reproducibility requires it — spec.md §5).
func AllLowOrderPoints() []Point {
	seeds := [][]byte{
		[]byte("babyjubjub-low-order-0"),
		[]byte("babyjubjub-low-order-1"),
		[]byte("babyjubjub-low-order-2"),
		[]byte("babyjubjub-low-order-3"),
		[]byte("babyjubjub-low-order-4"),
		[]byte("babyjubjub-low-order-5"),
		[]byte("babyjubjub-low-order-6"),
		[]byte("babyjubjub-low-order-7"),
		[]byte("babyjubjub-low-order-8"),
		[]byte("babyjubjub-low-order-9"),
	}

	out := make([]Point, 0, 8)
	seen := make(map[string]bool)

	for _, s := range seeds {
		p := HashToPoint(s).MulDoubleAndAdd(field.L)
		acc := p

		for k := 0; k < 8 && len(out) < 8; k++ {
			key := acc.X.String() + "," + acc.Y.String()
			if !seen[key] {
				seen[key] = true
				out = append(out, acc)
			}

			acc = acc.Add(p)
		}

		if len(out) == 8 {
			break
		}
	}

	return out
}
