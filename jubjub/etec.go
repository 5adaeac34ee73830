package jubjub

import "github.com/snarkcore/babyjubjub/field"

// Etec is a point in extended twisted Edwards ("Etec") coordinates:
// x = X/Z, y = Y/Z, and T = X*Y/Z is carried alongside to make addition
// complete without case-splitting on the identity (grounded on
// mixed-addition.py's madd-2008-hwcd formula block).
type Etec struct {
	X, Y, T, Z field.Fq
}

// EtecIdentity is the extended-coordinates neutral element.
func EtecIdentity() Etec {
	zero := field.FromInt64[field.QTag](0)
	one := field.FromInt64[field.QTag](1)

	return Etec{X: zero, Y: one, T: zero, Z: one}
}

// ToAffine rescales e by 1/Z to recover the affine point.
func (e Etec) ToAffine() Point {
	zInv, err := e.Z.Invert()
	if err != nil {
		panic("jubjub: Etec point has zero Z")
	}

	return Point{X: e.X.Mul(zInv), Y: e.Y.Mul(zInv)}
}

// FromAffine lifts an affine point into extended coordinates (Z = 1).
func FromAffine(p Point) Etec {
	one := field.FromInt64[field.QTag](1)
	return Etec{X: p.X, Y: p.Y, T: p.X.Mul(p.Y), Z: one}
}

// IsIdentity reports whether e represents the neutral element.
func (e Etec) IsIdentity() bool {
	return e.ToAffine().IsIdentity()
}

// IsValid reports whether e satisfies X*Y = T*Z and its affine projection
// is on the curve.
func (e Etec) IsValid() bool {
	if !e.X.Mul(e.Y).Equal(e.T.Mul(e.Z)) {
		return false
	}

	return e.ToAffine().IsValid()
}

// Equal compares e and o after rescaling both to affine.
func (e Etec) Equal(o Etec) bool {
	return e.ToAffine().Equal(o.ToAffine())
}

// Neg returns -e = (-X, Y, -T, Z).
func (e Etec) Neg() Etec {
	return Etec{X: e.X.Neg(), Y: e.Y, T: e.T.Neg(), Z: e.Z}
}

// Add returns e + o using the add-2008-hwcd-3 formulae generalized to
// BabyJubjub's a = 168700 (grounded on
// original_source/appendix/mixed-addition.py's madd-2008-hwcd block).
func (e Etec) Add(o Etec) Etec {
	x1x2 := e.X.Mul(o.X)
	aX1X2 := A.Mul(x1x2)
	y1y2 := e.Y.Mul(o.Y)
	dT1T2 := D.Mul(e.T).Mul(o.T)
	z1z2 := e.Z.Mul(o.Z)

	c := dT1T2
	dd := z1z2

	x1y1 := e.X.Add(e.Y)
	x2y2 := o.X.Add(o.Y)
	e3 := x1y1.Mul(x2y2).Sub(x1x2).Sub(y1y2)

	f3 := dd.Sub(c)
	g3 := dd.Add(c)
	h3 := y1y2.Sub(aX1X2)

	return Etec{
		X: e3.Mul(f3),
		Y: g3.Mul(h3),
		T: e3.Mul(h3),
		Z: f3.Mul(g3),
	}
}

// Double returns e + e using the dedicated doubling formula.
func (e Etec) Double() Etec {
	x1y1 := e.X.Add(e.Y)
	a3 := e.X.Mul(e.X)
	b3 := e.Y.Mul(e.Y)
	c3 := e.Z.Mul(e.Z).Add(e.Z.Mul(e.Z))

	dA := A.Mul(a3)
	e3 := x1y1.Mul(x1y1).Sub(a3).Sub(b3)
	g3 := dA.Add(b3)
	f3 := g3.Sub(c3)
	h3 := dA.Sub(b3)

	return Etec{
		X: e3.Mul(f3),
		Y: g3.Mul(h3),
		T: e3.Mul(h3),
		Z: f3.Mul(g3),
	}
}
