package jubjub

import "github.com/snarkcore/babyjubjub/field"

// Proj is a point in projective twisted Edwards coordinates: x = X/Z,
// y = Y/Z.
type Proj struct {
	X, Y, Z field.Fq
}

// ProjIdentity is the projective-coordinates neutral element.
func ProjIdentity() Proj {
	zero := field.FromInt64[field.QTag](0)
	one := field.FromInt64[field.QTag](1)

	return Proj{X: zero, Y: one, Z: one}
}

// ToAffine rescales r by 1/Z.
func (r Proj) ToAffine() Point {
	zInv, err := r.Z.Invert()
	if err != nil {
		panic("jubjub: Proj point has zero Z")
	}

	return Point{X: r.X.Mul(zInv), Y: r.Y.Mul(zInv)}
}

// ProjFromAffine lifts an affine point into projective coordinates (Z = 1).
func ProjFromAffine(p Point) Proj {
	return Proj{X: p.X, Y: p.Y, Z: field.FromInt64[field.QTag](1)}
}

// IsIdentity reports whether r represents the neutral element.
func (r Proj) IsIdentity() bool {
	return r.ToAffine().IsIdentity()
}

// IsValid reports whether r's affine projection is on the curve.
func (r Proj) IsValid() bool {
	return r.ToAffine().IsValid()
}

// Equal compares r and o after rescaling both to affine.
func (r Proj) Equal(o Proj) bool {
	return r.ToAffine().Equal(o.ToAffine())
}

// Neg returns -r = (-X, Y, Z).
func (r Proj) Neg() Proj {
	return Proj{X: r.X.Neg(), Y: r.Y, Z: r.Z}
}

// Add returns r + o using the standard projective twisted Edwards addition
// law (add-2008-bbjlp, generic a).
func (r Proj) Add(o Proj) Proj {
	a := r.Z.Mul(o.Z)
	b := a.Mul(a)
	c := r.X.Mul(o.X)
	d := r.Y.Mul(o.Y)
	e := D.Mul(c).Mul(d)
	f := b.Sub(e)
	g := b.Add(e)

	x1y1 := r.X.Add(r.Y)
	x2y2 := o.X.Add(o.Y)

	x3 := a.Mul(f).Mul(x1y1.Mul(x2y2).Sub(c).Sub(d))
	y3 := a.Mul(g).Mul(d.Sub(A.Mul(c)))
	z3 := f.Mul(g)

	return Proj{X: x3, Y: y3, Z: z3}
}

// Double returns r + r using the dedicated projective doubling formula
// (dbl-2008-bbjlp, generic a).
func (r Proj) Double() Proj {
	b := r.X.Add(r.Y)
	b = b.Mul(b)
	c := r.X.Mul(r.X)
	d := r.Y.Mul(r.Y)
	e := A.Mul(c)
	f := e.Add(d)
	h := r.Z.Mul(r.Z)
	j := f.Sub(h.Add(h))

	x3 := b.Sub(c).Sub(d).Mul(j)
	y3 := f.Mul(e.Sub(d))
	z3 := f.Mul(j)

	return Proj{X: x3, Y: y3, Z: z3}
}
