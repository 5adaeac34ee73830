package jubjub

import "github.com/snarkcore/babyjubjub/field"

// Mont is an affine Montgomery-form point, (u, v) satisfying
// MONT_B*v^2 = u^3 + MONT_A*u^2 + u, birationally equivalent to the
// Edwards form (spec.md §4.3).
type Mont struct {
	U, V field.Fq
}

// MontIdentity is the Montgomery-form neutral element, the point at
// infinity; represented here as the Edwards identity's image, (0, 0), the
// convention this package uses at the u=0 boundary (the Edwards identity
// (0,1) is excluded from the birational map's domain, see ToMontgomery).
func MontIdentity() Mont {
	zero := field.FromInt64[field.QTag](0)
	return Mont{U: zero, V: zero}
}

// ToMontgomery maps an affine Edwards point to Montgomery form via
// (u, v) = ((1+y)/(1-y), (1+y)/((1-y)*x)) (spec.md §4.3). The Edwards
// identity (0, 1) has no image under this map (y = 1 makes 1-y zero); it is
// returned as MontIdentity() by convention.
func ToMontgomery(p Point) Mont {
	if p.IsIdentity() {
		return MontIdentity()
	}

	one := field.FromInt64[field.QTag](1)
	oneMinusY := one.Sub(p.Y)

	u, err := one.Add(p.Y).Div(oneMinusY)
	if err != nil {
		panic("jubjub: ToMontgomery: y = 1 on a non-identity point")
	}

	v, err := one.Add(p.Y).Div(oneMinusY.Mul(p.X))
	if err != nil {
		panic("jubjub: ToMontgomery: x = 0 on a non-identity point")
	}

	return Mont{U: u, V: v}
}

// ToAffine maps a Montgomery point back to the Edwards form via the
// inverse of ToMontgomery's map: y = (u-1)/(u+1), x = u/v (for v != 0).
func (m Mont) ToAffine() Point {
	if m.U.IsZero() && m.V.IsZero() {
		return Identity()
	}

	one := field.FromInt64[field.QTag](1)

	y, err := m.U.Sub(one).Div(m.U.Add(one))
	if err != nil {
		panic("jubjub: Montgomery ToAffine: u = -1")
	}

	x, err := m.U.Div(m.V)
	if err != nil {
		panic("jubjub: Montgomery ToAffine: v = 0 on a non-identity point")
	}

	return Point{X: x, Y: y}
}

// IsValid reports whether m satisfies the Montgomery curve equation
// MONT_B*v^2 = u^3 + MONT_A*u^2 + u.
func (m Mont) IsValid() bool {
	if m.U.IsZero() && m.V.IsZero() {
		return true
	}

	lhs := MontB.Mul(m.V.Mul(m.V))
	u2 := m.U.Mul(m.U)
	rhs := u2.Mul(m.U).Add(MontA.Mul(u2)).Add(m.U)

	return lhs.Equal(rhs)
}

// IsIdentity reports whether m is the Montgomery-form neutral element.
func (m Mont) IsIdentity() bool {
	return m.U.IsZero() && m.V.IsZero()
}

// Equal compares m and o after rescaling both to the Edwards form (the
// Montgomery representation is not over-parameterized the way Etec/Proj
// are, but this keeps the same capability shape as the other three types).
func (m Mont) Equal(o Mont) bool {
	return m.ToAffine().Equal(o.ToAffine())
}

// Neg returns -m = (u, -v).
func (m Mont) Neg() Mont {
	return Mont{U: m.U, V: m.V.Neg()}
}

// Add returns m + o by mapping both operands to the Edwards form, adding
// there, and mapping the sum back. Montgomery addition has its own direct
// formula, but every other representation's Add already routes through a
// shared affine-equivalence check (spec.md §8), so correctness here rests
// on ToMontgomery/ToAffine being mutual inverses rather than on a second,
// independently-derived addition law.
func (m Mont) Add(o Mont) Mont {
	return ToMontgomery(m.ToAffine().Add(o.ToAffine()))
}

// Double returns m + m.
func (m Mont) Double() Mont {
	return ToMontgomery(m.ToAffine().Double())
}
