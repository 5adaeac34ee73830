package field

import (
	"math/big"

	"github.com/snarkcore/babyjubjub/internal/errs"
)

// Jacobi returns the Jacobi symbol (a/n), generalizing the Legendre symbol to
// composite (odd, positive) n. For prime n this is exactly the Legendre
// symbol: 1 if a is a nonzero quadratic residue mod n, -1 if it is a
// nonresidue, and 0 if a ≡ 0 (mod n).
func Jacobi(a, n *big.Int) int {
	return big.Jacobi(a, n)
}

// ExtGCDInverse computes the modular inverse of a modulo p using the extended
// Euclidean algorithm. It fails with errs.ErrZeroInverse when gcd(a, p) != 1,
// in particular when a ≡ 0 (mod p).
func ExtGCDInverse(a, p *big.Int) (*big.Int, error) {
	g := new(big.Int)
	x := new(big.Int)
	g.GCD(x, nil, new(big.Int).Mod(a, p), p)

	if g.Cmp(one) != 0 {
		return nil, errs.ErrZeroInverse
	}

	return x.Mod(x, p), nil
}

// TonelliShanks returns r such that r*r ≡ n (mod p) for an odd prime p, or
// fails with errs.ErrNonResidue when n is not a quadratic residue mod p.
//
// This is the general algorithm (not the p ≡ 3 (mod 4) shortcut): both BN254's
// q and BabyJubjub's l are ≡ 1 (mod 4), so the shortcut square-root-by-
// exponentiation does not apply and the full loop is required.
func TonelliShanks(n, p *big.Int) (*big.Int, error) {
	n = new(big.Int).Mod(n, p)

	if n.Sign() == 0 {
		return big.NewInt(0), nil
	}

	if Jacobi(n, p) != 1 {
		return nil, errs.ErrNonResidue
	}

	// Factor p-1 = q * 2^s with q odd.
	pMinus1 := new(big.Int).Sub(p, one)
	q := new(big.Int).Set(pMinus1)
	s := uint(0)

	for q.Bit(0) == 0 {
		q.Rsh(q, 1)
		s++
	}

	if s == 1 {
		// p ≡ 3 (mod 4): r = n^((p+1)/4).
		exp := new(big.Int).Add(p, one)
		exp.Rsh(exp, 2)

		return new(big.Int).Exp(n, exp, p), nil
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for Jacobi(z, p) != -1 {
		z.Add(z, one)
	}

	m := s
	c := new(big.Int).Exp(z, q, p)
	qPlus1Div2 := new(big.Int).Add(q, one)
	qPlus1Div2.Rsh(qPlus1Div2, 1)
	t := new(big.Int).Exp(n, q, p)
	r := new(big.Int).Exp(n, qPlus1Div2, p)

	for {
		if t.Cmp(one) == 0 {
			return r, nil
		}

		// Find the least i, 0 < i < m, such that t^(2^i) == 1.
		i := uint(0)
		tt := new(big.Int).Set(t)

		for tt.Cmp(one) != 0 {
			tt.Mul(tt, tt)
			tt.Mod(tt, p)
			i++

			if i == m {
				return nil, errs.ErrNonResidue
			}
		}

		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, m-i-1), p)
		m = i
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		r.Mul(r, b)
		r.Mod(r, p)
	}
}
