package jubjub

import "math/big"

// MulDoubleAndAdd computes k*p via the textbook MSB->LSB double-and-add
// loop (grounded on gtank/jubjub's Jubjub.ScalarMult), negating the result
// if k is negative. It is the reference algorithm the other two
// implementations are checked against (spec.md §8).
func (p Point) MulDoubleAndAdd(k *big.Int) Point {
	if k.Sign() == 0 {
		return Identity()
	}

	abs := new(big.Int).Abs(k)
	r0, r1 := Identity(), p

	for i := abs.BitLen() - 1; i >= 0; i-- {
		if abs.Bit(i) == 0 {
			r1 = r0.Add(r1)
			r0 = r0.Double()
		} else {
			r0 = r0.Add(r1)
			r1 = r1.Double()
		}
	}

	if k.Sign() < 0 {
		return r0.Neg()
	}

	return r0
}

// naf recodes k into non-adjacent form with digit window width w: signed
// digits in {-(2^(w-1)-1), ..., -1, 0, 1, ..., 2^(w-1)-1}, all even digits
// forbidden, with no two consecutive non-zero digits. Returned little-endian
// (index 0 is the least significant digit).
func naf(k *big.Int, w uint) []int {
	if k.Sign() == 0 {
		return []int{0}
	}

	n := new(big.Int).Abs(k)
	sign := k.Sign()

	modulus := int64(1) << w
	half := modulus / 2

	var digits []int
	for n.Sign() > 0 {
		if n.Bit(0) == 1 {
			zi := int64(new(big.Int).And(n, big.NewInt(modulus-1)).Int64())
			if zi >= half {
				zi -= modulus
			}

			digits = append(digits, int(zi)*sign)
			n.Sub(n, big.NewInt(zi))
		} else {
			digits = append(digits, 0)
		}

		n.Rsh(n, 1)
	}

	return digits
}

// MulNAF computes k*p via width-2 NAF recoding (digits in {-1, 0, 1}, no
// two consecutive non-zero digits), traversing MSB->LSB.
func (p Point) MulNAF(k *big.Int) Point {
	digits := naf(k, 2)

	acc := Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Double()

		switch digits[i] {
		case 1:
			acc = acc.Add(p)
		case -1:
			acc = acc.Add(p.Neg())
		}
	}

	return acc
}

// MulWNAF computes k*p via width-w NAF recoding with a precomputed table
// of odd multiples {p, 3p, 5p, ..., (2^(w-1)-1)p}.
func (p Point) MulWNAF(w uint, k *big.Int) Point {
	if w < 2 {
		w = 2
	}

	tableSize := 1 << (w - 2)
	odd := make([]Point, tableSize)
	odd[0] = p

	twoP := p.Double()
	for i := 1; i < tableSize; i++ {
		odd[i] = odd[i-1].Add(twoP)
	}

	lookup := func(d int) Point {
		if d > 0 {
			return odd[(d-1)/2]
		}

		return odd[(-d-1)/2].Neg()
	}

	digits := naf(k, w)

	acc := Identity()
	for i := len(digits) - 1; i >= 0; i-- {
		acc = acc.Double()

		if digits[i] != 0 {
			acc = acc.Add(lookup(digits[i]))
		}
	}

	return acc
}

// Mul is the default scalar multiplication, width-4 windowed NAF (spec.md
// §9: "expose the default ... keep the others reachable").
func (p Point) Mul(k *big.Int) Point {
	return p.MulWNAF(4, k)
}
