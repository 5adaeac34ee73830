// Package mimc implements the MiMC block cipher and its Miyaguchi-Preneel
// compression mode, grounded verbatim on ethsnarks/mimc.py.
package mimc

import (
	"math/big"

	"golang.org/x/crypto/sha3"
)

// keccak256BE hashes the 32-byte big-endian encoding of x and returns the
// digest interpreted as a big-endian integer (ethsnarks/mimc.py's H, which
// is unreduced: the caller is responsible for reducing the sum it feeds
// into the round S-box, not the constant itself).
func keccak256BE(x *big.Int) *big.Int {
	buf := make([]byte, 32)
	x.FillBytes(buf)

	h := sha3.NewLegacyKeccak256()
	h.Write(buf)
	digest := h.Sum(nil)

	return new(big.Int).SetBytes(digest)
}

// roundConstants derives R-2 round constants by iterating keccak256BE
// starting from seed: c_1 = H(seed), c_i = H(c_{i-1}). None of these are
// reduced mod p here; reduction happens when a constant is summed into the
// cipher state (ethsnarks/mimc.py's mimc_constants).
func roundConstants(seed *big.Int, count int) []*big.Int {
	out := make([]*big.Int, count)

	s := seed
	for i := 0; i < count; i++ {
		s = keccak256BE(s)
		out[i] = s
	}

	return out
}

// Cipher evaluates the MiMC block cipher: x <- (x + k + c_i)^e mod p for
// R-1 rounds using constants [0, c_1, ..., c_{R-2}], followed by a final
// (x + k) mod p with no further exponentiation (spec.md §4.5; the
// constant-derivation seed defaults to nil meaning "start the keccak chain
// at 0").
func Cipher(x, k, seed *big.Int, p *big.Int, e int64, rounds int) *big.Int {
	if seed == nil {
		seed = big.NewInt(0)
	}

	constants := append([]*big.Int{big.NewInt(0)}, roundConstants(seed, rounds-2)...)

	cur := new(big.Int).Set(x)
	for _, c := range constants {
		a := new(big.Int).Add(cur, k)
		a.Add(a, c)
		a.Mod(a, p)

		cur = new(big.Int).Exp(a, big.NewInt(e), p)
	}

	out := new(big.Int).Add(cur, k)
	out.Mod(out, p)

	return out
}

// MiyaguchiPreneel folds a sequence of block-cipher inputs into a single
// compressed value: k <- (k + x_i + Cipher(x_i, k, ...)) mod p for each
// input (ethsnarks/mimc.py's mimc_mp).
func MiyaguchiPreneel(inputs []*big.Int, k, seed, p *big.Int, e int64, rounds int) *big.Int {
	cur := new(big.Int).Set(k)

	for _, x := range inputs {
		enc := Cipher(x, cur, seed, p, e, rounds)

		next := new(big.Int).Add(cur, x)
		next.Add(next, enc)
		next.Mod(next, p)

		cur = next
	}

	return cur
}
