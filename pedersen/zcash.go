package pedersen

import (
	"math/big"

	"github.com/snarkcore/babyjubjub/internal/errs"
	"github.com/snarkcore/babyjubjub/jubjub"
)

// windowBasepointPeriod is the number of 3-bit windows a single basepoint
// covers before a fresh one is derived (Theorem 5.4.1 of the Zcash Sapling
// spec, as applied to BabyJubjub in ethsnarks/pedersen.py). Spec.md §4.4
// requires this constant be used verbatim.
const windowBasepointPeriod = 62

// hashZcashWindows folds a sequence of 3-bit signed-digit windows into a
// point: window value v decomposes into magnitude m = (v&0b11)+1 in
// {1,2,3,4} and sign s = v>>2; every windowBasepointPeriod windows derives
// a fresh basepoint. Grounded verbatim on ethsnarks/pedersen.py's
// pedersen_hash_zcash_windows, shared by the bits/bytes and scalars entry
// points below despite their different window-extraction rules.
func hashZcashWindows(name string, windows []int) (jubjub.Point, error) {
	result := jubjub.Identity()
	var base jubjub.Point

	for j, window := range windows {
		if j%windowBasepointPeriod == 0 {
			b, err := Basepoint(name, uint32(j/windowBasepointPeriod))
			if err != nil {
				return jubjub.Point{}, err
			}

			base = b
		}

		jj := j % windowBasepointPeriod

		exp := new(big.Int).Lsh(big.NewInt(1), uint(4*jj))
		segmentBase := base.Mul(exp)

		magnitude := int64(window&0b11) + 1
		segment := segmentBase.Mul(big.NewInt(magnitude))

		if window > 0b11 {
			segment = segment.Neg()
		}

		result = result.Add(segment)
	}

	return result, nil
}

// bitsFromBytes decodes data into its big-endian (MSB-first per byte) bit
// sequence, one byte per 0/1 entry.
func bitsFromBytes(data []byte) []byte {
	bits := make([]byte, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1)
		}
	}

	return bits
}

// windowsFromBits groups a bit sequence into 3-bit windows, each window's
// bits reversed before interpretation as a binary integer (ethsnarks
// pedersen_hash_zcash_bits: `int(bits[i:i+3][::-1], 2)`, i.e. the window's
// first bit is its least-significant bit).
func windowsFromBits(bits []byte) []int {
	var windows []int

	for i := 0; i < len(bits); i += 3 {
		end := i + 3
		if end > len(bits) {
			end = len(bits)
		}

		chunk := bits[i:end]

		v := 0
		for j, b := range chunk {
			if b != 0 {
				v |= 1 << uint(j)
			}
		}

		windows = append(windows, v)
	}

	return windows
}

// HashZcashBits hashes a pre-decoded bit sequence (each element 0 or 1)
// using the windowed zcash construction.
func HashZcashBits(name string, bits []byte) (jubjub.Point, error) {
	windows := windowsFromBits(bits)
	if len(windows) == 0 {
		return jubjub.Point{}, errs.ErrTypeMismatch
	}

	return hashZcashWindows(name, windows)
}

// HashZcashBytes hashes data using the windowed zcash construction
// (ethsnarks pedersen_hash_zcash_bytes).
func HashZcashBytes(name string, data []byte) (jubjub.Point, error) {
	if len(data) == 0 {
		return jubjub.Point{}, errs.ErrTypeMismatch
	}

	return HashZcashBits(name, bitsFromBytes(data))
}

// HashZcashScalars hashes a sequence of scalars using the windowed zcash
// construction, extracting windows via direct bit-shifts of each scalar
// (s>>i)&0b111 for i stepping by 3 up to its bit length — a different
// window-extraction rule from HashZcashBits/HashZcashBytes, both funneling
// into the same hashZcashWindows helper (ethsnarks
// pedersen_hash_zcash_scalars).
func HashZcashScalars(name string, scalars ...*big.Int) (jubjub.Point, error) {
	var windows []int

	for _, s := range scalars {
		for i := 0; i < s.BitLen(); i += 3 {
			shifted := new(big.Int).Rsh(s, uint(i))
			windows = append(windows, int(shifted.Uint64()&0b111))
		}
	}

	if len(windows) == 0 {
		return jubjub.Point{}, errs.ErrTypeMismatch
	}

	return hashZcashWindows(name, windows)
}
